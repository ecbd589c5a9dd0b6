// Package clrscan loads Category Listing Report workbooks and runs
// data-quality rules against the extracted records.
package clrscan

import "github.com/clrscan/clrscan-go/pkg/clrscan/parser"

// Options configures record extraction.
type Options struct {
	// ExcludeParents specifies whether variation parent rows are dropped.
	// If nil, defaults to true.
	ExcludeParents *bool
	// ExcludeExamples specifies whether template example rows are dropped.
	// If nil, defaults to true.
	ExcludeExamples *bool
	// CollapseDuplicateFulfillment specifies whether same-name records
	// across fulfillment channels are collapsed to one, preferring the
	// FBA-marked record. If nil, defaults to true.
	CollapseDuplicateFulfillment *bool
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldExcludeParents returns whether parent rows are dropped.
func (o Options) ShouldExcludeParents() bool {
	if o.ExcludeParents != nil {
		return *o.ExcludeParents
	}
	return true
}

// ShouldExcludeExamples returns whether example rows are dropped.
func (o Options) ShouldExcludeExamples() bool {
	if o.ExcludeExamples != nil {
		return *o.ExcludeExamples
	}
	return true
}

// ShouldCollapseDuplicateFulfillment returns whether duplicate
// fulfillment-channel records are collapsed.
func (o Options) ShouldCollapseDuplicateFulfillment() bool {
	if o.CollapseDuplicateFulfillment != nil {
		return *o.CollapseDuplicateFulfillment
	}
	return true
}

// extractOptions resolves the tri-state options into parser options.
func (o Options) extractOptions() parser.ExtractOptions {
	return parser.ExtractOptions{
		ExcludeParents:               o.ShouldExcludeParents(),
		ExcludeExamples:              o.ShouldExcludeExamples(),
		CollapseDuplicateFulfillment: o.ShouldCollapseDuplicateFulfillment(),
	}
}
