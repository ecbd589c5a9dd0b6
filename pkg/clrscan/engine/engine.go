// Package engine runs registered validation rules against a shared
// record snapshot and collects their findings into reports.
package engine

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// ErrEmptyRuleName indicates a rule was registered without a name.
var ErrEmptyRuleName = errors.New("rule must have a name")

// ErrUnknownRule indicates a requested rule is not registered.
var ErrUnknownRule = errors.New("unknown rule")

// Rule is the contract every validation rule implements. Execute must be
// pure: no mutation of the shared records, deterministic output for a
// given input, and total over any well-formed record sequence (a record
// lacking an expected field reads as empty, never an error).
type Rule interface {
	// Name is the unique registration name.
	Name() string
	// Description is a one-line summary for listings.
	Description() string
	// Execute evaluates the rule and returns its ordered findings.
	Execute(records []models.Record, meta models.FieldIndex) []models.Finding
}

// RuleInfo describes a registered rule.
type RuleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RecordLoader produces the record snapshot the engine evaluates rules
// against. It is invoked at most once per engine instance.
type RecordLoader func() ([]models.Record, error)

// Engine is a registry of rules bound to one record source. The record
// snapshot is extracted lazily on first use and cached for the engine's
// lifetime, so every rule observes the same records regardless of call
// order.
type Engine struct {
	load  RecordLoader
	meta  models.FieldIndex
	order []string
	rules map[string]Rule

	once    sync.Once
	records []models.Record
	loadErr error
}

// New creates an engine over a record loader and field metadata index.
func New(load RecordLoader, meta models.FieldIndex) *Engine {
	return &Engine{
		load:  load,
		meta:  meta,
		rules: make(map[string]Rule),
	}
}

// Register adds a rule. The last registration for a given name wins,
// keeping the original registration position.
func (e *Engine) Register(rule Rule) error {
	name := rule.Name()
	if name == "" {
		return ErrEmptyRuleName
	}
	if _, ok := e.rules[name]; !ok {
		e.order = append(e.order, name)
	}
	e.rules[name] = rule
	return nil
}

// List returns registered rules in registration order.
func (e *Engine) List() []RuleInfo {
	infos := make([]RuleInfo, 0, len(e.order))
	for _, name := range e.order {
		infos = append(infos, RuleInfo{
			Name:        name,
			Description: e.rules[name].Description(),
		})
	}
	return infos
}

// Run executes one rule by name and returns its report.
func (e *Engine) Run(name string) (models.Report, error) {
	rule, ok := e.rules[name]
	if !ok {
		return models.Report{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}

	records, err := e.snapshot()
	if err != nil {
		return models.Report{}, err
	}

	findings := rule.Execute(records, e.meta)
	return models.NewReport(rule.Name(), rule.Description(), findings, len(records)), nil
}

// RunAll executes every registered rule against the shared snapshot and
// returns reports in registration order. Rules are pure, so they fan
// out concurrently.
func (e *Engine) RunAll() ([]models.Report, error) {
	records, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	reports := make([]models.Report, len(e.order))
	var g errgroup.Group
	for i, name := range e.order {
		i := i
		rule := e.rules[name]
		g.Go(func() error {
			findings := rule.Execute(records, e.meta)
			reports[i] = models.NewReport(rule.Name(), rule.Description(), findings, len(records))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// snapshot loads the record sequence exactly once per engine instance.
func (e *Engine) snapshot() ([]models.Record, error) {
	e.once.Do(func() {
		e.records, e.loadErr = e.load()
	})
	return e.records, e.loadErr
}
