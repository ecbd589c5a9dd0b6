package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clrscan/clrscan-go/pkg/clrscan/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List available rules",
	Args:  cobra.NoArgs,
	Run:   runRules,
}

func runRules(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	for _, rule := range rules.Defaults() {
		if runCfg.Disabled(rule.Name()) {
			continue
		}
		fmt.Fprintf(out, "  %s\n    %s\n\n", rule.Name(), rule.Description())
	}
}
