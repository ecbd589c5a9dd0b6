package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

var checkExtract extractFlags
var checkOutput outputFlags

var checkCmd = &cobra.Command{
	Use:   "check <rule> <report.xlsx>",
	Short: "Run a single rule against a report",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheck,
}

func init() {
	checkExtract.register(checkCmd)
	checkOutput.register(checkCmd, true)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ruleName, path := args[0], args[1]

	catalog, eng, err := newEngine(path, checkExtract.options(cmd))
	if err != nil {
		return err
	}
	defer catalog.Close()

	report, err := eng.Run(ruleName)
	if err != nil {
		return fmt.Errorf("run %q: %w", ruleName, err)
	}

	return checkOutput.emit(cmd, []models.Report{report})
}
