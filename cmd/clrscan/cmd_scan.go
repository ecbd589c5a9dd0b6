package main

import (
	"github.com/spf13/cobra"
)

var scanExtract extractFlags
var scanOutput outputFlags

var scanCmd = &cobra.Command{
	Use:   "scan <report.xlsx>",
	Short: "Run every rule against a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanExtract.register(scanCmd)
	scanOutput.register(scanCmd, false)
}

func runScan(cmd *cobra.Command, args []string) error {
	catalog, eng, err := newEngine(args[0], scanExtract.options(cmd))
	if err != nil {
		return err
	}
	defer catalog.Close()

	reports, err := eng.RunAll()
	if err != nil {
		return err
	}

	return scanOutput.emit(cmd, reports)
}
