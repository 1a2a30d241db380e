package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/AsenSirakov/users-api-contract-tests/framework"

	"github.com/fatih/color"
)

var (
	failureColor = color.New(color.FgRed, color.Bold)
	skipColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen, color.Bold)
)

type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) ScenarioStarted(id framework.ScenarioID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleTestLogger) ScenarioError(id framework.ScenarioID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleTestLogger) ScenarioFinished(id framework.ScenarioID, failed bool, debugOutput framework.CapturedOutput) {
	if failed {
		failureColor.Printf("  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) ScenarioSkipped(id framework.ScenarioID, reason string) {
	if reason == "" {
		skipColor.Printf("  SKIPPED: %s\n", id)
	} else {
		skipColor.Printf("  SKIPPED: %s (%s)\n", id, reason)
	}
}

func printResults(results framework.Results) {
	if results.OK() {
		successColor.Printf("All scenarios passed (%d)\n", len(results.Scenarios))
		return
	}
	failureColor.Printf("%d of %d scenarios failed:\n", len(results.Failures), len(results.Scenarios))
	for _, f := range results.Failures {
		fmt.Printf("  %s\n", f.ID)
	}
}
