package main

import (
	"fmt"
	"log"
	"os"
	"regexp"

	"github.com/AsenSirakov/users-api-contract-tests/client"
	"github.com/AsenSirakov/users-api-contract-tests/framework"
	"github.com/AsenSirakov/users-api-contract-tests/usertests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	apiClient := client.NewResourceClient(params.apiURL, params.authToken, mainDebugLogger)

	fmt.Println()
	framework.PrintFilterDescription(params.filters)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := usertests.RunTestSuite(apiClient, params.filters.AsFilter, testLogger)

	fmt.Println()
	printResults(results)
	if !results.OK() {
		printRerunCommand(params, results)
		os.Exit(1)
	}
}

// printRerunCommand prints a copy-pastable command line that reruns exactly
// the scenarios that just failed.
func printRerunCommand(params commandParams, results framework.Results) {
	var b commandBuilder
	b.add(os.Args[0], "-url", params.apiURL)
	if params.authToken != "" {
		b.add("-token", params.authToken)
	}
	for _, f := range results.Failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.ID.String())+"$")
	}
	fmt.Println()
	fmt.Println("To rerun only the failed scenarios:")
	fmt.Printf("  %s\n", b)
}
