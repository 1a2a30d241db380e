package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/AsenSirakov/users-api-contract-tests/framework"

	"github.com/alessio/shellescape"
)

// authTokenEnvVar is consulted when -token is not given. The remote API
// requires a personal access token for every mutating request.
const authTokenEnvVar = "USERS_API_TOKEN"

type commandParams struct {
	apiURL    string
	authToken string
	filters   framework.RegexFilters
	debug     bool
	debugAll  bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.apiURL, "url", "", "base URL of the Users API")
	fs.StringVar(&c.authToken, "token", "", "API access token (defaults to $"+authTokenEnvVar+")")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select scenarios to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select scenarios not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed scenarios")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all scenarios")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.apiURL == "" {
		fmt.Fprintln(os.Stderr, "-url is required")
		fs.Usage()
		return false
	}
	if c.authToken == "" {
		c.authToken = os.Getenv(authTokenEnvVar)
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
