package usertests

import (
	"github.com/AsenSirakov/users-api-contract-tests/client"
	"github.com/AsenSirakov/users-api-contract-tests/framework"
)

// environment is the state shared by every scenario in one suite run: the
// API client, and the single slot of cross-scenario state describing the
// user created by the create scenario.
type environment struct {
	client *client.ResourceClient
	state  userState
}

// T represents one scenario in the Users contract test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, with per-scenario debug
// logging and suite-wide result accumulation provided by the framework
// package.
//
// To make assertions, use the assert and require packages, passing the *T as
// if it were a *testing.T. Many of the helpers in this package have
// assertions built in, causing the scenario to fail immediately if the
// response is not what the contract promises.
type T struct {
	context *framework.Context
	env     *environment
}

// Errorf is called by assertions to record a scenario failure. It does not
// cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a scenario should fail and
// immediately exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a child scenario. The child shares the suite environment, so
// state it records (such as a created user's id) is visible to every
// scenario that runs after it.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Defer schedules a cleanup function to run when the scenario ends, whether
// or not it passed. Scenarios use this to tear down fixtures they created.
func (t *T) Defer(cleanup func()) {
	t.context.Defer(cleanup)
}

// Debug logs some debug output for the scenario. The output will be passed
// to the test logger at the end of the scenario.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) DebugLogger() framework.Logger {
	return t.context.DebugLogger()
}

// Client returns the API client for this suite run.
func (t *T) Client() *client.ResourceClient {
	return t.env.client
}
