// Package framework contains the generic scenario-running infrastructure for
// the contract test suite. Nothing in this package knows about the Users API.
//
// The model is:
//
// 1. A suite is a function that receives a Context and calls Run on it any
// number of times, once per scenario, in the order the scenarios must
// execute.
//
// 2. Context is similar to Go's testing.T, but runs outside of the Go test
// runner: scenario failures are accumulated into a Results value instead of
// terminating the process, so one scenario's failure never prevents the
// remaining scenarios from running.
//
// 3. The domain-specific code provides the scenarios themselves, plus any
// shared state they need, layered on top of Context.
package framework
