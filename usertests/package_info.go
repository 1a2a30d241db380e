// Package usertests contains the contract test scenarios for the Users
// resource of the remote API, layered on the generic framework package.
//
// The suite runs as one fixed, ordered sequence: an early scenario creates a
// user, and several later scenarios read, update, and finally delete that
// same user through the identifier it recorded. Scenarios that need that
// identifier check for it up front and fail immediately with a clear message
// if it was never recorded, rather than calling the API with an invalid id.
// Scenarios that do not touch the shared user create and clean up their own
// fixtures.
package usertests
