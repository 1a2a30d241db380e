package usertests

import (
	"encoding/json"
	"strings"

	"github.com/AsenSirakov/users-api-contract-tests/client"
	"github.com/AsenSirakov/users-api-contract-tests/restapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireStatus fails the scenario immediately if the response status is not
// the expected one. The failure message includes the body, which is usually
// all the diagnosis anyone needs.
func requireStatus(t *T, env client.Envelope, expectedStatus int) {
	if env.Status != expectedStatus {
		require.Fail(t, "unexpected response status",
			"expected %d but got %d; response body: %s", expectedStatus, env.Status, string(env.Body))
	}
}

// decodeUser decodes the body as a single user entity, failing the scenario
// with the raw body if it does not have that shape.
func decodeUser(t *T, env client.Envelope) restapi.User {
	var user restapi.User
	if err := json.Unmarshal(env.Body, &user); err != nil {
		require.Fail(t, "response body was not a valid user",
			"decode error: %s; response body: %s", err, string(env.Body))
	}
	return user
}

// decodeUsers decodes the body as a list of user entities. A JSON null body
// fails; an empty list does not.
func decodeUsers(t *T, env client.Envelope) []restapi.User {
	var users []restapi.User
	if err := json.Unmarshal(env.Body, &users); err != nil {
		require.Fail(t, "response body was not a valid user list",
			"decode error: %s; response body: %s", err, string(env.Body))
	}
	if string(env.Body) == "null" {
		require.Fail(t, "response body was a JSON null rather than a user list")
	}
	return users
}

// requireUserMatches asserts field-level equality between a returned user
// and the request payload it should reflect.
func requireUserMatches(t *T, user restapi.User, params restapi.CreateUserParams) {
	assert.Equal(t, params.Name, user.Name, "name did not match the request payload")
	assert.Equal(t, params.Email, user.Email, "email did not match the request payload")
	assert.Equal(t, params.Gender, user.Gender, "gender did not match the request payload")
	assert.Equal(t, params.Status, user.Status, "status did not match the request payload")
}

// requireNotFound asserts a 404 response whose body says so. The remote API
// phrases this as "Resource not found" for some operations and plain "not
// found" for others, so this is a case-insensitive substring check rather
// than an exact match.
func requireNotFound(t *T, env client.Envelope) {
	requireStatus(t, env, 404)
	if !strings.Contains(strings.ToLower(string(env.Body)), "not found") {
		require.Fail(t, "response did not look like a not-found error",
			"response body: %s", string(env.Body))
	}
}

// decodeFieldErrors decodes a 422 body as the ordered field/message
// validation-error list, failing the scenario with the raw body if it does
// not have that shape.
func decodeFieldErrors(t *T, env client.Envelope) []restapi.FieldError {
	var fieldErrors []restapi.FieldError
	if err := json.Unmarshal(env.Body, &fieldErrors); err != nil {
		require.Fail(t, "response body was not a validation error list",
			"decode error: %s; response body: %s", err, string(env.Body))
	}
	return fieldErrors
}

// requireFieldError asserts that the validation-error list contains an entry
// for the given field whose message contains the given substring.
func requireFieldError(t *T, fieldErrors []restapi.FieldError, field, messageSubstring string) {
	for _, e := range fieldErrors {
		if e.Field == field && strings.Contains(e.Message, messageSubstring) {
			return
		}
	}
	require.Fail(t, "expected validation error was not present",
		"wanted an entry for field %q with message containing %q; got: %+v",
		field, messageSubstring, fieldErrors)
}
