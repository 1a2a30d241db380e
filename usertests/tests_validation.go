package usertests

import (
	"github.com/AsenSirakov/users-api-contract-tests/restapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoInvalidFieldsTest(t *T) {
	params := restapi.CreateUserParams{
		Name:   "",
		Email:  "not-an-email",
		Gender: "unknown",
		Status: "paused",
	}

	env, err := t.Client().CreateUser(params)
	require.NoError(t, err)
	requireStatus(t, env, 422)

	fieldErrors := decodeFieldErrors(t, env)
	assert.NotEmpty(t, fieldErrors, "expected at least one validation error entry")
}

// DoDuplicateEmailTest is self-contained: it creates its own first user
// rather than reusing the shared one, so it works no matter where it runs in
// the order, and it deletes that user when it is done.
func DoDuplicateEmailTest(t *T) {
	first := generateUserParams()
	env, err := t.Client().CreateUser(first)
	require.NoError(t, err)
	requireStatus(t, env, 201)
	firstUser := decodeUser(t, env)

	t.Defer(func() {
		if _, err := t.Client().DeleteUser(firstUser.ID); err != nil {
			t.Debug("cleanup of user %d failed: %s", firstUser.ID, err)
		}
	})

	second := generateUserParams()
	second.Email = first.Email
	t.Debug("creating second user with duplicate email %s", second.Email)

	env, err = t.Client().CreateUser(second)
	require.NoError(t, err)
	requireStatus(t, env, 422)

	fieldErrors := decodeFieldErrors(t, env)
	require.NotEmpty(t, fieldErrors, "expected at least one validation error entry")
	requireFieldError(t, fieldErrors, "email", "has already been taken")
}
