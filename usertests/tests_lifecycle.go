package usertests

import (
	"github.com/AsenSirakov/users-api-contract-tests/restapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoListUsersTest(t *T) {
	env, err := t.Client().ListUsers()
	require.NoError(t, err)
	requireStatus(t, env, 200)

	users := decodeUsers(t, env)
	// We don't know what users exist on the remote side, so this only
	// spot-checks the contract: server-assigned ids and closed enums.
	for _, user := range users {
		assert.True(t, user.ID > 0, "user has a non-positive id: %+v", user)
		assert.Contains(t, restapi.Genders, user.Gender, "user %d has an invalid gender", user.ID)
		assert.Contains(t, restapi.Statuses, user.Status, "user %d has an invalid status", user.ID)
	}
}

func DoCreateUserTest(t *T) {
	params := generateUserParams()
	t.Debug("creating user: %+v", params)

	env, err := t.Client().CreateUser(params)
	require.NoError(t, err)
	requireStatus(t, env, 201)

	user := decodeUser(t, env)
	require.True(t, user.ID > 0, "server did not assign a positive id: %+v", user)
	requireUserMatches(t, user, params)

	t.RecordCreatedUser(user, params)
}

func DoGetCreatedUserTest(t *T) {
	id := t.RequireExistingUser()

	env, err := t.Client().GetUser(id)
	require.NoError(t, err)
	requireStatus(t, env, 200)

	user := decodeUser(t, env)
	assert.Equal(t, id, user.ID, "returned user had a different id than requested")
	requireUserMatches(t, user, t.CreatedUserParams())
}

func DoReplaceUserTest(t *T) {
	id := t.RequireExistingUser()
	params := generateUserParams()
	t.Debug("replacing user %d with: %+v", id, params)

	env, err := t.Client().UpdateUser(id, params)
	require.NoError(t, err)
	requireStatus(t, env, 200)
	requireUserMatches(t, decodeUser(t, env), params)

	t.ReplaceCreatedUserParams(params)

	// A full update must also be visible to a subsequent read, not just
	// echoed in the update response.
	env, err = t.Client().GetUser(id)
	require.NoError(t, err)
	requireStatus(t, env, 200)
	requireUserMatches(t, decodeUser(t, env), params)
}

func DoPartialUpdateTest(t *T) {
	id := t.RequireExistingUser()
	patch := generatePartialUpdate("name", "status")
	t.Debug("patching user %d with: %+v", id, patch)

	env, err := t.Client().PatchUser(id, patch)
	require.NoError(t, err)
	requireStatus(t, env, 200)

	user := decodeUser(t, env)
	assert.Equal(t, patch["name"], user.Name, "name was not updated by the patch")
	assert.Equal(t, patch["status"], user.Status, "status was not updated by the patch")
	// The untouched fields were themselves randomly generated earlier in the
	// run, so only check that the patch did not clobber them.
	assert.NotEmpty(t, user.Email, "email should not have been touched by the patch")
	assert.NotEmpty(t, user.Gender, "gender should not have been touched by the patch")

	t.ApplyPartialUpdate(patch)
}

func DoDeleteUserTest(t *T) {
	id := t.RequireExistingUser()

	env, err := t.Client().DeleteUser(id)
	require.NoError(t, err)
	requireStatus(t, env, 204)
	assert.Empty(t, env.Body, "delete response should have an empty body")

	t.MarkCreatedUserDeleted()

	env, err = t.Client().GetUser(id)
	require.NoError(t, err)
	requireNotFound(t, env)
}
