package usertests

import (
	"github.com/stretchr/testify/require"
)

// missingUserID is an identifier that is assumed never to exist on the
// remote side.
const missingUserID = 999999999

func DoGetMissingUserTest(t *T) {
	env, err := t.Client().GetUser(missingUserID)
	require.NoError(t, err)
	requireNotFound(t, env)
}

func DoReplaceMissingUserTest(t *T) {
	env, err := t.Client().UpdateUser(missingUserID, generateUserParams())
	require.NoError(t, err)
	requireNotFound(t, env)
}

func DoDeleteMissingUserTest(t *T) {
	env, err := t.Client().DeleteUser(missingUserID)
	require.NoError(t, err)
	requireNotFound(t, env)
}
