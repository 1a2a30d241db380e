package usertests

import (
	"github.com/AsenSirakov/users-api-contract-tests/restapi"

	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// userState is the single slot of cross-scenario state. The id is written
// once by the create scenario and read by every scenario that targets "the
// existing user"; params tracks the payload the live user currently
// reflects, so read scenarios can compare fields. The deleted flag is set by
// the delete scenario without clearing the id, so a later misordered
// scenario fails its precondition instead of resurrecting a dead id.
type userState struct {
	id      ldvalue.OptionalInt
	params  restapi.CreateUserParams
	deleted bool
}

// RecordCreatedUser stores the id of the user created for this suite run,
// together with the payload it was created from.
func (t *T) RecordCreatedUser(user restapi.User, params restapi.CreateUserParams) {
	t.env.state.id = ldvalue.NewOptionalInt(user.ID)
	t.env.state.params = params
	t.env.state.deleted = false
	t.Debug("recorded created user id %d", user.ID)
}

// RequireExistingUser is the precondition check for scenarios that target
// the user created earlier in the run. It fails the scenario immediately —
// without making any API call — if no user was ever created or if the user
// has already been deleted.
func (t *T) RequireExistingUser() int {
	if !t.env.state.id.IsDefined() {
		require.Fail(t, "scenario precondition not met",
			"no user has been created in this run; the create scenario must succeed before this one")
	}
	if t.env.state.deleted {
		require.Fail(t, "scenario precondition not met",
			"the created user (id %d) has already been deleted; this scenario must run earlier",
			t.env.state.id.IntValue())
	}
	return t.env.state.id.IntValue()
}

// CreatedUserParams returns the payload the shared user currently reflects,
// as of the last successful create or update scenario.
func (t *T) CreatedUserParams() restapi.CreateUserParams {
	return t.env.state.params
}

// ReplaceCreatedUserParams records that a full update replaced every mutable
// field of the shared user.
func (t *T) ReplaceCreatedUserParams(params restapi.CreateUserParams) {
	t.env.state.params = params
}

// ApplyPartialUpdate records that a partial update changed only the named
// fields of the shared user.
func (t *T) ApplyPartialUpdate(patch restapi.PartialUpdateParams) {
	for field, value := range patch {
		switch field {
		case "name":
			t.env.state.params.Name = value
		case "email":
			t.env.state.params.Email = value
		case "gender":
			t.env.state.params.Gender = value
		case "status":
			t.env.state.params.Status = value
		}
	}
}

// MarkCreatedUserDeleted invalidates the shared user without clearing its
// id.
func (t *T) MarkCreatedUserDeleted() {
	t.env.state.deleted = true
}
