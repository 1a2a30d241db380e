package usertests

import (
	"github.com/AsenSirakov/users-api-contract-tests/client"
	"github.com/AsenSirakov/users-api-contract-tests/framework"
)

// RunTestSuite runs every scenario in order against the given API client and
// returns the accumulated results.
//
// The order is load-bearing for the first six scenarios: "create user"
// records the id that the read, update, and delete scenarios target, and
// "delete user" invalidates it. The remaining scenarios are self-contained
// and manage their own fixtures.
func RunTestSuite(
	apiClient *client.ResourceClient,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{
			context: c,
			env:     &environment{client: apiClient},
		}

		t.Run("list users", DoListUsersTest)
		t.Run("create user", DoCreateUserTest)
		t.Run("get created user", DoGetCreatedUserTest)
		t.Run("replace user", DoReplaceUserTest)
		t.Run("partially update user", DoPartialUpdateTest)
		t.Run("delete user", DoDeleteUserTest)
		t.Run("get missing user", DoGetMissingUserTest)
		t.Run("replace missing user", DoReplaceMissingUserTest)
		t.Run("delete missing user", DoDeleteMissingUserTest)
		t.Run("reject invalid fields", DoInvalidFieldsTest)
		t.Run("reject duplicate email", DoDuplicateEmailTest)
	})
}
