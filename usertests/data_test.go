package usertests

import (
	"strings"
	"testing"

	"github.com/AsenSirakov/users-api-contract-tests/restapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedEmailsNeverCollide(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		email := generateUserParams().Email
		require.False(t, seen[email], "email %q was generated twice", email)
		seen[email] = true
	}
}

func TestGeneratedParamsAreContractValid(t *testing.T) {
	for i := 0; i < 50; i++ {
		params := generateUserParams()
		assert.NotEmpty(t, params.Name)
		assert.Contains(t, params.Email, "@")
		assert.Contains(t, restapi.Genders, params.Gender)
		assert.Contains(t, restapi.Statuses, params.Status)
	}
}

func TestGeneratedGenderAndStatusCoverBothValues(t *testing.T) {
	genders := make(map[string]bool)
	statuses := make(map[string]bool)
	for i := 0; i < 200; i++ {
		params := generateUserParams()
		genders[params.Gender] = true
		statuses[params.Status] = true
	}
	assert.Len(t, genders, len(restapi.Genders))
	assert.Len(t, statuses, len(restapi.Statuses))
}

func TestGeneratePartialUpdateContainsExactlyTheNamedFields(t *testing.T) {
	patch := generatePartialUpdate("name", "status")

	require.Len(t, patch, 2)
	assert.NotEmpty(t, patch["name"])
	assert.Contains(t, restapi.Statuses, patch["status"])
	assert.NotContains(t, patch, "email")
	assert.NotContains(t, patch, "gender")
}

func TestGeneratePartialUpdateRejectsUnknownFields(t *testing.T) {
	assert.Panics(t, func() { generatePartialUpdate("name", "favorite_color") })
}

func TestGeneratedEmailsUseCounterAndRandomSuffix(t *testing.T) {
	email := generateUniqueEmail()
	assert.True(t, strings.HasPrefix(email, "contract.test."))
	assert.True(t, strings.HasSuffix(email, "@example.com"))
}
