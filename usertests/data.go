package usertests

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"

	"github.com/AsenSirakov/users-api-contract-tests/restapi"
)

// emailCounter makes generated emails unique within a run even if two random
// suffixes ever collided. Several scenarios depend on that uniqueness: the
// remote API enforces email uniqueness server-side, and the duplicate-email
// scenario must be the only collision in the run.
var emailCounter int64

func randomHexString(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

func pickOne(values []string) string {
	b := make([]byte, 1)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return values[int(b[0])%len(values)]
}

func generateUniqueEmail() string {
	n := atomic.AddInt64(&emailCounter, 1)
	return fmt.Sprintf("contract.test.%d.%s@example.com", n, randomHexString(4))
}

// generateUserParams produces a creation payload that the remote API must
// accept: non-empty name, unique well-formed email, and valid enum values
// for gender and status.
func generateUserParams() restapi.CreateUserParams {
	return restapi.CreateUserParams{
		Name:   "contract test user " + randomHexString(4),
		Email:  generateUniqueEmail(),
		Gender: pickOne(restapi.Genders),
		Status: pickOne(restapi.Statuses),
	}
}

// generatePartialUpdate produces a PATCH payload naming exactly the given
// fields, each with a freshly generated valid value. Asking for a field the
// User entity does not have is a bug in the suite itself.
func generatePartialUpdate(fields ...string) restapi.PartialUpdateParams {
	fresh := generateUserParams()
	values := map[string]string{
		"name":   fresh.Name,
		"email":  fresh.Email,
		"gender": fresh.Gender,
		"status": fresh.Status,
	}
	ret := make(restapi.PartialUpdateParams, len(fields))
	for _, field := range fields {
		value, ok := values[field]
		if !ok {
			panic(fmt.Sprintf("generatePartialUpdate: unknown user field %q", field))
		}
		ret[field] = value
	}
	return ret
}
