// Package restapi defines the wire shapes of the remote Users REST API, as
// consumed by both the API client and the scenarios. The remote service owns
// these contracts; nothing here is interpreted locally beyond JSON decoding.
package restapi

// Valid values of the gender and status enumerations. The remote API rejects
// anything else with a validation error.
const (
	GenderMale     = "male"
	GenderFemale   = "female"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var (
	Genders  = []string{GenderMale, GenderFemale}
	Statuses = []string{StatusActive, StatusInactive}
)

// User is the entity shape returned by every successful read, create, and
// update response. The id is server-assigned and immutable.
type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
	Status string `json:"status"`
}

// CreateUserParams is the request body for POST /users and PUT /users/{id}.
// All four fields are required by the remote API.
type CreateUserParams struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
	Status string `json:"status"`
}

// PartialUpdateParams is the request body for PATCH /users/{id}: only the
// fields named in the map are mutated, everything else is left alone.
type PartialUpdateParams map[string]string

// FieldError is one entry of the ordered validation-error list that the
// remote API returns with a 422 status.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
