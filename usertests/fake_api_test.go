package usertests

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/AsenSirakov/users-api-contract-tests/restapi"
)

// fakeUsersAPI is an in-memory implementation of the remote Users API
// contract, used to run the whole suite hermetically in tests.
type fakeUsersAPI struct {
	users        map[int]restapi.User
	nextID       int
	notFoundBody string
	// when non-zero, every POST /users answers with this status
	createStatusOverride int
	lock                 sync.Mutex
}

func newFakeUsersAPI() *fakeUsersAPI {
	return &fakeUsersAPI{
		users:        make(map[int]restapi.User),
		nextID:       1000,
		notFoundBody: `{"message":"Resource not found"}`,
	}
}

func (a *fakeUsersAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.lock.Lock()
	defer a.lock.Unlock()

	if r.URL.Path == "/users" {
		switch r.Method {
		case "GET":
			a.listUsers(w)
		case "POST":
			a.createUser(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/users/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	user, exists := a.users[id]
	if !exists {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(a.notFoundBody))
		return
	}

	switch r.Method {
	case "GET":
		writeJSON(w, http.StatusOK, user)
	case "PUT":
		var params restapi.CreateUserParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		user.Name, user.Email, user.Gender, user.Status = params.Name, params.Email, params.Gender, params.Status
		a.users[id] = user
		writeJSON(w, http.StatusOK, user)
	case "PATCH":
		var patch map[string]string
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for field, value := range patch {
			switch field {
			case "name":
				user.Name = value
			case "email":
				user.Email = value
			case "gender":
				user.Gender = value
			case "status":
				user.Status = value
			}
		}
		a.users[id] = user
		writeJSON(w, http.StatusOK, user)
	case "DELETE":
		delete(a.users, id)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (a *fakeUsersAPI) listUsers(w http.ResponseWriter) {
	users := []restapi.User{}
	for _, u := range a.users {
		users = append(users, u)
	}
	writeJSON(w, http.StatusOK, users)
}

func (a *fakeUsersAPI) createUser(w http.ResponseWriter, r *http.Request) {
	if a.createStatusOverride != 0 {
		w.WriteHeader(a.createStatusOverride)
		return
	}

	var params restapi.CreateUserParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var fieldErrors []restapi.FieldError
	if params.Name == "" {
		fieldErrors = append(fieldErrors, restapi.FieldError{Field: "name", Message: "can't be blank"})
	}
	if !strings.Contains(params.Email, "@") {
		fieldErrors = append(fieldErrors, restapi.FieldError{Field: "email", Message: "is invalid"})
	}
	if !contains(restapi.Genders, params.Gender) {
		fieldErrors = append(fieldErrors, restapi.FieldError{Field: "gender", Message: "can't be blank, can be male or female"})
	}
	if !contains(restapi.Statuses, params.Status) {
		fieldErrors = append(fieldErrors, restapi.FieldError{Field: "status", Message: "can't be blank"})
	}
	for _, u := range a.users {
		if u.Email == params.Email {
			fieldErrors = append(fieldErrors, restapi.FieldError{Field: "email", Message: "has already been taken"})
			break
		}
	}
	if len(fieldErrors) > 0 {
		writeJSON(w, 422, fieldErrors)
		return
	}

	a.nextID++
	user := restapi.User{
		ID:     a.nextID,
		Name:   params.Name,
		Email:  params.Email,
		Gender: params.Gender,
		Status: params.Status,
	}
	a.users[user.ID] = user
	writeJSON(w, http.StatusCreated, user)
}

func (a *fakeUsersAPI) userCount() int {
	a.lock.Lock()
	defer a.lock.Unlock()
	return len(a.users)
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	data, _ := json.Marshal(value)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
