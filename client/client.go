// Package client provides the low-level HTTP client for the remote Users
// API. It issues one request per CRUD verb and reports back the raw status
// and body, with no assertions and no decoding; interpreting the response is
// the scenarios' job.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/AsenSirakov/users-api-contract-tests/framework"
	"github.com/AsenSirakov/users-api-contract-tests/restapi"
)

const usersPath = "/users"

// Envelope is the uninterpreted result of a completed request. It is only
// produced when the remote service actually answered; a request that did not
// complete is reported as an error instead, so callers can always tell "the
// API returned an error status" apart from "the request never got there".
type Envelope struct {
	Status int
	Body   []byte
}

// ResourceClient manages communication with the Users resource of the remote
// API. It is safe to reuse across scenarios; it holds no per-request state.
type ResourceClient struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	logger     framework.Logger
}

// NewResourceClient creates a ResourceClient for the given API base URL. The
// token is sent as a bearer credential on every request when non-empty. No
// timeout policy is imposed beyond the transport's own; scenarios run one
// blocking round-trip at a time.
func NewResourceClient(baseURL string, authToken string, logger framework.Logger) *ResourceClient {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &ResourceClient{
		baseURL:    baseURL,
		authToken:  authToken,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

func (c *ResourceClient) ListUsers() (Envelope, error) {
	return c.do("GET", usersPath, nil)
}

func (c *ResourceClient) CreateUser(params restapi.CreateUserParams) (Envelope, error) {
	return c.do("POST", usersPath, params)
}

func (c *ResourceClient) GetUser(id int) (Envelope, error) {
	return c.do("GET", userPath(id), nil)
}

// UpdateUser replaces every mutable field of the user (PUT).
func (c *ResourceClient) UpdateUser(id int, params restapi.CreateUserParams) (Envelope, error) {
	return c.do("PUT", userPath(id), params)
}

// PatchUser mutates only the fields named in params (PATCH).
func (c *ResourceClient) PatchUser(id int, params restapi.PartialUpdateParams) (Envelope, error) {
	return c.do("PATCH", userPath(id), params)
}

func (c *ResourceClient) DeleteUser(id int) (Envelope, error) {
	return c.do("DELETE", userPath(id), nil)
}

func userPath(id int) string {
	return fmt.Sprintf("%s/%d", usersPath, id)
}

func (c *ResourceClient) do(method, path string, params interface{}) (Envelope, error) {
	var bodyReader io.Reader
	var requestBody []byte
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return Envelope{}, err
		}
		requestBody = data
		bodyReader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return Envelope{}, err
	}
	if requestBody != nil {
		req.Header.Add("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Add("Authorization", "Bearer "+c.authToken)
	}

	if requestBody == nil {
		c.logger.Printf("%s %s", method, path)
	} else {
		c.logger.Printf("%s %s: %s", method, path, string(requestBody))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Envelope{}, fmt.Errorf("%s request to %s did not complete: %w", method, path, err)
	}

	var responseBody []byte
	if resp.Body != nil {
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return Envelope{}, fmt.Errorf("error reading response body from %s %s: %w", method, path, err)
		}
		responseBody = data
	}

	c.logger.Printf("%s %s -> %d %s", method, path, resp.StatusCode, string(responseBody))
	return Envelope{Status: resp.StatusCode, Body: responseBody}, nil
}
