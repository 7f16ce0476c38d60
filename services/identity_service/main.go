// Package identity_service talks to the hosted identity provider. The
// service role key grants identity administration (create with auto-confirm,
// delete, password reset) and must only ever be used from this backend;
// without it the client degrades to the public sign-up flow.
package identity_service

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"os"
	"strings"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	ErrEmailTaken         = errors.New("identity: email already registered")
	ErrNotPrivileged      = errors.New("identity: service role key not configured")
	ErrUnexpectedStatus   = errors.New("identity: unexpected provider response")
)

type Client struct {
	BaseURL    string
	AnonKey    string
	ServiceKey string

	HTTP *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:    strings.TrimRight(os.Getenv("IDENTITY_PROVIDER_URL"), "/"),
		AnonKey:    os.Getenv("IDENTITY_ANON_KEY"),
		ServiceKey: os.Getenv("IDENTITY_SERVICE_KEY"),
		HTTP:       &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether an identity provider is configured at all. Without
// one, authentication falls back to local password hashes.
func (c *Client) Enabled() bool {
	return len(c.BaseURL) > 0
}

// Privileged reports whether identity administration is available.
func (c *Client) Privileged() bool {
	return len(c.ServiceKey) > 0
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createIdentityPayload struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	EmailConfirm bool   `json:"email_confirm"`
}

type identityUser struct {
	ID string `json:"id"`
}

type identityResponse struct {
	ID    string        `json:"id"`
	User  *identityUser `json:"user"`
	Token string        `json:"access_token"`
	Error string        `json:"error"`
	Msg   string        `json:"msg"`
}

// SignIn exchanges email+password for a provider session token.
func (c *Client) SignIn(email, password string) (string, error) {
	resp, err := c.post("/auth/v1/token?grant_type=password", c.AnonKey, credentialsPayload{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	if resp.status == 400 || resp.status == 401 {
		return "", ErrInvalidCredentials
	}
	if resp.status != 200 {
		return "", ErrUnexpectedStatus
	}

	return resp.body.Token, nil
}

// CreateIdentity provisions an identity so the new aluno can log in
// immediately. With the service key the identity comes pre-confirmed; the
// anon-key fallback signs up publicly and confirmation is best-effort.
func (c *Client) CreateIdentity(email, password string) (string, error) {
	var resp *response
	var err error

	if c.Privileged() {
		resp, err = c.post("/auth/v1/admin/users", c.ServiceKey, createIdentityPayload{
			Email:        email,
			Password:     password,
			EmailConfirm: true,
		})
	} else {
		resp, err = c.post("/auth/v1/signup", c.AnonKey, credentialsPayload{Email: email, Password: password})
	}
	if err != nil {
		return "", err
	}

	if resp.status == 422 || strings.Contains(strings.ToLower(resp.body.Msg), "already registered") {
		return "", ErrEmailTaken
	}
	if resp.status != 200 && resp.status != 201 {
		return "", ErrUnexpectedStatus
	}

	if resp.body.User != nil && len(resp.body.User.ID) > 0 {
		return resp.body.User.ID, nil
	}

	return resp.body.ID, nil
}

// DeleteIdentity removes an identity. Requires the service key.
func (c *Client) DeleteIdentity(id string) error {
	if !c.Privileged() {
		return ErrNotPrivileged
	}

	resp, err := c.do("DELETE", "/auth/v1/admin/users/"+id, c.ServiceKey, nil)
	if err != nil {
		return err
	}

	if resp.status == 404 {
		return nil
	}
	if resp.status != 200 {
		return ErrUnexpectedStatus
	}

	return nil
}

// UpdatePassword resets an identity's password. Requires the service key.
func (c *Client) UpdatePassword(id, password string) error {
	if !c.Privileged() {
		return ErrNotPrivileged
	}

	resp, err := c.do("PUT", "/auth/v1/admin/users/"+id, c.ServiceKey, map[string]string{"password": password})
	if err != nil {
		return err
	}

	if resp.status != 200 {
		return ErrUnexpectedStatus
	}

	return nil
}

type response struct {
	status int
	body   identityResponse
}

func (c *Client) post(path, key string, payload interface{}) (*response, error) {
	return c.do("POST", path, key, payload)
}

func (c *Client) do(method, path, key string, payload interface{}) (*response, error) {
	var body *bytes.Buffer = bytes.NewBuffer(nil)

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	parsed := identityResponse{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &parsed)
	}

	return &response{status: resp.StatusCode, body: parsed}, nil
}
