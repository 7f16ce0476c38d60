package identity_service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testClient(server *httptest.Server, serviceKey string) *Client {
	return &Client{
		BaseURL:    server.URL,
		AnonKey:    "anon-key",
		ServiceKey: serviceKey,
		HTTP:       &http.Client{Timeout: time.Second},
	}
}

func TestSignIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var payload map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		if payload["password"] != "secret123" {
			w.WriteHeader(400)
			return
		}

		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
	}))
	defer server.Close()

	client := testClient(server, "")

	token, err := client.SignIn("ana@cna.test", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	_, err = client.SignIn("ana@cna.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateIdentityPrivileged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))

		var payload map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, true, payload["email_confirm"])

		w.WriteHeader(201)
		json.NewEncoder(w).Encode(map[string]string{"id": "uid-1"})
	}))
	defer server.Close()

	client := testClient(server, "service-key")

	id, err := client.CreateIdentity("ana@cna.test", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "uid-1", id)
}

func TestCreateIdentitySignupFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"user": map[string]string{"id": "uid-2"},
		})
	}))
	defer server.Close()

	client := testClient(server, "")

	id, err := client.CreateIdentity("bruno@cna.test", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "uid-2", id)
}

func TestCreateIdentityEmailTaken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(422)
		json.NewEncoder(w).Encode(map[string]string{"msg": "User already registered"})
	}))
	defer server.Close()

	client := testClient(server, "service-key")

	_, err := client.CreateIdentity("ana@cna.test", "secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestDeleteIdentityRequiresServiceKey(t *testing.T) {
	client := &Client{BaseURL: "http://identity.test", AnonKey: "anon-key", HTTP: http.DefaultClient}

	assert.ErrorIs(t, client.DeleteIdentity("uid-1"), ErrNotPrivileged)
	assert.ErrorIs(t, client.UpdatePassword("uid-1", "secret123"), ErrNotPrivileged)
}

func TestDeleteIdentityGoneIsFine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/auth/v1/admin/users/uid-1", r.URL.Path)

		w.WriteHeader(404)
	}))
	defer server.Close()

	client := testClient(server, "service-key")

	assert.NoError(t, client.DeleteIdentity("uid-1"))
}

func TestEnabledAndPrivileged(t *testing.T) {
	assert.False(t, (&Client{}).Enabled())
	assert.True(t, (&Client{BaseURL: "http://identity.test"}).Enabled())
	assert.False(t, (&Client{BaseURL: "http://identity.test"}).Privileged())
	assert.True(t, (&Client{ServiceKey: "service-key"}).Privileged())
}
