package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printperfect-backend/internal/models"
)

func postJSON(t *testing.T, router http.Handler, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account and returns a freshly issued token.
func registerAndLogin(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": password}
	w := postJSON(t, router, "/api/auth/register", creds)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = postJSON(t, router, "/api/auth/login", creds)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegister(t *testing.T) {
	router, repo, _ := newTestRouter(t)

	w := postJSON(t, router, "/api/auth/register", map[string]string{
		"username": "alice",
		"password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "alice", resp.Username)

	// The stored password is a bcrypt hash, never the plaintext.
	user, err := repo.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", user.Password)
	assert.NotEmpty(t, user.Password)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	router, _, _ := newTestRouter(t)

	creds := map[string]string{"username": "alice", "password": "pw1"}
	w := postJSON(t, router, "/api/auth/register", creds)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/auth/register", creds)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "username already exists")
}

func TestRegister_MissingFields(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := postJSON(t, router, "/api/auth/register", map[string]string{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := postJSON(t, router, "/api/auth/register", map[string]string{
		"username": "alice",
		"password": "correct",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestLogin_UnknownUser(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := postJSON(t, router, "/api/auth/login", map[string]string{
		"username": "ghost",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestLogin_ReturnsBearerToken(t *testing.T) {
	router, _, _ := newTestRouter(t)

	creds := map[string]string{"username": "alice", "password": "pw"}
	w := postJSON(t, router, "/api/auth/register", creds)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/auth/login", creds)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.NotEmpty(t, resp.Token)
}
