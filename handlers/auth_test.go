package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vibe-eats/handlers"
	"vibe-eats/routes"
	"vibe-eats/store"
	"vibe-eats/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRouter wires the full router against the given store, the same way
// main does, minus the listener.
func newTestRouter(t *testing.T, s store.UserStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	staticFS, err := web.StaticFS()
	require.NoError(t, err)
	require.NoError(t, routes.SetupRoutes(r, handlers.New(s, zap.NewNop()), staticFS))
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_SeedAdmin(t *testing.T) {
	r := newTestRouter(t, store.NewMemoryStore())

	w := doJSON(r, http.MethodPost, "/login", gin.H{"email": "admin@vibe.com", "password": "admin"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		User    map[string]interface{} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Snehanshu", resp.User["name"])
	assert.Equal(t, "Admin", resp.User["role"])
	// The cached blob must never carry the password.
	_, hasPassword := resp.User["password"]
	assert.False(t, hasPassword)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r := newTestRouter(t, store.NewMemoryStore())

	w := doJSON(r, http.MethodPost, "/login", gin.H{"email": "admin@vibe.com", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Invalid credentials", resp["message"])
}

func TestLogin_MissingFields(t *testing.T) {
	r := newTestRouter(t, store.NewMemoryStore())

	w := doJSON(r, http.MethodPost, "/login", gin.H{"email": "admin@vibe.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignup_RoleDefaultsToCustomer(t *testing.T) {
	s := store.NewMemoryStore()
	r := newTestRouter(t, s)

	w := doJSON(r, http.MethodPost, "/signup", gin.H{"name": "A", "email": "a@x.com", "password": "p"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		User    map[string]interface{} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Customer", resp.User["role"])
	_, hasPassword := resp.User["password"]
	assert.False(t, hasPassword)
	assert.Len(t, s.List(), 3)

	// The fresh credentials log straight in with the defaulted role.
	w = doJSON(r, http.MethodPost, "/login", gin.H{"email": "a@x.com", "password": "p"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Customer", resp.User["role"])
}

func TestSignup_ExplicitRole(t *testing.T) {
	r := newTestRouter(t, store.NewMemoryStore())

	w := doJSON(r, http.MethodPost, "/signup", gin.H{"name": "C", "email": "chef@x.com", "password": "p", "role": "Chef"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User map[string]interface{} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Chef", resp.User["role"])
}

func TestSignup_DuplicateEmail(t *testing.T) {
	s := store.NewMemoryStore()
	r := newTestRouter(t, s)

	w := doJSON(r, http.MethodPost, "/signup", gin.H{"name": "X", "email": "lover@food.com", "password": "p"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "User exists", resp["message"])
	assert.Len(t, s.List(), 2)
}
