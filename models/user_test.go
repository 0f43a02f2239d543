package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_PublicStripsPassword(t *testing.T) {
	u := User{ID: 7, Name: "A", Email: "a@x.com", Password: "secret", Role: RoleChef}

	data, err := json.Marshal(u.Public())
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	_, hasPassword := fields["password"]
	assert.False(t, hasPassword)
	assert.Equal(t, "Chef", fields["role"])
}

func TestUser_SerializesPassword(t *testing.T) {
	// GET /users intentionally exposes passwords, so the full record must.
	data, err := json.Marshal(User{ID: 1, Password: "admin"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"password":"admin"`)
}
