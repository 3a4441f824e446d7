package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordRoundtrip(t *testing.T) {
	var u User
	require.NoError(t, u.SetPassword("hunter22"))

	assert.NotEqual(t, "hunter22", u.Password, "password must be stored hashed")
	assert.True(t, u.CheckPassword("hunter22"))
	assert.False(t, u.CheckPassword("hunter23"))
}

func TestUserNeverSerializesPassword(t *testing.T) {
	var u User
	require.NoError(t, u.SetPassword("secret-pass"))
	u.Email = "a@b.com"

	raw, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), u.Password)
}

func TestUserHasRole(t *testing.T) {
	admin := User{Roles: []string{RoleUser, RoleAdmin}}
	plain := User{Roles: []string{RoleUser}}

	assert.True(t, admin.HasRole(RoleAdmin))
	assert.False(t, plain.HasRole(RoleAdmin))
}
