package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleUser.IsAdmin())
	assert.False(t, Role("").IsAdmin())
	assert.False(t, Role("Admin").IsAdmin())
	assert.False(t, Role("superadmin").IsAdmin())
}
