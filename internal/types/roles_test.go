package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsValid(t *testing.T) {
	for _, role := range Roles {
		assert.True(t, role.IsValid(), role)
	}
	assert.False(t, Role("astronaut").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRoleTitle(t *testing.T) {
	assert.Equal(t, "Backend Engineer", RoleBackendEngineer.Title())
	assert.Equal(t, "UI/UX Designer", RoleUIUXDesigner.Title())
	// Unknown roles fall back to the raw identifier.
	assert.Equal(t, "astronaut", Role("astronaut").Title())
}

func TestRoleContextsCoverAllRoles(t *testing.T) {
	for _, role := range Roles {
		ctx, ok := RoleContexts[role]
		assert.True(t, ok, role)
		assert.NotEmpty(t, ctx.Focus, role)
		assert.NotEmpty(t, ctx.Skills, role)
	}
}

func TestApplicationStatusIsValid(t *testing.T) {
	for _, status := range []ApplicationStatus{StatusPending, StatusReviewed, StatusShortlisted, StatusRejected} {
		assert.True(t, status.IsValid(), status)
	}
	assert.False(t, ApplicationStatus("hired").IsValid())
}
