package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleString(t *testing.T) {
	assert.Equal(t, "read", RoleRead.String())
	assert.Equal(t, "read-write", RoleReadWrite.String())

	role, err := RoleString("read-write")
	require.NoError(t, err)
	assert.Equal(t, RoleReadWrite, role)

	_, err = RoleString("root")
	assert.Error(t, err)
}

func TestRoleCanWrite(t *testing.T) {
	assert.False(t, RoleRead.CanWrite())
	assert.True(t, RoleReadWrite.CanWrite())
}
