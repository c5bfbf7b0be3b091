package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoleCode(t *testing.T) {
	assert.Equal(t, "EDITOR", NormalizeRoleCode("editor"))
	assert.Equal(t, "EDITOR", NormalizeRoleCode("  Editor "))
	assert.Equal(t, "", NormalizeRoleCode("   "))

	// "editor" and "Editor " must land on the same unique key.
	assert.Equal(t, NormalizeRoleCode("editor"), NormalizeRoleCode("Editor "))
}
