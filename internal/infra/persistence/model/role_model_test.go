package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionList_ValueEncodesJSONArray(t *testing.T) {
	value, err := PermissionList{"LIST_USER", "VIEW_USER"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["LIST_USER","VIEW_USER"]`, string(value.([]byte)))

	// A nil list serializes as an empty array, never SQL NULL.
	value, err = PermissionList(nil).Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(value.([]byte)))
}

func TestPermissionList_ScanAcceptsBytesAndString(t *testing.T) {
	var fromBytes PermissionList
	require.NoError(t, fromBytes.Scan([]byte(`["LIST_USER"]`)))
	assert.Equal(t, PermissionList{"LIST_USER"}, fromBytes)

	var fromString PermissionList
	require.NoError(t, fromString.Scan(`["LIST_USER","VIEW_USER"]`))
	assert.Equal(t, PermissionList{"LIST_USER", "VIEW_USER"}, fromString)

	var fromNull PermissionList
	require.NoError(t, fromNull.Scan(nil))
	assert.Equal(t, PermissionList{}, fromNull)

	var bad PermissionList
	assert.Error(t, bad.Scan(42))
}
