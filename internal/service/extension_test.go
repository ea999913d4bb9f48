package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodeary/flow-backend/internal/apperror"
)

func requireAppError(t *testing.T, err error, code string) *apperror.Error {
	t.Helper()
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
	return appErr
}

func TestAddFixedRoundTrip(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	fixed, err := svc.AddFixed("mp4", "", false)
	require.NoError(t, err)
	assert.Equal(t, "mp4", fixed.Extension)
	assert.False(t, fixed.IsBlocked)

	blocked, err := svc.IsBlocked("mp4")
	require.NoError(t, err)
	assert.False(t, blocked)

	// exists but unblocked stays "none"
	blockType, err := svc.BlockType("mp4")
	require.NoError(t, err)
	assert.Equal(t, BlockTypeNone, blockType)

	_, err = svc.UpdateFixedStatus("MP4", true)
	require.NoError(t, err)

	blocked, err = svc.IsBlocked("mp4")
	require.NoError(t, err)
	assert.True(t, blocked)

	blockType, err = svc.BlockType("mp4")
	require.NoError(t, err)
	assert.Equal(t, BlockTypeFixed, blockType)
}

func TestAddFixedNormalizesAndDefaultsDescription(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	fixed, err := svc.AddFixed("EXE", "", false)
	require.NoError(t, err)
	assert.Equal(t, "exe", fixed.Extension)
	assert.False(t, fixed.IsBlocked)
	assert.Equal(t, "실행 파일", fixed.Description)

	other, err := svc.AddFixed("xyz", "", false)
	require.NoError(t, err)
	assert.Equal(t, "실행 가능한 파일", other.Description)

	custom, err := svc.AddFixed("pdf", "문서 파일", false)
	require.NoError(t, err)
	assert.Equal(t, "문서 파일", custom.Description)
}

func TestAddFixedValidation(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	for _, bad := range []string{"", "   ", "a.b", "has space", strings.Repeat("a", 21)} {
		_, err := svc.AddFixed(bad, "", false)
		requireAppError(t, err, apperror.CodeValidation)
	}
}

func TestAddCustomBlockedByDefault(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	custom, err := svc.AddCustom("sh")
	require.NoError(t, err)
	assert.Equal(t, "sh", custom.Extension)
	assert.True(t, custom.IsBlocked)

	blocked, err := svc.IsBlocked("sh")
	require.NoError(t, err)
	assert.True(t, blocked)

	blockType, err := svc.BlockType("SH")
	require.NoError(t, err)
	assert.Equal(t, BlockTypeCustom, blockType)
}

func TestCrossSetConflict(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	_, err := svc.AddFixed("zip", "", false)
	require.NoError(t, err)

	_, err = svc.AddCustom("zip")
	requireAppError(t, err, apperror.CodeConflict)

	_, err = svc.AddCustom("ZIP")
	requireAppError(t, err, apperror.CodeConflict)

	_, err = svc.AddCustom("rar")
	require.NoError(t, err)

	_, err = svc.AddFixed("rar", "", false)
	requireAppError(t, err, apperror.CodeConflict)

	_, err = svc.AddFixed("zip", "", false)
	requireAppError(t, err, apperror.CodeConflict)
}

func TestFixedCapacity(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	require.NoError(t, svc.InitializeDefaults())
	for _, ext := range []string{"ps1", "vbs", "msi"} {
		_, err := svc.AddFixed(ext, "", false)
		require.NoError(t, err)
	}

	_, err := svc.AddFixed("reg", "", false)
	requireAppError(t, err, apperror.CodeCapacity)

	fixed, err := svc.ListFixed()
	require.NoError(t, err)
	assert.Len(t, fixed, MaxFixedExtensions)
}

func TestCustomCapacity(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	for i := 0; i < MaxCustomExtensions; i++ {
		_, err := svc.AddCustom(fmt.Sprintf("ext%d", i))
		require.NoError(t, err)
	}

	_, err := svc.AddCustom("overflow")
	requireAppError(t, err, apperror.CodeCapacity)

	custom, err := svc.ListCustom()
	require.NoError(t, err)
	assert.Len(t, custom, MaxCustomExtensions)
}

func TestValidateExtension(t *testing.T) {
	svc := NewExtensionService(testDB)

	cases := []struct {
		in    string
		valid bool
	}{
		{"", false},
		{"   ", false},
		{"a.b", false},
		{strings.Repeat("a", 21), false},
		{strings.Repeat("a", 20), true},
		{"mp4", true},
		{"EXE", true},
		{"tar-gz", false},
		{"한글", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, svc.ValidateExtension(tc.in), "validate(%q)", tc.in)
	}
}

func TestInitializeDefaultsIdempotent(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	require.NoError(t, svc.InitializeDefaults())
	require.NoError(t, svc.InitializeDefaults())

	fixed, err := svc.ListFixed()
	require.NoError(t, err)
	require.Len(t, fixed, 7)

	// sorted by extension value ascending
	assert.Equal(t, "bat", fixed[0].Extension)
	assert.Equal(t, "scr", fixed[6].Extension)
	for _, f := range fixed {
		assert.False(t, f.IsBlocked)
	}
}

func TestInitializeDefaultsKeepsExistingRows(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	blocked, err := svc.AddFixed("exe", "", true)
	require.NoError(t, err)

	require.NoError(t, svc.InitializeDefaults())

	got, err := svc.UpdateFixedStatus("exe", blocked.IsBlocked)
	require.NoError(t, err)
	assert.True(t, got.IsBlocked)

	fixed, err := svc.ListFixed()
	require.NoError(t, err)
	assert.Len(t, fixed, 7)
}

func TestDeleteFixed(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	fixed, err := svc.AddFixed("mov", "", false)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFixed(fixed.ID))

	err = svc.DeleteFixed(fixed.ID)
	requireAppError(t, err, apperror.CodeNotFound)
}

func TestDeleteCustomByValue(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	_, err := svc.AddCustom("tmp")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCustomByValue("TMP"))

	err = svc.DeleteCustomByValue("tmp")
	requireAppError(t, err, apperror.CodeNotFound)

	// value is free again after deletion
	_, err = svc.AddCustom("tmp")
	require.NoError(t, err)
}

func TestUpdateStatusNotFound(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	_, err := svc.UpdateFixedStatus("ghost", true)
	requireAppError(t, err, apperror.CodeNotFound)

	_, err = svc.UpdateCustomStatus("ghost", false)
	requireAppError(t, err, apperror.CodeNotFound)
}

func TestUpdateCustomStatus(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	_, err := svc.AddCustom("log")
	require.NoError(t, err)

	custom, err := svc.UpdateCustomStatus("log", false)
	require.NoError(t, err)
	assert.False(t, custom.IsBlocked)

	blockType, err := svc.BlockType("log")
	require.NoError(t, err)
	assert.Equal(t, BlockTypeNone, blockType)
}

func TestAllBlocked(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	_, err := svc.AddFixed("exe", "", true)
	require.NoError(t, err)
	_, err = svc.AddFixed("bat", "", false)
	require.NoError(t, err)
	_, err = svc.AddCustom("sh")
	require.NoError(t, err)
	_, err = svc.AddCustom("cmd")
	require.NoError(t, err)

	blocked, err := svc.AllBlocked()
	require.NoError(t, err)
	assert.Equal(t, []string{"cmd", "exe", "sh"}, blocked)
}

func TestBlockTypeFixedPriority(t *testing.T) {
	resetDB(t)
	svc := NewExtensionService(testDB)

	_, err := svc.AddFixed("exe", "", true)
	require.NoError(t, err)

	blockType, err := svc.BlockType("exe")
	require.NoError(t, err)
	assert.Equal(t, BlockTypeFixed, blockType)
}
