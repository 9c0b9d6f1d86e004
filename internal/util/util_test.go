// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriteFile_CreatesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")

	require.NoError(t, AtomicWriteFile(path, []byte("first"), 0600))
	require.NoError(t, AtomicWriteFile(path, []byte("second"), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestAtomicWriteFile_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	path := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, AtomicWriteFile(path, nil, 0600))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.Zero(t, info.Size())
}

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello w…"},
		{"스왑 화면", 5, "스왑…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		got := TruncateWidth(tt.in, tt.width)
		assert.Equal(t, tt.want, got, "%q/%d", tt.in, tt.width)
		assert.LessOrEqual(t, StringWidth(got), tt.width)
	}
}

func TestPadWidth(t *testing.T) {
	assert.Equal(t, "ab  ", PadWidth("ab", 4))
	assert.Equal(t, "兑换", PadWidth("兑换", 4))
	assert.Equal(t, "兑 ", PadWidth("兑", 3))
	assert.Equal(t, "long", PadWidth("long", 2))
}
