// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Builtin(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	assert.Equal(t, "en", c.Active())
	msg, ok := c.Translate("error.time_out", nil)
	require.True(t, ok)
	assert.Equal(t, "Time out", msg)

	msg, ok = c.Translate("error.clear_data_timeout", map[string]string{"time": "10"})
	require.True(t, ok)
	assert.Equal(t, "We've cleared all your data because your session is timed out 10 minutes", msg)

	_, ok = c.Translate("error.nope", nil)
	assert.False(t, ok)
	assert.Equal(t, "error.nope", c.T("error.nope", nil))
}

func TestCatalog_EveryBuiltinHasTimeoutKeys(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	for _, lang := range c.Languages() {
		require.NoError(t, c.SetActive(lang.Code))
		for _, key := range []string{"error.time_out", "error.clear_data_timeout"} {
			_, ok := c.Translate(key, nil)
			assert.True(t, ok, "%s missing %s", lang.Code, key)
		}
	}
}

func TestCatalog_SetActive(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	require.NoError(t, c.SetActive("vi"))
	msg, _ := c.Translate("error.time_out", nil)
	assert.Equal(t, "Hết thời gian", msg)

	assert.ErrorIs(t, c.SetActive("xx"), ErrUnknownLanguage)
	assert.Equal(t, "vi", c.Active())
}

func TestCatalog_Languages(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	langs := c.Languages()
	codes := make([]string, 0, len(langs))
	for _, l := range langs {
		codes = append(codes, l.Code)
		assert.NotEmpty(t, l.Name)
	}
	assert.Equal(t, []string{"en", "vi", "kr", "cn", "ru"}, codes)
	assert.Equal(t, "English", langs[0].Name)
}

func TestCatalog_LoadDirOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte("error:\n  time_out: Session over\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.yml"), []byte("error:\n  time_out: Zeit abgelaufen\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	c, err := New()
	require.NoError(t, err)
	require.NoError(t, c.LoadDir(dir))

	msg, _ := c.Translate("error.time_out", nil)
	assert.Equal(t, "Session over", msg)
	_, ok := c.Translate("error.clear_data_timeout", nil)
	assert.True(t, ok, "override merges instead of replacing")

	assert.True(t, c.Has("de"))
	langs := c.Languages()
	assert.Equal(t, "de", langs[len(langs)-1].Code)

	assert.NoError(t, c.LoadDir(filepath.Join(dir, "missing")))
}

func TestCatalog_PartialCatalogFallsBackToEnglish(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.yaml"), []byte("error:\n  time_out: Zeit abgelaufen\n"), 0644))

	c, err := New()
	require.NoError(t, err)
	require.NoError(t, c.LoadDir(dir))
	require.NoError(t, c.SetActive("de"))

	msg, ok := c.Translate("error.time_out", nil)
	require.True(t, ok)
	assert.Equal(t, "Zeit abgelaufen", msg)

	msg, ok = c.Translate("error.clear_data_timeout", map[string]string{"time": "15"})
	require.True(t, ok)
	assert.Equal(t, "We've cleared all your data because your session is timed out 15 minutes", msg)
	assert.Equal(t, "Swap", c.T("layout.title", nil))

	_, ok = c.Translate("error.nope", nil)
	assert.False(t, ok)
}

func TestCatalog_LoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.yaml")
	require.NoError(t, os.WriteFile(path, []byte("error: [unclosed"), 0644))

	c, err := New()
	require.NoError(t, err)
	assert.Error(t, c.LoadFile(path))
}

func TestCatalog_Watch(t *testing.T) {
	dir := t.TempDir()
	c, err := New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan string, 4)
	require.NoError(t, c.Watch(ctx, dir, zerolog.Nop(), func(code string) {
		select {
		case reloaded <- code:
		default:
		}
	}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte("error:\n  time_out: Reloaded\n"), 0644))

	select {
	case code := <-reloaded:
		assert.Equal(t, "en", code)
	case <-time.After(5 * time.Second):
		t.Fatal("catalog was not reloaded")
	}
	assert.Eventually(t, func() bool {
		msg, _ := c.Translate("error.time_out", nil)
		return msg == "Reloaded"
	}, time.Second, 10*time.Millisecond)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "English", DisplayName("en"))
	assert.Equal(t, "한국어", DisplayName("kr"))
	assert.Equal(t, "!!", DisplayName("!!"))
}
