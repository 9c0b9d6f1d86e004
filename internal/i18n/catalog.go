// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

//go:embed lang/*.yaml
var builtin embed.FS

// ErrUnknownLanguage is returned by SetActive for a code with no catalog.
var ErrUnknownLanguage = errors.New("i18n: unknown language")

// DefaultLanguage is the active language of a new catalog.
const DefaultLanguage = "en"

// builtinOrder is the language list order shown to users.
var builtinOrder = []string{"en", "vi", "kr", "cn", "ru"}

// tags maps the client's language codes to BCP 47 tags.
var tags = map[string]language.Tag{
	"en": language.English,
	"vi": language.Vietnamese,
	"kr": language.Korean,
	"cn": language.SimplifiedChinese,
	"ru": language.Russian,
}

// LanguageInfo describes one available language.
type LanguageInfo struct {
	Code string
	Name string
}

// Catalog holds messages for every loaded language.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]map[string]string
	active   string
}

// New returns a catalog with the embedded languages loaded.
func New() (*Catalog, error) {
	c := &Catalog{messages: make(map[string]map[string]string), active: DefaultLanguage}
	entries, err := fs.ReadDir(builtin, "lang")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalogs: %w", err)
	}
	for _, e := range entries {
		data, err := builtin.ReadFile("lang/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		if err := c.load(codeFromFile(e.Name()), data); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadDir merges every <code>.yaml in dir over the loaded catalogs. A missing
// directory is not an error.
func (c *Catalog) LoadDir(dir string) error {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read catalog dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !isCatalogFile(e.Name()) {
			continue
		}
		if err := c.LoadFile(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile merges one catalog file. The language code is the file's base name.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	return c.load(codeFromFile(filepath.Base(path)), data)
}

func (c *Catalog) load(code string, data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse catalog %q: %w", code, err)
	}
	flat := make(map[string]string)
	flatten("", doc, flat)

	c.mu.Lock()
	defer c.mu.Unlock()
	dst, ok := c.messages[code]
	if !ok {
		dst = make(map[string]string, len(flat))
		c.messages[code] = dst
	}
	for k, v := range flat {
		dst[k] = v
	}
	return nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Translate returns the active language's message for key with ${name}
// placeholders replaced from params. Keys missing from the active catalog
// come from DefaultLanguage.
func (c *Catalog) Translate(key string, params map[string]string) (string, bool) {
	c.mu.RLock()
	msg, ok := c.messages[c.active][key]
	if !ok {
		msg, ok = c.messages[DefaultLanguage][key]
	}
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	return expand(msg, params), true
}

// T is Translate with the key itself as the fallback.
func (c *Catalog) T(key string, params map[string]string) string {
	if msg, ok := c.Translate(key, params); ok {
		return msg
	}
	return key
}

// SetActive switches the active language.
func (c *Catalog) SetActive(code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.messages[code]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	c.active = code
	return nil
}

// Active returns the active language code.
func (c *Catalog) Active() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Has reports whether a catalog for code is loaded.
func (c *Catalog) Has(code string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.messages[code]
	return ok
}

// Languages lists loaded languages: built-ins in their fixed order, then any
// others sorted by code.
func (c *Catalog) Languages() []LanguageInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool, len(c.messages))
	var out []LanguageInfo
	for _, code := range builtinOrder {
		if _, ok := c.messages[code]; ok {
			out = append(out, LanguageInfo{Code: code, Name: DisplayName(code)})
			seen[code] = true
		}
	}
	var extra []string
	for code := range c.messages {
		if !seen[code] {
			extra = append(extra, code)
		}
	}
	sort.Strings(extra)
	for _, code := range extra {
		out = append(out, LanguageInfo{Code: code, Name: DisplayName(code)})
	}
	return out
}

// DisplayName returns a language's name in that language, or the code when
// it cannot be resolved.
func DisplayName(code string) string {
	tag, ok := tags[code]
	if !ok {
		parsed, err := language.Parse(code)
		if err != nil {
			return code
		}
		tag = parsed
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}

func expand(s string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(s, "${") {
		return s
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "${"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

func isCatalogFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}

func codeFromFile(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
