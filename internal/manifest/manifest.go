// Package manifest registers generated themes in an extension manifest
// (package.json) without disturbing the rest of the document.
package manifest

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/jmylchreest/evoke/internal/artifact"
)

// ThemesPath is the gjson path of the theme contributions array.
const ThemesPath = "contributes.themes"

// errChanged reports that the file moved on since it was loaded.
var errChanged = errors.New("manifest changed on disk")

// Entry is one theme contribution.
type Entry struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	UITheme string `json:"uiTheme"`
	Path    string `json:"path"`
}

// Manifest is an in-memory package.json.
type Manifest struct {
	path   string
	data   []byte
	sum    [sha256.Size]byte // Checksum of the bytes read from disk
	exists bool              // Whether the file existed at load time
	dirty  bool              // Tracks if the manifest has been modified
}

var prettyOptions = &pretty.Options{Width: 0, Prefix: "", Indent: "  ", SortKeys: false}

// Load reads a manifest from disk. A missing file yields an empty manifest
// that is written on the first Save.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{
				path:  path,
				data:  []byte("{}"),
				dirty: true,
			}, nil
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("failed to parse manifest %s: invalid JSON", path)
	}
	if themes := gjson.GetBytes(data, ThemesPath); themes.Exists() && !themes.IsArray() {
		return nil, fmt.Errorf("failed to parse manifest %s: %s is not an array", path, ThemesPath)
	}

	return &Manifest{
		path:   path,
		data:   data,
		sum:    sha256.Sum256(data),
		exists: true,
	}, nil
}

// Path returns the file the manifest was loaded from.
func (m *Manifest) Path() string {
	return m.path
}

// Bytes returns the current document.
func (m *Manifest) Bytes() []byte {
	return m.data
}

// Dirty reports whether the manifest has unsaved changes.
func (m *Manifest) Dirty() bool {
	return m.dirty
}

// Themes returns the registered theme entries in document order.
func (m *Manifest) Themes() ([]Entry, error) {
	result := gjson.GetBytes(m.data, ThemesPath)
	if !result.Exists() {
		return nil, nil
	}

	items := result.Array()
	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		var e Entry
		if err := json.Unmarshal([]byte(item.Raw), &e); err != nil {
			return nil, fmt.Errorf("failed to parse %s[%d]: %w", ThemesPath, i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Has reports whether an entry with the same label or id is registered.
func (m *Manifest) Has(e Entry) bool {
	found := false
	gjson.GetBytes(m.data, ThemesPath).ForEach(func(_, item gjson.Result) bool {
		if (e.Label != "" && item.Get("label").String() == e.Label) ||
			(e.ID != "" && item.Get("id").String() == e.ID) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Register appends e unless an entry with the same label or id exists.
// It reports whether the manifest changed.
func (m *Manifest) Register(e Entry) (bool, error) {
	if m.Has(e) {
		return false, nil
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return false, fmt.Errorf("failed to marshal theme entry: %w", err)
	}

	path := ThemesPath + ".-1"
	if !gjson.GetBytes(m.data, ThemesPath).Exists() {
		path = ThemesPath
		raw = append(append([]byte{'['}, raw...), ']')
	}

	data, err := sjson.SetRawBytes(m.data, path, raw)
	if err != nil {
		return false, fmt.Errorf("failed to add theme %s: %w", e.Label, err)
	}

	m.data = data
	m.dirty = true
	return true, nil
}

// Save writes the manifest if it has changed.
func (m *Manifest) Save() error {
	if !m.dirty {
		return nil
	}
	return m.write()
}

// saveIfUnchanged is Save guarded by an optimistic check that the file on
// disk still matches what Load read.
func (m *Manifest) saveIfUnchanged() error {
	if !m.dirty {
		return nil
	}

	current, err := os.ReadFile(m.path)
	switch {
	case err == nil:
		if !m.exists || sha256.Sum256(current) != m.sum {
			return errChanged
		}
	case os.IsNotExist(err):
		if m.exists {
			return errChanged
		}
	default:
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	return m.write()
}

func (m *Manifest) write() error {
	out := pretty.PrettyOptions(m.data, prettyOptions)
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := artifact.WriteFileAtomic(m.path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	m.data = out
	m.sum = sha256.Sum256(out)
	m.exists = true
	m.dirty = false
	return nil
}
