// Package workspace keeps a JSON manifest of rendered plots so past runs can
// be listed and compared.
package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/KaramelBytes/gapmap-cli/internal/utils"
	"github.com/google/uuid"
)

const manifestFileName = "manifest.json"

// Entry records one rendered plot.
type Entry struct {
	ID        string    `json:"id"`
	Dataset   string    `json:"dataset"`
	Plot      string    `json:"plot"`
	Records   int       `json:"records"`
	Fields    int       `json:"fields"`
	Suffixes  []string  `json:"suffixes"`
	CreatedAt time.Time `json:"created_at"`
}

// Workspace is the manifest plus its on-disk location.
type Workspace struct {
	Entries []Entry `json:"entries"`

	// Not serialized: directory holding manifest.json
	dir string `json:"-"`
}

// Load reads the manifest from dir, returning an empty workspace when none
// exists yet.
func Load(dir string) (*Workspace, error) {
	w := &Workspace{dir: dir}
	b, err := os.ReadFile(filepath.Join(dir, manifestFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return w, nil
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	if err := json.Unmarshal(b, w); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return w, nil
}

// Dir returns the workspace directory.
func (w *Workspace) Dir() string { return w.dir }

// Record appends an entry, filling in its id and timestamp, and returns it.
func (w *Workspace) Record(e Entry) Entry {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	w.Entries = append(w.Entries, e)
	return e
}

// Save writes manifest.json using atomic write.
func (w *Workspace) Save() error {
	if w.dir == "" {
		return errors.New("workspace directory not set")
	}
	if err := utils.EnsureDir(w.dir); err != nil {
		return fmt.Errorf("ensure workspace dir: %w", err)
	}
	data, err := utils.PrettyJSON(w)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(w.dir, manifestFileName), data)
}

// Recent returns entries sorted newest first.
func (w *Workspace) Recent() []Entry {
	out := make([]Entry, len(w.Entries))
	copy(out, w.Entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
