// Package settings persists the app's small settings document: the
// Pushover user key, the sealed API token blob, and three duration
// presets. The document is JSON in the per-user data directory, written
// atomically with a best-effort backup. A damaged file is recovered
// from the backup or reset to defaults rather than stopping the app.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pushover-notifier/internal/fsutil"
)

const (
	dirPerm  = 0700
	filePerm = 0600
)

// FileName is the settings document inside the data directory.
const FileName = "settings.json"

// PresetCount is the number of duration preset slots. The document
// always round-trips exactly this many.
const PresetCount = 3

// EmptyPreset fills preset slots that have no stored duration.
const EmptyPreset = "00:00:00"

// DefaultPresets seed a fresh settings document.
var DefaultPresets = [PresetCount]string{"00:15:00", "00:30:00", "01:00:00"}

// Settings is the persisted document. EncryptedAPIToken holds the blob
// produced by the secret package and is omitted entirely while no
// token is stored; the JSON field names are part of the on-disk format.
type Settings struct {
	EncryptedAPIToken []byte   `json:"EncryptedApiToken,omitempty"`
	UserKey           string   `json:"UserKey"`
	TimePresets       []string `json:"TimePresets"`
}

// Default returns a fresh document with the stock presets and no
// credentials.
func Default() *Settings {
	return &Settings{
		TimePresets: append([]string(nil), DefaultPresets[:]...),
	}
}

// Normalize forces the preset list into exactly PresetCount populated
// slots: extras are dropped, missing slots filled with EmptyPreset, and
// a fully absent list gets the defaults. The user key is trimmed.
func (s *Settings) Normalize() {
	s.UserKey = strings.TrimSpace(s.UserKey)

	if len(s.TimePresets) == 0 {
		s.TimePresets = append([]string(nil), DefaultPresets[:]...)
		return
	}
	if len(s.TimePresets) > PresetCount {
		s.TimePresets = s.TimePresets[:PresetCount]
	}
	for i, p := range s.TimePresets {
		p = strings.TrimSpace(p)
		if p == "" {
			p = EmptyPreset
		}
		s.TimePresets[i] = p
	}
	for len(s.TimePresets) < PresetCount {
		s.TimePresets = append(s.TimePresets, EmptyPreset)
	}
}

// Preset returns the duration string in slot i, or EmptyPreset when i
// is out of range.
func (s *Settings) Preset(i int) string {
	if i < 0 || i >= len(s.TimePresets) {
		return EmptyPreset
	}
	return s.TimePresets[i]
}

// nowFunc returns the current time. Tests override it for stable
// quarantine filenames.
var nowFunc = time.Now

// SetNowFunc overrides the clock used for quarantine filenames. Pass
// nil to restore the real clock.
func SetNowFunc(now func() time.Time) {
	if now == nil {
		nowFunc = time.Now
		return
	}
	nowFunc = now
}

// Store reads and writes the settings document inside one directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. Nothing is created until the
// first Save; Load treats a missing file as defaults.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store persists into.
func (st *Store) Dir() string {
	return st.dir
}

// Path returns the full path of the settings file.
func (st *Store) Path() string {
	return filepath.Join(st.dir, FileName)
}

// Load reads the settings document. The returned settings are always
// usable: a missing file yields defaults silently, while an unreadable
// or corrupt file yields the backup contents or defaults alongside a
// non-nil error describing what happened, so callers keep running and
// surface the problem instead of exiting.
func (st *Store) Load() (*Settings, error) {
	path := st.Path()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read %s: %w", path, err)
	}

	s := &Settings{}
	if err := json.Unmarshal(data, s); err != nil {
		return st.recoverCorrupt(path, err)
	}
	s.Normalize()
	return s, nil
}

// Save writes the document atomically, creating the data directory on
// first use and snapshotting the previous contents to the backup file.
func (st *Store) Save(s *Settings) error {
	s.Normalize()

	if err := os.MkdirAll(st.dir, dirPerm); err != nil {
		return fmt.Errorf("create settings dir %s: %w", st.dir, err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	path := st.Path()
	fsutil.BackupExisting(path, filePerm)
	if err := fsutil.WriteFileAtomic(path, data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// recoverCorrupt salvages a damaged settings file: the backup wins if
// it parses, otherwise defaults. The damaged file is kept under a
// timestamped name for inspection and a clean document is written back
// so the next load is ordinary.
func (st *Store) recoverCorrupt(path string, cause error) (*Settings, error) {
	quarantine := fmt.Sprintf("%s.corrupt-%s", path, nowFunc().Format("20060102-150405"))
	_ = os.Rename(path, quarantine)

	if bak, err := os.ReadFile(fsutil.BackupPath(path)); err == nil {
		s := &Settings{}
		if json.Unmarshal(bak, s) == nil {
			s.Normalize()
			_ = st.Save(s)
			return s, fmt.Errorf("settings file was corrupt, restored from backup: %w", cause)
		}
	}

	s := Default()
	_ = st.Save(s)
	return s, fmt.Errorf("settings file was corrupt, reset to defaults: %w", cause)
}
