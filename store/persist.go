package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// StorageVersion tags the persisted record. Bump together with a new entry
// in migrations when the persisted shape changes.
const StorageVersion = 1

const DefaultStoreName = "food-app-store"

// PersistedState is the durable projection: only cart and user survive a
// reload. Order and UI state always restart from defaults.
type PersistedState struct {
	Cart CartState `json:"cart"`
	User UserState `json:"user"`
}

type storageRecord struct {
	State   json.RawMessage `json:"state"`
	Version int             `json:"version"`
}

// Migration transforms a projection persisted under an older version into
// the current shape. Keyed by target version; identity is a valid migration.
type Migration func(PersistedState) PersistedState

var migrations = map[int]Migration{
	1: func(st PersistedState) PersistedState { return st },
}

// Storage is the durable client-side store for one named JSON record.
type Storage interface {
	// Load returns the raw record, or (nil, nil) when absent.
	Load(name string) ([]byte, error)
	Save(name string, data []byte) error
}

// FileStorage keeps each record as <dir>/<name>.json.
type FileStorage struct {
	Dir string
}

func (f FileStorage) Load(name string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(f.Dir, name+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return b, err
}

func (f FileStorage) Save(name string, data []byte) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(f.Dir, name+".json"), data, 0o644)
}

// migrate turns a raw persisted state into a usable projection. Absent or
// malformed input reports ok=false and the caller keeps the defaults; this
// path never fails hard.
func migrate(raw []byte, fromVersion int) (PersistedState, bool) {
	if len(raw) == 0 {
		return PersistedState{}, false
	}
	var st PersistedState
	if err := json.Unmarshal(raw, &st); err != nil {
		return PersistedState{}, false
	}
	if fromVersion != StorageVersion {
		if m, ok := migrations[StorageVersion]; ok {
			st = m(st)
		}
	}
	return st, true
}

// hydrate merges the persisted projection into the fresh default state.
// Called once from New, before the store is shared.
func (s *Store) hydrate() {
	if s.storage == nil {
		return
	}
	b, err := s.storage.Load(s.name)
	if err != nil {
		s.log.Warn("state load failed, using defaults", "name", s.name, "err", err)
		return
	}
	if len(b) == 0 {
		return
	}
	var rec storageRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		s.log.Warn("state record malformed, using defaults", "name", s.name, "err", err)
		return
	}
	st, ok := migrate(rec.State, rec.Version)
	if !ok {
		return
	}
	if st.Cart.Items == nil {
		st.Cart.Items = []CartItem{}
	}
	// Recompute totals rather than trusting persisted derived fields.
	s.state.Cart = recalculated(st.Cart.Items, st.Cart.Restaurant)
	s.state.User = st.User
}

// persist writes the projection, fire and forget.
func (s *Store) persist(st State) {
	if s.storage == nil {
		return
	}
	raw, err := json.Marshal(PersistedState{Cart: st.Cart, User: st.User})
	if err == nil {
		var b []byte
		b, err = json.Marshal(storageRecord{State: raw, Version: StorageVersion})
		if err == nil {
			err = s.storage.Save(s.name, b)
		}
	}
	if err != nil {
		s.log.Warn("state persist failed", "name", s.name, "err", err)
	}
}
