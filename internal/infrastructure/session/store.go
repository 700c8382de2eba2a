package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Snapshot is the session state persisted between runs. It mirrors what
// the storefront needs to restore a returning visitor: who they are and
// what was left in their cart.
type Snapshot struct {
	UserID uuid.UUID      `json:"user_id"`
	Email  string         `json:"email"`
	Token  string         `json:"token"`
	Cart   []CartLineBlob `json:"cart"`
}

// CartLineBlob is the persisted form of a cart line
type CartLineBlob struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// Store persists the current session snapshot to a single JSON file.
// A missing or unreadable file is treated as "no session": the store
// never fails a load because of bad on-disk state.
type Store struct {
	path   string
	logger *zap.Logger
}

// NewStore creates a session store backed by the given file path
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads the persisted snapshot. It returns (nil, nil) when no
// session exists, including when the file is corrupt; a corrupt file is
// logged and removed so the next save starts clean.
func (s *Store) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("discarding corrupt session file",
			zap.String("path", s.path),
			zap.Error(err),
		)
		_ = os.Remove(s.path)
		return nil, nil
	}

	if snap.UserID == uuid.Nil {
		return nil, nil
	}
	return &snap, nil
}

// Save writes the snapshot atomically via a temp file rename
func (s *Store) Save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, s.path)
}

// Clear removes the persisted snapshot. A missing file is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
