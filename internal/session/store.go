package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gatherhq/gather/internal/errors"
)

// Credentials holds the persisted token pair.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Email        string `json:"email"`
}

// Store persists credentials to a fixed file under the config directory.
// Both tokens live in one file, so logout clears them atomically.
type Store struct {
	path string
}

// NewStore creates a store rooted at dir (usually ~/.gather).
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "credentials.json")}
}

// Save writes the credentials with owner-only permissions.
func (s *Store) Save(creds Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeCredentialsFailed, "could not create config directory", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeCredentialsFailed, "could not encode credentials", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeCredentialsFailed, "could not write credentials", err)
	}
	return nil
}

// Load reads the stored credentials. A missing file returns ok=false.
func (s *Store) Load() (Credentials, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Credentials{}, false, nil
	}
	if err != nil {
		return Credentials{}, false, errors.Wrap(errors.ErrCodeCredentialsFailed, "could not read credentials", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, false, errors.Wrap(errors.ErrCodeCredentialsFailed, "corrupt credentials file", err)
	}
	return creds, true, nil
}

// Clear removes the credentials file. Clearing an absent file is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeCredentialsFailed, "could not remove credentials", err)
	}
	return nil
}
