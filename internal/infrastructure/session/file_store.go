package session

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

var errEmptyKey = crerr.New("session key is required")

// FileStore persists values as one JSON object on disk. Every call re-reads the
// file so separate processes sharing the path observe each other's writes.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: filepath.Clean(path)}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return "", false, err
	}
	value, ok := doc[key]
	return value, ok, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return errEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	doc[key] = value
	return s.write(doc)
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)
	return s.write(doc)
}

func (s *FileStore) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, crerr.Wrapf(err, "read session file %s", s.path)
	}

	doc := make(map[string]string)
	if len(raw) == 0 {
		return doc, nil
	}
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, crerr.Wrapf(err, "decode session file %s", s.path)
	}
	return doc, nil
}

func (s *FileStore) write(doc map[string]string) error {
	raw, err := sonic.Marshal(doc)
	if err != nil {
		return crerr.Wrap(err, "encode session file")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return crerr.Wrapf(err, "create session dir %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return crerr.Wrap(err, "create temp session file")
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return crerr.Wrap(err, "write temp session file")
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return crerr.Wrap(err, "chmod temp session file")
	}
	if err := tmp.Close(); err != nil {
		return crerr.Wrap(err, "close temp session file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return crerr.Wrapf(err, "replace session file %s", s.path)
	}
	return nil
}
