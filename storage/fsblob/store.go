// Copyright 2025 SIH-25 contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package fsblob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mGaurav-dev/SIH-25/storage"
)

const artifactExt = ".mp3"

// Store implements storage.ArtifactStore on a local directory.
// Storage references are bare file names relative to the root directory.
type Store struct {
	root   string
	logger *slog.Logger
}

var _ storage.ArtifactStore = (*Store)(nil)

// NewStore creates the root directory if needed and returns a Store.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, err
	}
	return &Store{
		root:   root,
		logger: slog.Default().With("component", "fsblob"),
	}, nil
}

// Save writes data under the artifact ID and returns the storage reference.
// Writes go through a temp file and rename so readers never see partial data.
func (s *Store) Save(ctx context.Context, id string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ref := id + artifactExt
	path, err := s.resolve(ref)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.root, "."+id+"-*")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", err
	}

	s.logger.Debug("artifact saved", "ref", ref, "bytes", len(data))
	return ref, nil
}

// Open returns the bytes stored under a reference.
func (s *Store) Open(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Remove deletes the artifact behind the reference. Missing artifacts are
// not an error.
func (s *Store) Remove(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.resolve(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// CleanupOlderThan removes artifacts whose modification time is older than
// maxAge and returns how many were deleted. Temp files from interrupted
// writes are cleaned up on the same schedule.
func (s *Store) CleanupOlderThan(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.root, entry.Name())); err != nil {
			s.logger.Warn("cleanup failed", "name", entry.Name(), "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info("artifact cleanup complete", "removed", removed)
	}
	return removed, nil
}

// resolve maps a reference to a path under the root, rejecting anything that
// would escape the directory.
func (s *Store) resolve(ref string) (string, error) {
	if ref == "" || strings.ContainsAny(ref, "/\\") || ref != filepath.Base(ref) {
		return "", fmt.Errorf("invalid artifact reference %q", ref)
	}
	return filepath.Join(s.root, ref), nil
}
