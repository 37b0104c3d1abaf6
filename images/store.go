// Package images stores uploaded chart screenshots on disk. The ledger
// treats the refs returned here as opaque pass-through text; only the
// HTTP layer ever resolves one back to bytes.
package images

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rustyeddy/tradebook/pkg/id"
)

// RefPrefix is the URL path prefix baked into every stored ref.
const RefPrefix = "charts/"

type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory images are served from.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes one uploaded image under a fresh ULID name and returns
// its ref. The original filename only contributes its extension.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	name := id.NewLower() + ext
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return RefPrefix + name, nil
}
