package images

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreSave(t *testing.T) {
	t.Parallel()

	s, err := NewStore(filepath.Join(t.TempDir(), "charts"))
	assert.NoError(t, err)

	ref, err := s.Save("setup.PNG", strings.NewReader("png-bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, RefPrefix))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	data, err := os.ReadFile(filepath.Join(s.Dir(), strings.TrimPrefix(ref, RefPrefix)))
	assert.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestStoreSaveUniqueNames(t *testing.T) {
	t.Parallel()

	s, err := NewStore(filepath.Join(t.TempDir(), "charts"))
	assert.NoError(t, err)

	a, err := s.Save("same.png", strings.NewReader("a"))
	assert.NoError(t, err)
	b, err := s.Save("same.png", strings.NewReader("b"))
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestStoreRejectsNonImages(t *testing.T) {
	t.Parallel()

	s, err := NewStore(filepath.Join(t.TempDir(), "charts"))
	assert.NoError(t, err)

	for _, name := range []string{"chart.exe", "chart", "chart.csv"} {
		_, err := s.Save(name, strings.NewReader("x"))
		assert.Error(t, err, name)
	}
}
