package repositories

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadRepository(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	repo, err := NewUploadRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("SaveAndResolve", func(t *testing.T) {
		name, err := repo.Save(ctx, "photo.PNG", strings.NewReader("png-bytes"))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(name, ".png"))

		p, err := repo.Path(name)
		require.NoError(t, err)
		b, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(b))
	})

	t.Run("RejectsExtension", func(t *testing.T) {
		_, err := repo.Save(ctx, "script.sh", strings.NewReader("#!/bin/sh"))
		assert.ErrorIs(t, err, ErrUnsupportedFileType)
	})

	t.Run("RejectsTraversal", func(t *testing.T) {
		_, err := repo.Path("../secret.png")
		assert.Error(t, err)

		_, err = repo.Path("missing.png")
		assert.Error(t, err)
	})
}
