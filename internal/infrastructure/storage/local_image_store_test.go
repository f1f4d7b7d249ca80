package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/evcharge-admin-api/internal/infrastructure/storage"
)

func TestSave_EscribeConPrefijoUnico(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewLocalImageStore(dir)
	require.NoError(t, err)

	a, err := s.Save(context.Background(), "foto 1.png", []byte("png"))
	require.NoError(t, err)
	b, err := s.Save(context.Background(), "foto 1.png", []byte("png"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, "-foto_1.png"))

	content, err := os.ReadFile(filepath.Join(dir, a))
	require.NoError(t, err)
	assert.Equal(t, "png", string(content))
}

func TestSave_DescartaRuta(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewLocalImageStore(dir)
	require.NoError(t, err)

	name, err := s.Save(context.Background(), "../../etc/passwd.jpg", nil)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "-passwd.jpg"))
	_, err = os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err)
}

func TestSave_ContextoCancelado(t *testing.T) {
	s, err := storage.NewLocalImageStore(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Save(ctx, "a.png", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
