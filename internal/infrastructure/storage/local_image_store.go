// Package storage persiste en disco las imágenes de ubicaciones.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/evcharge-admin-api/internal/application/ports"
)

var _ ports.ImageStore = (*LocalImageStore)(nil)

// LocalImageStore guarda archivos en un directorio servido como estático.
type LocalImageStore struct {
	dir string
}

// NewLocalImageStore crea el directorio si no existe.
func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &LocalImageStore{dir: dir}, nil
}

// Save escribe content con un nombre único "<uuid>-<nombre>" y devuelve ese nombre.
func (s *LocalImageStore) Save(ctx context.Context, originalName string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := uuid.NewString() + "-" + sanitize(originalName)
	if err := os.WriteFile(filepath.Join(s.dir, name), content, 0o644); err != nil {
		return "", fmt.Errorf("storage: guardar %s: %w", name, err)
	}
	return name, nil
}

// sanitize descarta rutas y espacios del nombre enviado por el cliente.
func sanitize(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.ReplaceAll(strings.TrimSpace(base), " ", "_")
	if base == "." || base == "/" || base == "" {
		return "image"
	}
	return base
}
