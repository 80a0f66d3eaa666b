// Package storage implementa el almacenamiento binario de documentos sobre el
// filesystem local. La referencia que devuelve Guardar es relativa al
// directorio base, de modo que mover el directorio completo no rompe nada.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gardops/gardops-api/internal/application/usecase"
)

var _ usecase.ArchivoStore = (*LocalStore)(nil)

// LocalStore guarda archivos bajo un directorio base.
type LocalStore struct {
	dir string
}

// NewLocalStore construye el store y asegura el directorio base.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// Guardar persiste el contenido bajo una referencia nueva. El nombre original
// solo aporta la extensión; el resto de la referencia es un UUID para que dos
// subidas con el mismo nombre jamás colisionen.
func (s *LocalStore) Guardar(ctx context.Context, nombre string, contenido io.Reader) (string, int64, error) {
	ref := uuid.New().String() + sanearExtension(nombre)
	ruta := filepath.Join(s.dir, ref)

	f, err := os.Create(ruta)
	if err != nil {
		return "", 0, fmt.Errorf("storage: crear archivo: %w", err)
	}
	tamano, err := io.Copy(f, contenido)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(ruta)
		return "", 0, fmt.Errorf("storage: escribir archivo: %w", err)
	}
	return ref, tamano, nil
}

// Abrir abre el contenido de una referencia. El caller debe cerrar el reader.
func (s *LocalStore) Abrir(ctx context.Context, ref string) (io.ReadCloser, error) {
	ruta, err := s.rutaSegura(ref)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(ruta)
	if err != nil {
		return nil, fmt.Errorf("storage: abrir %s: %w", ref, err)
	}
	return f, nil
}

// Eliminar borra el archivo de una referencia. Borrar una referencia
// inexistente no es error: el estado final es el mismo.
func (s *LocalStore) Eliminar(ctx context.Context, ref string) error {
	ruta, err := s.rutaSegura(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(ruta); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: eliminar %s: %w", ref, err)
	}
	return nil
}

// rutaSegura resuelve la referencia dentro del directorio base y rechaza
// cualquier intento de escapar de él.
func (s *LocalStore) rutaSegura(ref string) (string, error) {
	limpia := filepath.Clean(ref)
	if limpia == "." || strings.Contains(limpia, "..") || filepath.IsAbs(limpia) {
		return "", fmt.Errorf("storage: referencia inválida: %q", ref)
	}
	return filepath.Join(s.dir, limpia), nil
}

func sanearExtension(nombre string) string {
	ext := strings.ToLower(filepath.Ext(nombre))
	if len(ext) > 10 {
		return ""
	}
	for _, r := range ext[min(1, len(ext)):] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
