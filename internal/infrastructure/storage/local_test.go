package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardops/gardops-api/internal/infrastructure/storage"
)

func TestLocalStore_GuardarYAbrir(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ref, tamano, err := store.Guardar(context.Background(), "contrato.pdf", strings.NewReader("contenido de prueba"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("contenido de prueba")), tamano)
	assert.True(t, strings.HasSuffix(ref, ".pdf"), "la referencia conserva la extensión: %s", ref)

	rc, err := store.Abrir(context.Background(), ref)
	require.NoError(t, err)
	defer rc.Close()
	leido, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "contenido de prueba", string(leido))
}

// TestLocalStore_MismoNombreNoColisiona verifica que dos subidas con el mismo
// nombre de archivo producen referencias distintas.
func TestLocalStore_MismoNombreNoColisiona(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ref1, _, err := store.Guardar(context.Background(), "cedula.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	ref2, _, err := store.Guardar(context.Background(), "cedula.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, ref1, ref2)
}

func TestLocalStore_EliminarIdempotente(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ref, _, err := store.Guardar(context.Background(), "anexo.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Eliminar(context.Background(), ref))
	require.NoError(t, store.Eliminar(context.Background(), ref), "eliminar dos veces no es error")

	_, err = store.Abrir(context.Background(), ref)
	assert.Error(t, err)
}

// TestLocalStore_RechazaEscapeDelDirectorio cubre referencias maliciosas con
// rutas relativas o absolutas.
func TestLocalStore_RechazaEscapeDelDirectorio(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	for _, ref := range []string{"../fuera.txt", "/etc/passwd", "a/../../b"} {
		_, err := store.Abrir(context.Background(), ref)
		assert.Error(t, err, "referencia %q debe rechazarse", ref)
	}
}
