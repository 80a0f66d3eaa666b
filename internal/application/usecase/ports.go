package usecase

import (
	"context"
	"io"
)

// ArchivoStore es el puerto hacia el almacenamiento binario de documentos.
// La referencia es opaca para la aplicación: la genera el store al guardar.
type ArchivoStore interface {
	// Guardar persiste el contenido y devuelve la referencia para recuperarlo.
	Guardar(ctx context.Context, nombre string, contenido io.Reader) (ref string, tamano int64, err error)
	Abrir(ctx context.Context, ref string) (io.ReadCloser, error)
	Eliminar(ctx context.Context, ref string) error
}

// GeneradorPDF es el puerto hacia la generación de PDF a partir de un
// documento renderizado desde plantilla.
type GeneradorPDF interface {
	GenerarDesdeTexto(titulo, cuerpo string) ([]byte, error)
}
