// Package pdf genera el PDF de un documento renderizado desde plantilla
// (contratos, anexos, cartas). El cuerpo llega como HTML simple con las
// variables ya sustituidas; aquí se aplana a párrafos de texto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del documento                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUERPO: párrafos del documento                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	colorPrimary = &props.Color{Red: 23, Green: 43, Blue: 77}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoGenerator implementa usecase.GeneradorPDF usando Maroto v2.
type MarotoGenerator struct{}

// NewMarotoGenerator construye el generador.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

// GenerarDesdeTexto genera el PDF y devuelve sus bytes.
func (g *MarotoGenerator) GenerarDesdeTexto(titulo, cuerpo string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(18).WithRightMargin(18).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(titulo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(12).Add(col.New(12).Add(
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
		}),
	)))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(4))

	for _, parrafo := range aplanarHTML(cuerpo) {
		alto := altoParrafo(parrafo)
		m.AddRows(row.New(alto).Add(col.New(12).Add(
			text.New(parrafo, props.Text{Size: 10, Align: align.Left, Top: 1}),
		)))
	}

	m.AddRows(row.New(6))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Documento generado el "+time.Now().Format("02/01/2006"), props.Text{
			Size: 7.5, Color: colorGray, Align: align.Right, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

var (
	patronSaltos = regexp.MustCompile(`(?i)<\s*(/p|br\s*/?|/div|/h[1-6]|/li)\s*>`)
	patronTags   = regexp.MustCompile(`<[^>]*>`)
)

// aplanarHTML convierte el cuerpo HTML en párrafos de texto plano: los cierres
// de bloque se vuelven saltos de párrafo y el resto de los tags se descarta.
func aplanarHTML(cuerpo string) []string {
	plano := patronSaltos.ReplaceAllString(cuerpo, "\n")
	plano = patronTags.ReplaceAllString(plano, "")
	plano = strings.ReplaceAll(plano, "&nbsp;", " ")
	plano = strings.ReplaceAll(plano, "&amp;", "&")
	plano = strings.ReplaceAll(plano, "&lt;", "<")
	plano = strings.ReplaceAll(plano, "&gt;", ">")

	var parrafos []string
	for _, linea := range strings.Split(plano, "\n") {
		if s := strings.TrimSpace(linea); s != "" {
			parrafos = append(parrafos, s)
		}
	}
	return parrafos
}

// altoParrafo estima el alto de fila según el largo del texto (unas 95
// letras por línea a tamaño 10 en A4 con estos márgenes).
func altoParrafo(parrafo string) float64 {
	lineas := len(parrafo)/95 + 1
	return float64(lineas*5 + 2)
}
