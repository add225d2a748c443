package pdf

import (
	"bytes"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/documento/domain/layout"

	"github.com/go-pdf/fpdf"
)

// Sink implementa render.Sink sobre fpdf y produce un PDF en memoria.
// Los errores de dibujo quedan acumulados dentro de fpdf y emergen en Bytes.
type Sink struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// NewSink crea un sink PDF con el tamaño de página de las constantes
func NewSink(c layout.Constants) *Sink {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: c.PageWidth, Ht: c.PageHeight},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont("Helvetica", "", 9)

	return &Sink{
		pdf: doc,
		// Los fonts core de PDF son latin-1: el texto UTF-8 del pedido
		// (títulos con acentos, elipsis) necesita traducción.
		tr: doc.UnicodeTranslatorFromDescriptor(""),
	}
}

// AddPage abre una página nueva
func (s *Sink) AddPage() {
	s.pdf.AddPage()
}

// Text dibuja texto alineado a la izquierda en (x, y)
func (s *Sink) Text(x, y float64, text string) {
	s.pdf.Text(x, y, s.tr(text))
}

// TextRight dibuja texto con su borde derecho en (x, y)
func (s *Sink) TextRight(x, y float64, text string) {
	t := s.tr(text)
	s.pdf.Text(x-s.pdf.GetStringWidth(t), y, t)
}

// Rect dibuja el contorno de un rectángulo
func (s *Sink) Rect(x, y, w, h float64) {
	s.pdf.Rect(x, y, w, h, "D")
}

// Line dibuja una línea recta
func (s *Sink) Line(x1, y1, x2, y2 float64) {
	s.pdf.Line(x1, y1, x2, y2)
}

// Bytes materializa el documento. Devuelve el primer error de dibujo o de
// salida acumulado por fpdf.
func (s *Sink) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
