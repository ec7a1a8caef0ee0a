package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/avvvet/card-services/internal/cardsvc/models"
)

// Standard visiting card page, millimeters.
const (
	pdfWidth  = 89.0
	pdfHeight = 51.0
)

// pdfEpoch pins the document creation date so repeated renders of the same
// record are byte-identical.
var pdfEpoch = time.Unix(0, 0).UTC()

// BuildPDF renders the fixed-page card artifact with a rasterized QR code.
func BuildPDF(card *models.Card, publicURL string) ([]byte, error) {
	qr, err := QRCodePNG(publicURL, QRSize)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pdfWidth, Ht: pdfHeight},
	})
	pdf.SetTitle("Visiting Card", false)
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFillColor(31, 58, 95)
	pdf.Rect(0, 0, pdfWidth, 12, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(6, 8, Brand)

	pdf.SetTextColor(26, 26, 26)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(6, 23, card.FullName())

	pdf.SetTextColor(85, 85, 85)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(6, 29, card.Designation)

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opt, bytes.NewReader(qr))
	pdf.ImageOptions("qr", pdfWidth-28, 15, 22, 22, false, opt, 0, "")

	pdf.SetTextColor(136, 136, 136)
	pdf.SetFont("Helvetica", "", 6.5)
	pdf.Text(6, 41, "ID: "+card.ID)

	pdf.SetTextColor(31, 111, 235)
	pdf.SetFont("Helvetica", "", 7)
	pdf.Text(6, 46, publicURL)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to build pdf: %w", err)
	}
	return buf.Bytes(), nil
}
