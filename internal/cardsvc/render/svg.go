package render

import (
	"bytes"
	"encoding/base64"

	svg "github.com/ajstarks/svgo"

	"github.com/avvvet/card-services/internal/cardsvc/models"
)

const (
	svgWidth  = 420
	svgHeight = 240
)

// BuildSVG renders the scalable vector card artifact: brand band, full name,
// designation, visible id label, QR code linking to the card page and the
// plaintext URL as a manual-entry fallback. Text content is escaped by svgo.
func BuildSVG(card *models.Card, publicURL string) ([]byte, error) {
	qr, err := QRCodePNG(publicURL, QRSize)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(svgWidth, svgHeight)

	canvas.Rect(0, 0, svgWidth, svgHeight, "fill:#ffffff;stroke:#d8d8d8;stroke-width:2")
	canvas.Rect(0, 0, svgWidth, 56, "fill:#1f3a5f")
	canvas.Text(20, 36, Brand, "font-family:Helvetica,Arial,sans-serif;font-size:20px;font-weight:bold;fill:#ffffff")

	canvas.Text(20, 112, card.FullName(), "font-family:Helvetica,Arial,sans-serif;font-size:26px;font-weight:bold;fill:#1a1a1a")
	canvas.Text(20, 140, card.Designation, "font-family:Helvetica,Arial,sans-serif;font-size:16px;fill:#555555")

	canvas.Image(296, 72, 104, 104, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(qr))

	canvas.Text(20, 196, "ID: "+card.ID, "font-family:Helvetica,Arial,sans-serif;font-size:10px;fill:#888888")
	canvas.Line(20, 204, svgWidth-20, 204, "stroke:#e4e4e4;stroke-width:1")
	canvas.Text(20, 222, publicURL, "font-family:Helvetica,Arial,sans-serif;font-size:11px;fill:#1f6feb")

	canvas.End()
	return buf.Bytes(), nil
}
