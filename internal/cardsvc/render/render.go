package render

import (
	"github.com/avvvet/card-services/internal/cardsvc/models"
)

// Brand is the header label printed on every artifact and used as the vCard
// organization field.
const Brand = "Card Services"

// Build renders the visual artifact for card in the given format. Rendering
// the same record and URL twice produces byte-identical output.
func Build(f Format, card *models.Card, publicURL string) ([]byte, error) {
	if f == FormatPDF {
		return BuildPDF(card, publicURL)
	}
	return BuildSVG(card, publicURL)
}
