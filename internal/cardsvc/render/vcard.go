package render

import (
	"strings"

	"github.com/avvvet/card-services/internal/cardsvc/models"
)

// vcardEscaper escapes backslash, semicolon, comma and newlines in vCard
// values per RFC 6350 section 3.4.
var vcardEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// BuildVCard emits the contact record for a card. Field order and CRLF line
// terminators are contractual; consumers match on exact bytes.
func BuildVCard(card *models.Card, publicURL string) []byte {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	line("BEGIN:VCARD")
	line("VERSION:3.0")
	line("FN:" + vcardEscaper.Replace(card.FullName()))
	line("N:" + vcardEscaper.Replace(card.LastName) + ";" + vcardEscaper.Replace(card.FirstName) + ";;;")
	line("TITLE:" + vcardEscaper.Replace(card.Designation))
	line("ORG:" + Brand)
	line("NOTE:Card ID: " + vcardEscaper.Replace(card.ID))
	line("URL:" + publicURL)
	line("END:VCARD")

	return []byte(b.String())
}
