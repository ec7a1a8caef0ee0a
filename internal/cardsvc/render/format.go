package render

import "fmt"

// Format selects the visual artifact produced for a card.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

// ParseFormat validates a configured format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatSVG, FormatPDF:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown card format %q", s)
}

// ContentType is the HTTP content type served for the artifact.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "image/svg+xml; charset=utf-8"
}

// Ext is the artifact file extension.
func (f Format) Ext() string {
	if f == FormatPDF {
		return "pdf"
	}
	return "svg"
}

// Filename is the attachment name for a card's artifact download.
func Filename(f Format, id string) string {
	return "visiting-card-" + id + "." + f.Ext()
}
