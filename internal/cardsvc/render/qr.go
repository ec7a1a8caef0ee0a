package render

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRSize is the pixel width of generated QR code images.
const QRSize = 256

// QRCodePNG encodes url into a square QR code PNG of size pixels. Output is
// deterministic for a fixed url and size. Encoding failures propagate to the
// caller; there is no fallback image.
func QRCodePNG(url string, size int) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}
