package qrcode

import qr "github.com/skip2/go-qrcode"

// Generate renders a room invite link as a QR code PNG.
func Generate(url string) ([]byte, error) {
	return qr.Encode(url, qr.Medium, 256)
}
