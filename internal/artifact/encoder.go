package artifact

import (
	"fmt"
	"image"

	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

// QRSize is the edge length of the QR bitmap pasted onto the template.
const QRSize = 195

// EncodeQR renders the payload as a QR symbol and resamples it to exactly
// QRSize x QRSize. The encoder picks the minimum symbol version that fits
// the payload; an oversized payload (beyond QR capacity) fails here and the
// caller reports it as an encoding error.
func EncodeQR(payload string) (image.Image, error) {
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("build qr symbol: %w", err)
	}
	// Negative size renders at a fixed 4px per module; the exact output
	// dimension then comes from the high-quality resample below.
	return resample(code.Image(-4), QRSize, QRSize), nil
}

// resample scales src to w x h with the Catmull-Rom kernel.
func resample(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
