package media

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// Default dimensions for stored registration photos.
const normalizedSize = 720

// Normalizer turns a raw image payload into the fixed-size photo the
// access store expects.
type Normalizer interface {
	Normalize(raw []byte) ([]byte, error)
}

// Resizer is the production Normalizer: it decodes the payload, crops
// it to a centered square of 720x720 and re-encodes it as JPEG.
type Resizer struct {
	size int
}

// NewResizer returns a Resizer producing 720x720 output.
func NewResizer() *Resizer {
	return &Resizer{size: normalizedSize}
}

func (r *Resizer) Normalize(raw []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	filled := imaging.Fill(img, r.size, r.size, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, filled, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
