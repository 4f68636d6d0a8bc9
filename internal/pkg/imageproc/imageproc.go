package imageproc

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

const (
	thumbnailWidth  = 400
	thumbnailHeight = 400
	previewMaxEdge  = 1600
	jpegQuality     = 85
)

// ProcessedImage holds the encoded variants of an upload
type ProcessedImage struct {
	Width     int
	Height    int
	Preview   []byte
	Thumbnail []byte
}

// Process decodes an uploaded image and produces a bounded preview and
// a square thumbnail, both JPEG encoded.
func Process(r io.Reader) (*ProcessedImage, error) {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()

	preview := src
	if bounds.Dx() > previewMaxEdge || bounds.Dy() > previewMaxEdge {
		preview = imaging.Fit(src, previewMaxEdge, previewMaxEdge, imaging.Lanczos)
	}

	thumb := imaging.Fill(src, thumbnailWidth, thumbnailHeight, imaging.Center, imaging.Lanczos)

	previewBytes, err := encodeJPEG(preview)
	if err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}
	thumbBytes, err := encodeJPEG(thumb)
	if err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	return &ProcessedImage{
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Preview:   previewBytes,
		Thumbnail: thumbBytes,
	}, nil
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
