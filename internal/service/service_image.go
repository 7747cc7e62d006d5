package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/MKhiriev/gumi-collection/internal/config"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const imageJPEGQuality = 80

type imageService struct {
	maxSide        int
	maxUploadBytes int64

	logger *logger.Logger
}

// NewImageService returns an ImageService that downscales uploads so that the
// longest edge is at most cfg.MaxSide and re-encodes them as JPEG.
func NewImageService(cfg config.Images, logger *logger.Logger) ImageService {
	return &imageService{
		maxSide:        cfg.MaxSide,
		maxUploadBytes: cfg.MaxUploadBytes,
		logger:         logger,
	}
}

// ToDataURL accepts JPEG, PNG and WebP input and returns a
// "data:image/jpeg;base64,..." URL.
func (s *imageService) ToDataURL(ctx context.Context, r io.Reader) (string, error) {
	if s.maxUploadBytes > 0 {
		r = io.LimitReader(r, s.maxUploadBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading image data: %w", err)
	}
	if s.maxUploadBytes > 0 && int64(len(data)) > s.maxUploadBytes {
		return "", ErrImageTooLarge
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*imageService.ToDataURL").Int("bytes", len(data)).Msg("decoding image failed")
		return "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	img = downscale(img, s.maxSide)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: imageJPEGQuality}); err != nil {
		return "", fmt.Errorf("encoding JPEG: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("format", format).
		Int("in_bytes", len(data)).
		Int("out_bytes", buf.Len()).
		Msg("image converted")

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// downscale resizes img so neither edge exceeds maxSide, keeping the aspect
// ratio. maxSide <= 0 disables resizing.
func downscale(img image.Image, maxSide int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}

	newW, newH := maxSide, maxSide
	if w > h {
		newH = max(1, h*maxSide/w)
	} else {
		newW = max(1, w*maxSide/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
