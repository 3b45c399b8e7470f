package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"

	// Decoders for upload formats beyond PNG.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// TesseractEngine implements Engine using the gosseract client.
type TesseractEngine struct {
	languages     []string
	pageSegMode   gosseract.PageSegMode
	clientFactory func() *gosseract.Client
}

// NewTesseractEngine constructs a Tesseract-backed OCR engine. Languages are
// trained-data hints (e.g. "eng"); pageSegMode selects Tesseract's layout
// analysis, mode 6 treats the image as a single uniform text block.
func NewTesseractEngine(languages []string, pageSegMode int) *TesseractEngine {
	return &TesseractEngine{
		languages:     languages,
		pageSegMode:   gosseract.PageSegMode(pageSegMode),
		clientFactory: gosseract.NewClient,
	}
}

// Name identifies the engine.
func (e *TesseractEngine) Name() string { return "tesseract" }

// Recognize decodes the image, converts it to grayscale and runs Tesseract
// over the result. The returned text is trimmed of surrounding whitespace;
// an image with no recognizable text yields an empty string, not an error.
func (e *TesseractEngine) Recognize(ctx context.Context, imageData []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	gray, err := toGrayscalePNG(imageData)
	if err != nil {
		return "", err
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(gray); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if len(e.languages) > 0 {
		if err := c.SetLanguage(e.languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}
	if err := c.SetPageSegMode(e.pageSegMode); err != nil {
		return "", fmt.Errorf("set page segmentation mode: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// toGrayscalePNG decodes an uploaded image and re-encodes it as a grayscale
// PNG. Grayscale input improves Tesseract's segmentation on photos of
// printed numbers.
func toGrayscalePNG(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, src, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("encode grayscale image: %w", err)
	}
	return buf.Bytes(), nil
}
