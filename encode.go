package gamepaint

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultOutputDir is where OutputPath places files when no directory
// is given.
const DefaultOutputDir = "output"

// jpegQuality is used for all JPEG encodes.
const jpegQuality = 90

// parseFormat maps a format name ("PNG", "jpeg", "gif", ...) to an
// imaging format. Unknown names fall back to PNG with a warning, in
// keeping with the best-effort contract.
func parseFormat(format string) imaging.Format {
	f, err := imaging.FormatFromExtension(strings.ToLower(format))
	if err != nil {
		Logger().Warn("unknown image format, defaulting to PNG", "format", format)
		return imaging.PNG
	}
	return f
}

// Encode writes the canvas to w in the given format ("PNG", "JPEG",
// "GIF", ...). Unknown formats encode as PNG.
func (c *Canvas) Encode(w io.Writer, format string) error {
	f := parseFormat(format)
	return imaging.Encode(w, c.Image(), f, imaging.JPEGQuality(jpegQuality))
}

// Bytes returns the canvas encoded in the given format.
func (c *Canvas) Bytes(format string) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Base64 returns the canvas encoded in the given format as a base64
// string.
func (c *Canvas) Base64(format string) (string, error) {
	b, err := c.Bytes(format)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DataURI returns the canvas as a data: URI suitable for direct
// embedding.
func (c *Canvas) DataURI(format string) (string, error) {
	b64, err := c.Base64(format)
	if err != nil {
		return "", err
	}
	mime := "image/png"
	switch strings.ToUpper(format) {
	case "JPEG", "JPG":
		mime = "image/jpeg"
	case "GIF":
		mime = "image/gif"
	}
	return "data:" + mime + ";base64," + b64, nil
}

// Save encodes the canvas and writes it to path, creating parent
// directories as needed. The format follows the file extension; an
// unrecognized extension saves as PNG. The absolute path written is
// returned.
func (c *Canvas) Save(path string) (string, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		Logger().Warn("unknown file extension, saving as PNG", "path", path)
		f = imaging.PNG
	}

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := imaging.Encode(out, c.Image(), f, imaging.JPEGQuality(jpegQuality)); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return filepath.Abs(path)
}

// OutputPath joins a filename with an output directory, creating the
// directory if needed. An empty dir uses DefaultOutputDir.
func OutputPath(filename, dir string) (string, error) {
	if dir == "" {
		dir = DefaultOutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, filename), nil
}
