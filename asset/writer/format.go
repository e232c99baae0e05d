package writer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Output image format.
type Format uint32

const (
	FormatPPM Format = iota
	FormatPNG
	FormatBMP
	FormatTIFF
)

func (f Format) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	}
	return fmt.Sprintf("Format(%d)", uint32(f))
}

// Get the MIME type for this format.
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	}
	return "image/x-portable-pixmap"
}

// Parse a format name as produced by Format.String.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "ppm", "pnm":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return FormatPPM, fmt.Errorf("writer: unsupported image format %q", name)
}

// Detect the image format from the extension of filename. Files without an
// extension are written as PPM.
func FormatFromFilename(filename string) (Format, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		return FormatPPM, nil
	}
	return ParseFormat(ext)
}
