package schema

import (
	"path/filepath"
	"strings"
)

// Custom string types for type safety.
type (
	// OutputMode represents the format of the textual summary.
	OutputMode string

	// CardLayout represents which set of cards gets rendered.
	CardLayout string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All card layouts supported.
const (
	GlobalLayout CardLayout = "global" // default
	RepoLayout   CardLayout = "repos"
)

// ValidOutputModes lists the accepted values for --output.
var ValidOutputModes = map[OutputMode]any{
	TextOut:    nil,
	CSVOut:     nil,
	JSONOut:    nil,
	ParquetOut: nil,
}

// Repository and file tree conventions.
const (
	UnknownLanguage = "Unknown" // TopLanguage when a tree has no eligible files
	NoExtension     = ""        // extension bucket for files without a dot
	HiddenPrefix    = "."       // files starting with this are not counted
	DefaultMarker   = ".git"    // directory marking a repository root
)

// Card defaults.
const (
	DefaultYear          = 2024
	DefaultImageFile     = "git_stats.png"
	DefaultCardWidth     = 800
	DefaultCardHeight    = 400
	DefaultPadding       = 20
	DefaultFontSize      = 24
	DefaultTitleFontSize = 36
	DefaultBackground    = "#f4f4f4"
	DefaultCardColor     = "#ffffff"
	DefaultBorderColor   = "#e0e0e0"
	DefaultTextColor     = "#333333"
)

// ImageFormat is the raster encoding of a rendered card.
type ImageFormat string

// All image formats supported, keyed by file extension in ImageFormatFromPath.
const (
	PNGFormat  ImageFormat = "png"
	JPEGFormat ImageFormat = "jpeg"
	GIFFormat  ImageFormat = "gif"
	BMPFormat  ImageFormat = "bmp"
	TIFFFormat ImageFormat = "tiff"
)

var imageExtensions = map[string]ImageFormat{
	".png":  PNGFormat,
	".jpg":  JPEGFormat,
	".jpeg": JPEGFormat,
	".gif":  GIFFormat,
	".bmp":  BMPFormat,
	".tif":  TIFFFormat,
	".tiff": TIFFFormat,
}

// ImageFormatFromPath infers the image format from the extension of path.
func ImageFormatFromPath(path string) (ImageFormat, bool) {
	format, ok := imageExtensions[strings.ToLower(filepath.Ext(path))]
	return format, ok
}
