// SPDX-License-Identifier: MPL-2.0

package humorfile

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/humors/humor/internal/cueutil"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	// FormatYAML is the default humorfile format.
	FormatYAML Format = "yaml"
	// FormatCUE is selected by the ".cue" extension.
	FormatCUE Format = "cue"
	// FormatTOML is selected by the ".toml" extension.
	FormatTOML Format = "toml"

	// MaxDocumentSize bounds the size of a single humorfile.
	MaxDocumentSize = cueutil.DefaultMaxFileSize
)

//go:embed humorfile_schema.cue
var humorfileSchema []byte

type (
	// Format identifies the serialization of a humorfile.
	Format string

	// Document is a single decoded humorfile. It is consumed by the Loader and
	// not retained once its commands have been merged.
	Document struct {
		// Import lists other humorfiles, relative to this document's directory.
		Import []string `json:"import,omitempty" yaml:"import" toml:"import"`
		// Commands maps domain -> category -> name -> shell command.
		Commands map[string]map[string]map[string]string `json:"commands,omitempty" yaml:"commands" toml:"commands"`
	}
)

// FormatFromPath picks the document format from the file extension.
// Unknown extensions are read as YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return FormatCUE
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Decode parses data in the format implied by path. Absent keys decode to
// empty values and an empty input is an empty document. Failures are
// reported as *ParseError.
func Decode(data []byte, path string) (*Document, error) {
	if int64(len(data)) > MaxDocumentSize {
		return nil, &ParseError{
			Path: path,
			Err:  fmt.Errorf("file size %d bytes exceeds limit of %d bytes", len(data), MaxDocumentSize),
		}
	}

	var (
		doc Document
		err error
	)
	switch FormatFromPath(path) {
	case FormatCUE:
		err = decodeCUE(data, path, &doc)
	case FormatTOML:
		err = toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &doc, nil
}

func decodeCUE(data []byte, path string, doc *Document) error {
	res, err := cueutil.ParseAndDecode[Document](humorfileSchema, data, "#Humorfile",
		cueutil.WithFilename(path),
		cueutil.WithMaxFileSize(MaxDocumentSize),
	)
	if err != nil {
		return err
	}
	*doc = *res
	return nil
}
