package rules

import (
	"errors"
	"fmt"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is the encoding of a rule document or subject file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrDecode            = errors.New("failed to decode")

	jsonAPI = jsoniter.Config{
		EscapeHTML:            false,
		DisallowUnknownFields: true, // catch misspelled rule fields
		SortMapKeys:           true,
	}.Froze()
)

// FormatOf chooses a [Format] from a file extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, ext)
	}
}

func decode(r io.Reader, format Format, target any) error {
	switch format {
	case FormatJSON:
		if err := jsonAPI.NewDecoder(r).Decode(target); err != nil {
			return fmt.Errorf("%w %s: %v", ErrDecode, format, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(target); err != nil {
			return fmt.Errorf("%w %s: %v", ErrDecode, format, err)
		}
	default:
		return fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, format)
	}
	return nil
}

// DecodeDocument reads and validates a rule [Document].
func DecodeDocument(r io.Reader, format Format) (*Document, error) {
	doc := new(Document)
	if err := decode(r, format, doc); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// DecodeSubject reads arbitrary data to be checked.
// Objects become map[string]any and arrays become []any, regardless of format.
func DecodeSubject(r io.Reader, format Format) (any, error) {
	var subject any
	if err := decode(r, format, &subject); err != nil {
		return nil, err
	}
	return normalize(subject), nil
}

// LoadDocument reads a rule [Document] from a file, with the format chosen by [FormatOf].
func LoadDocument(path string) (*Document, error) {
	var doc *Document
	err := withFile(path, func(r io.Reader, format Format) error {
		var err error
		doc, err = DecodeDocument(r, format)
		return err
	})
	return doc, err
}

// LoadSubject reads data to be checked from a file, with the format chosen by [FormatOf].
func LoadSubject(path string) (any, error) {
	var subject any
	err := withFile(path, func(r io.Reader, format Format) error {
		var err error
		subject, err = DecodeSubject(r, format)
		return err
	})
	return subject, err
}

func withFile(path string, do func(r io.Reader, format Format) error) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	if err := do(f, format); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// normalize converts YAML mappings with non-string keys, so every object has the same shape.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, elem := range v {
			v[key] = normalize(elem)
		}
		return v
	case map[any]any:
		converted := make(map[string]any, len(v))
		for key, elem := range v {
			converted[fmt.Sprint(key)] = normalize(elem)
		}
		return converted
	case []any:
		for i, elem := range v {
			v[i] = normalize(elem)
		}
		return v
	}
	return value
}
