// Package swatchfile loads swatch documents from JSON or YAML files.
//
// The schema mirrors the plain objects accepted by the original JavaScript
// entry point: groups live under "swatches", each with its own "swatches"
// list of colors, and standalone colors live under "colors".
//
//	swatches:
//	  - name: Palette 1
//	    swatches:
//	      - name: Red
//	        object_type: global
//	        data: {mode: rgb, values: [1, 0, 0]}
//	colors:
//	  - name: Blue
//	    hex: "#0000ff"
//
// JSON is accepted as well, since it is parsed by the same YAML decoder.
// Unknown fields are rejected so that typos do not silently drop colors.
package swatchfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arloliu/ase/errs"
	"github.com/arloliu/ase/format"
	"github.com/arloliu/ase/swatch"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

type fileDocument struct {
	Swatches []fileGroup `yaml:"swatches"`
	Colors   []fileColor `yaml:"colors"`
}

type fileGroup struct {
	Name     string      `yaml:"name"`
	Swatches []fileColor `yaml:"swatches"`
}

type fileColor struct {
	Name       string    `yaml:"name"`
	ObjectType *fileRole `yaml:"object_type"`
	Type       *fileRole `yaml:"type"`
	Data       *fileData `yaml:"data"`
	Hex        string    `yaml:"hex"`
}

type fileData struct {
	Mode   string    `yaml:"mode"`
	Values []float32 `yaml:"values"`
}

// fileRole holds a role as written, by name ("spot") or by number (1).
// It is resolved after decoding so that errors carry the entry path.
type fileRole struct {
	value  string
	scalar bool
}

func (r *fileRole) UnmarshalYAML(node *yaml.Node) error {
	r.value = node.Value
	r.scalar = node.Kind == yaml.ScalarNode

	return nil
}

func (r *fileRole) resolve() (format.ColorRole, error) {
	if !r.scalar {
		return 0, fmt.Errorf("%w: expected a scalar", errs.ErrInvalidColorRole)
	}

	return format.ParseColorRole(r.value)
}

// Load reads and parses the document at path.
func Load(path string) (swatch.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return swatch.Document{}, fmt.Errorf("read swatch file: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return swatch.Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Decode reads a whole document from r and parses it.
func Decode(r io.Reader) (swatch.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return swatch.Document{}, fmt.Errorf("read swatch document: %w", err)
	}

	return Parse(data)
}

// Parse converts JSON or YAML bytes into a swatch.Document.
//
// All errors wrap errs.ErrInvalidDocument and name the offending entry,
// e.g. "swatches[0].swatches[2]". Channel counts are not checked against
// the color mode.
func Parse(data []byte) (swatch.Document, error) {
	var fd fileDocument

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fd); err != nil {
		if errors.Is(err, io.EOF) {
			return swatch.Document{}, fmt.Errorf("%w: empty input", errs.ErrInvalidDocument)
		}

		return swatch.Document{}, fmt.Errorf("%w: %w", errs.ErrInvalidDocument, err)
	}

	var doc swatch.Document
	for i, fg := range fd.Swatches {
		path := fmt.Sprintf("swatches[%d]", i)
		if strings.TrimSpace(fg.Name) == "" {
			return swatch.Document{}, fmt.Errorf("%w: %s: group name is required", errs.ErrInvalidDocument, path)
		}

		group := swatch.Group{Name: fg.Name}
		for j, fc := range fg.Swatches {
			obj, err := fc.toColorObject()
			if err != nil {
				return swatch.Document{}, fmt.Errorf("%w: %s.swatches[%d]: %w", errs.ErrInvalidDocument, path, j, err)
			}
			group.Colors = append(group.Colors, obj)
		}
		doc.Groups = append(doc.Groups, group)
	}

	for i, fc := range fd.Colors {
		obj, err := fc.toColorObject()
		if err != nil {
			return swatch.Document{}, fmt.Errorf("%w: colors[%d]: %w", errs.ErrInvalidDocument, i, err)
		}
		doc.Colors = append(doc.Colors, obj)
	}

	return doc, nil
}

func (fc fileColor) toColorObject() (swatch.ColorObject, error) {
	if strings.TrimSpace(fc.Name) == "" {
		return swatch.ColorObject{}, errors.New("color name is required")
	}

	obj := swatch.ColorObject{Name: fc.Name, Role: format.RoleGlobal}

	role := fc.ObjectType
	switch {
	case fc.ObjectType != nil && fc.Type != nil:
		return swatch.ColorObject{}, fmt.Errorf("%q: object_type and type are mutually exclusive", fc.Name)
	case fc.Type != nil:
		role = fc.Type
	}
	if role != nil {
		r, err := role.resolve()
		if err != nil {
			return swatch.ColorObject{}, fmt.Errorf("%q: %w", fc.Name, err)
		}
		obj.Role = r
	}

	switch {
	case fc.Data != nil && fc.Hex != "":
		return swatch.ColorObject{}, fmt.Errorf("%q: data and hex are mutually exclusive", fc.Name)
	case fc.Hex != "":
		color, err := parseHex(fc.Hex)
		if err != nil {
			return swatch.ColorObject{}, fmt.Errorf("%q: %w", fc.Name, err)
		}
		obj.Color = color
	case fc.Data != nil:
		mode, err := format.ParseColorMode(fc.Data.Mode)
		if err != nil {
			return swatch.ColorObject{}, fmt.Errorf("%q: %w", fc.Name, err)
		}
		obj.Color = swatch.Color{Mode: mode, Values: fc.Data.Values}
	default:
		return swatch.ColorObject{}, fmt.Errorf("%q: one of data or hex is required", fc.Name)
	}

	return obj, nil
}

// parseHex converts "#rgb" or "#rrggbb" (the '#' is optional) to an RGB color in [0,1].
func parseHex(s string) (swatch.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return swatch.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return swatch.RGB(float32(c.R), float32(c.G), float32(c.B)), nil
}
