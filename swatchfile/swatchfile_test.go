package swatchfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arloliu/ase/errs"
	"github.com/arloliu/ase/format"
	"github.com/arloliu/ase/swatch"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "palette.yaml"))
	require.NoError(t, err)

	want := swatch.Document{
		Groups: []swatch.Group{
			{
				Name: "Palette 1",
				Colors: []swatch.ColorObject{
					{Name: "Red", Role: format.RoleGlobal, Color: swatch.RGB(1, 0, 0)},
					{Name: "Pantone Ink", Role: format.RoleSpot, Color: swatch.CMYK(0, 0.91, 0.76, 0)},
					{Name: "Teal", Role: format.RoleProcess, Color: swatch.LAB(0.55, -37.5, -8.25)},
				},
			},
			{Name: "Empty"},
		},
		Colors: []swatch.ColorObject{
			{Name: "Blue", Role: format.RoleGlobal, Color: swatch.RGB(0, 0, 1)},
			{Name: "Paper", Role: format.RoleProcess, Color: swatch.Gray(0.95)},
		},
	}

	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_JSON(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "palette.json"))
	require.NoError(t, err)

	require.Len(t, doc.Groups, 1)
	require.Len(t, doc.Groups[0].Colors, 3)
	require.Len(t, doc.Colors, 1)

	want := swatch.ColorObject{Name: "Green", Role: format.RoleGlobal, Color: swatch.RGB(0, 1, 0)}
	if diff := cmp.Diff(want, doc.Groups[0].Colors[1]); diff != "" {
		t.Errorf("color mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader("colors:\n  - name: Ink\n    hex: \"111\"\n"))
	require.NoError(t, err)
	require.Len(t, doc.Colors, 1)
	require.Equal(t, format.ColorModeRGB, doc.Colors[0].Color.Mode)
	require.InDeltaSlice(t, []float32{1.0 / 15, 1.0 / 15, 1.0 / 15}, doc.Colors[0].Color.Values, 1e-6)
}

func TestParse_Hex(t *testing.T) {
	tests := []struct {
		hex  string
		want []float32
	}{
		{"#ff0000", []float32{1, 0, 0}},
		{"#FFFFFF", []float32{1, 1, 1}},
		{"000000", []float32{0, 0, 0}},
		{"#808080", []float32{128.0 / 255, 128.0 / 255, 128.0 / 255}},
		{"#f00", []float32{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			doc, err := Parse([]byte("colors: [{name: c, hex: \"" + tt.hex + "\"}]"))
			require.NoError(t, err)
			require.InDeltaSlice(t, tt.want, doc.Colors[0].Color.Values, 1e-6)
		})
	}
}

func TestParse_RoleDefaultsToGlobal(t *testing.T) {
	doc, err := Parse([]byte("colors: [{name: c, data: {mode: gray, values: [0]}}]"))
	require.NoError(t, err)
	require.Equal(t, format.RoleGlobal, doc.Colors[0].Role)
}

func TestParse_KeepsMismatchedValueCounts(t *testing.T) {
	doc, err := Parse([]byte("colors: [{name: odd, data: {mode: gray, values: [0.1, 0.2, 0.3]}}]"))
	require.NoError(t, err)
	require.Equal(t, []float32{0.1, 0.2, 0.3}, doc.Colors[0].Color.Values)
}

func TestParse_EmptyDocument(t *testing.T) {
	doc, err := Parse([]byte("{}"))
	require.NoError(t, err)
	require.Empty(t, doc.Groups)
	require.Empty(t, doc.Colors)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		path    string
		wantErr error
	}{
		{"empty input", "", "empty input", nil},
		{"malformed", "swatches: [", "", nil},
		{"unknown field", "colors: [{name: c, hex: '#000', colour: red}]", "colour", nil},
		{"group without name", "swatches: [{swatches: []}]", "swatches[0]", nil},
		{"color without name", "colors: [{hex: '#000'}]", "colors[0]", nil},
		{"no color data", "colors: [{name: c}]", "one of data or hex", nil},
		{"data and hex", "colors: [{name: c, hex: '#000', data: {mode: rgb, values: [0, 0, 0]}}]", "mutually exclusive", nil},
		{"both role fields", "colors: [{name: c, hex: '#000', type: spot, object_type: spot}]", "mutually exclusive", nil},
		{"bad hex", "colors: [{name: c, hex: '#zzzzzz'}]", "invalid hex color", nil},
		{"bad mode", "swatches: [{name: g, swatches: [{name: c, data: {mode: hsv, values: [0]}}]}]", "swatches[0].swatches[0]", errs.ErrInvalidColorMode},
		{"bad role", "colors: [{name: c, hex: '#000', object_type: tint}]", "tint", errs.ErrInvalidColorRole},
		{"role out of range", "colors: [{name: c, hex: '#000', type: 5}]", "\"5\"", errs.ErrInvalidColorRole},
		{"bad role path", "colors: [{name: ok, hex: '#000'}, {name: c, hex: '#000', object_type: 7}]", "colors[1]", errs.ErrInvalidColorRole},
		{"bad member role path", "swatches: [{name: g, swatches: [{name: c, hex: '#000', type: tint}]}]", "swatches[0].swatches[0]", errs.ErrInvalidColorRole},
		{"non-scalar role", "colors: [{name: c, hex: '#000', object_type: [spot]}]", "colors[0]", errs.ErrInvalidColorRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.ErrorIs(t, err, errs.ErrInvalidDocument)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			require.Contains(t, err.Error(), tt.path)
		})
	}
}
