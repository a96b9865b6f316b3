package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/evert/color-hints-mcp-go/internal/lookup"
	"github.com/evert/color-hints-mcp-go/internal/scan"
)

// Settings is the color settings file (colorhints.yaml).
type Settings struct {
	AllowedNotations []string `yaml:"allowed_notations"`
	HexAlphaOrder    string   `yaml:"hex_alpha_order"`
	WindowRadius     int      `yaml:"window_radius"`
	AlphaPrecision   int      `yaml:"alpha_precision"`
	PantoneBooks     []string `yaml:"pantone_books"`

	// ARGBHex is the older boolean form of hex_alpha_order: argb.
	ARGBHex *bool `yaml:"argb_hex"`
}

// LoadSettings reads the settings file at path. An empty path yields the
// zero Settings, which selects every default.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		return &Settings{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return s, nil
}

// ParseSettings decodes settings YAML and folds the legacy argb_hex key into
// HexAlphaOrder. Unknown keys are rejected.
func ParseSettings(data []byte) (*Settings, error) {
	s := &Settings{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if s.ARGBHex != nil {
		legacy := scan.OrderRGBA.String()
		if *s.ARGBHex {
			legacy = scan.OrderARGB.String()
		}
		switch {
		case s.HexAlphaOrder == "":
			s.HexAlphaOrder = legacy
		case !strings.EqualFold(s.HexAlphaOrder, legacy):
			return nil, fmt.Errorf("argb_hex: %v conflicts with hex_alpha_order: %s", *s.ARGBHex, s.HexAlphaOrder)
		}
	}
	if s.WindowRadius < 0 {
		return nil, fmt.Errorf("window_radius must not be negative, got %d", s.WindowRadius)
	}
	if s.AlphaPrecision < 0 || s.AlphaPrecision > scan.MaxPrecision {
		return nil, fmt.Errorf("alpha_precision must be between 1 and %d, got %d", scan.MaxPrecision, s.AlphaPrecision)
	}
	if _, err := s.ScanOptions(); err != nil {
		return nil, err
	}
	return s, nil
}

// ScanOptions converts the settings to engine options.
func (s *Settings) ScanOptions() (scan.Options, error) {
	allowed, err := scan.ParseKindSet(s.AllowedNotations)
	if err != nil {
		return scan.Options{}, fmt.Errorf("allowed_notations: %w", err)
	}
	order, err := scan.ParseOrder(s.HexAlphaOrder)
	if err != nil {
		return scan.Options{}, fmt.Errorf("hex_alpha_order: %w", err)
	}
	return scan.Options{
		Allowed:      allowed,
		Order:        order,
		Precision:    s.AlphaPrecision,
		WindowRadius: s.WindowRadius,
	}, nil
}

// LookupOptions returns the table loading options for the given Pantone
// directory.
func (s *Settings) LookupOptions(pantoneDir string) lookup.Options {
	return lookup.Options{
		PantoneDir:   pantoneDir,
		PantoneBooks: s.PantoneBooks,
	}
}
