// Package scenario reads and writes knapsack instances as YAML or JSON files.
//
// A scenario is what the presentation layer hands to the solvers: a
// capacity and a list of items. Items that arrive without an ID are given
// a UUID on decode so that solutions can refer to them unambiguously.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	json "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/core"
)

// ErrUnknownFormat is returned for a file extension or format name that is
// neither YAML nor JSON.
var ErrUnknownFormat = errors.New("scenario: unknown format")

// Format selects the encoding of a scenario.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// Scenario is one knapsack instance.
type Scenario struct {
	Name     string      `json:"name,omitempty" yaml:"name,omitempty"`
	Capacity int         `json:"capacity" yaml:"capacity"`
	Items    []core.Item `json:"items" yaml:"items"`
}

// Validate checks the instance with core.Validate.
func (s *Scenario) Validate() error {
	return core.Validate(s.Items, s.Capacity)
}

// FormatOf maps a file extension to a Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Decode reads a scenario in the given format and fills in missing IDs.
// The result is validated.
func Decode(r io.Reader, f Format) (*Scenario, error) {
	var sc Scenario
	switch f {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&sc); err != nil {
			return nil, fmt.Errorf("scenario: decode yaml: %w", err)
		}
	case JSON:
		if err := json.NewDecoder(r).Decode(&sc); err != nil {
			return nil, fmt.Errorf("scenario: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	for i := range sc.Items {
		if sc.Items[i].ID == "" {
			sc.Items[i].ID = uuid.NewString()
		}
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Encode writes sc in the given format.
func Encode(w io.Writer, f Format, sc *Scenario) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sc); err != nil {
			return fmt.Errorf("scenario: encode yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		b, err := json.MarshalIndent(sc, "", "  ")
		if err != nil {
			return fmt.Errorf("scenario: encode json: %w", err)
		}
		_, err = w.Write(append(b, '\n'))
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Load reads the scenario file at path; the extension picks the format.
func Load(path string) (*Scenario, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer fh.Close()

	return Decode(fh, f)
}

// Save writes sc to path, creating or truncating it.
func Save(path string, sc *Scenario) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	if err := Encode(fh, f, sc); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

// Default returns the demo backpack: five camping items and capacity 50.
func Default() *Scenario {
	return &Scenario{
		Name:     "Camping trip",
		Capacity: 50,
		Items: []core.Item{
			{ID: "1", Name: "Laptop", Weight: 3, Value: 10},
			{ID: "2", Name: "Camera", Weight: 4, Value: 12},
			{ID: "3", Name: "Food", Weight: 8, Value: 6},
			{ID: "4", Name: "Tent", Weight: 10, Value: 18},
			{ID: "5", Name: "Water", Weight: 15, Value: 15},
		},
	}
}
