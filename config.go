package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultPrecision     = 3
	defaultGridSize      = 10.0
	defaultGridDivisions = 20
	defaultArrowHead     = 0.2
	defaultFov           = 50.0
	defaultDistance      = 8.0

	maxPrecision     = 17
	maxGridDivisions = 1000
)

var errInvalidConfig = errors.New("invalid config")

type gridConfig struct {
	Size      float64 `yaml:"size"`
	Divisions int     `yaml:"divisions"`
}

type colorConfig struct {
	BasisX      string `yaml:"basis_x"`
	BasisY      string `yaml:"basis_y"`
	Vector      string `yaml:"vector"`
	Transformed string `yaml:"transformed"`
	Grid        string `yaml:"grid"`
	Axes        string `yaml:"axes"`
}

type cameraConfig struct {
	Fov      float64 `yaml:"fov"`
	Distance float64 `yaml:"distance"`
}

type config struct {
	Precision int          `yaml:"precision"`
	ArrowHead float64      `yaml:"arrow_head"`
	Grid      gridConfig   `yaml:"grid"`
	Colors    colorConfig  `yaml:"colors"`
	Camera    cameraConfig `yaml:"camera"`
}

func defaultConfig() *config {
	return &config{
		Precision: defaultPrecision,
		ArrowHead: defaultArrowHead,
		Grid: gridConfig{
			Size:      defaultGridSize,
			Divisions: defaultGridDivisions,
		},
		Colors: colorConfig{
			BasisX:      "#5aa9ff",
			BasisY:      "#6ff7a9",
			Vector:      "#c7d2fe",
			Transformed: "#fbbf24",
			Grid:        "#1f2a3a",
			Axes:        "#334155",
		},
		Camera: cameraConfig{
			Fov:      defaultFov,
			Distance: defaultDistance,
		},
	}
}

// parseConfig reads a yaml document over the defaults.
// Unknown keys are rejected. An empty document yields the defaults.
func parseConfig(b []byte) (*config, error) {
	c := defaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *config) validate() error {
	// Comparisons are negated so that NaN fails them.
	switch {
	case c.Precision < 0 || c.Precision > maxPrecision:
		return fmt.Errorf("%w: precision must be in [0, %d]", errInvalidConfig, maxPrecision)
	case !(c.ArrowHead >= 0) || math.IsInf(c.ArrowHead, 0):
		return fmt.Errorf("%w: arrow_head must be finite and not negative", errInvalidConfig)
	case !(c.Grid.Size > 0) || math.IsInf(c.Grid.Size, 0):
		return fmt.Errorf("%w: grid.size must be finite and positive", errInvalidConfig)
	case c.Grid.Divisions <= 0 || c.Grid.Divisions > maxGridDivisions:
		return fmt.Errorf("%w: grid.divisions must be in [1, %d]", errInvalidConfig, maxGridDivisions)
	case !(c.Camera.Fov > 0 && c.Camera.Fov < 180):
		return fmt.Errorf("%w: camera.fov must be in (0, 180)", errInvalidConfig)
	case !(c.Camera.Distance > 0) || math.IsInf(c.Camera.Distance, 0):
		return fmt.Errorf("%w: camera.distance must be finite and positive", errInvalidConfig)
	}
	if _, err := c.palette(); err != nil {
		return err
	}
	return nil
}

type rgb [3]float32

func parseColor(s string) (rgb, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == len(s) {
		return rgb{}, fmt.Errorf("%w: color %q must start with #", errInvalidConfig, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return rgb{}, fmt.Errorf("%w: color %q must be #rgb or #rrggbb", errInvalidConfig, s)
	}
	var out rgb
	for i := range out {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return rgb{}, fmt.Errorf("%w: color %q: %v", errInvalidConfig, s, err)
		}
		out[i] = float32(v) / 255
	}
	return out, nil
}

type palette struct {
	basisX, basisY      rgb
	vector, transformed rgb
	grid, axes          rgb
}

func (c *config) palette() (palette, error) {
	var p palette
	for _, e := range []struct {
		name string
		src  string
		dst  *rgb
	}{
		{"colors.basis_x", c.Colors.BasisX, &p.basisX},
		{"colors.basis_y", c.Colors.BasisY, &p.basisY},
		{"colors.vector", c.Colors.Vector, &p.vector},
		{"colors.transformed", c.Colors.Transformed, &p.transformed},
		{"colors.grid", c.Colors.Grid, &p.grid},
		{"colors.axes", c.Colors.Axes, &p.axes},
	} {
		v, err := parseColor(e.src)
		if err != nil {
			return palette{}, fmt.Errorf("%s: %w", e.name, err)
		}
		*e.dst = v
	}
	return p, nil
}
