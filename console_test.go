package main

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"
)

func newTestConsole(md mode) *console {
	return &console{
		state:     newTransformState(md),
		precision: 3,
	}
}

func TestConsole_Arithmetic(t *testing.T) {
	testCases := map[string]struct {
		line     string
		expected string
	}{
		"Empty": {
			line:     "  ",
			expected: "",
		},
		"Multiply2x2": {
			line:     "multiply2x2 2 0 0 3 5 4",
			expected: "10.000 12.000",
		},
		"TransformBasis": {
			line:     "transform_basis 1 2 3 4",
			expected: "1.000 3.000\n2.000 4.000",
		},
		"Multiply3x3": {
			line:     "multiply3x3 1 0 0 0 2 0 0 0 3 1 1 1",
			expected: "1.000 2.000 3.000",
		},
		"Identity2": {
			line:     "identity2",
			expected: "1.000 0.000\n0.000 1.000",
		},
		"Identity3": {
			line:     "identity3",
			expected: "1.000 0.000 0.000\n0.000 1.000 0.000\n0.000 0.000 1.000",
		},
		"NaN": {
			line:     "multiply2x2 NaN 0 0 1 1 1",
			expected: "NaN 1.000",
		},
		"Inf": {
			line:     "multiply2x2 2 0 0 1 Inf 1",
			expected: "+Inf NaN",
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := newTestConsole(mode2D)
			res, err := c.Run(tt.line)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if res != tt.expected {
				t.Errorf("Expected:\n%s\ngot:\n%s", tt.expected, res)
			}
		})
	}
}

func TestConsole_Errors(t *testing.T) {
	testCases := map[string]struct {
		md   mode
		line string
		err  error
	}{
		"UnknownCommand": {
			line: "invert 1 2 3 4",
			err:  errInvalidCommand,
		},
		"Multiply2x2ShortArgs": {
			line: "multiply2x2 1 2 3 4 5",
			err:  errArgumentNumber,
		},
		"Multiply3x3ShortArgs": {
			line: "multiply3x3 1 2 3",
			err:  errArgumentNumber,
		},
		"TransformBasisLongArgs": {
			line: "transform_basis 1 2 3 4 5",
			err:  errArgumentNumber,
		},
		"Matrix3In2D": {
			md:   mode2D,
			line: "matrix 1 2 3 4 5 6 7 8 9",
			err:  errArgumentNumber,
		},
		"Vector2In3D": {
			md:   mode3D,
			line: "vector 1 2",
			err:  errArgumentNumber,
		},
		"BasisIn3D": {
			md:   mode3D,
			line: "basis",
			err:  errInvalidMode,
		},
		"InvalidMode": {
			line: "mode 4",
			err:  errInvalidMode,
		},
		"ParseError": {
			line: "multiply2x2 1 2 3 4 5 x",
			err:  strconv.ErrSyntax,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := newTestConsole(tt.md)
			_, err := c.Run(tt.line)
			if !errors.Is(err, tt.err) {
				t.Errorf("Expected error: %v, got: %v", tt.err, err)
			}
		})
	}
}

func TestConsole_State2D(t *testing.T) {
	c := newTestConsole(mode2D)

	steps := []struct {
		line     string
		expected string
	}{
		{"mode", "2.000"},
		{"vector", "1.000 1.000"},
		{"matrix", "1.000 0.000\n0.000 1.000"},
		{"matrix 2 1 0 3", "2.000 1.000\n0.000 3.000"},
		{"basis", "2.000 0.000\n1.000 3.000"},
		{"vector 5 4", "5.000 4.000"},
		{"apply", "14.000 12.000"},
		{"reset", ""},
		{"matrix", "1.000 0.000\n0.000 1.000"},
		{"vector", "1.000 1.000"},
	}
	for _, s := range steps {
		res, err := c.Run(s.line)
		if err != nil {
			t.Fatalf("'%s': unexpected error: %v", s.line, err)
		}
		if res != s.expected {
			t.Errorf("'%s': expected:\n%s\ngot:\n%s", s.line, s.expected, res)
		}
	}
}

func TestConsole_State3D(t *testing.T) {
	c := newTestConsole(mode2D)

	steps := []struct {
		line     string
		expected string
	}{
		{"mode 3", "3.000"},
		{"vector", "1.000 1.000 1.000"},
		{"matrix 1 0 0 0 2 0 0 0 3", "1.000 0.000 0.000\n0.000 2.000 0.000\n0.000 0.000 3.000"},
		{"apply", "1.000 2.000 3.000"},
		{"vector 1 2 3", "1.000 2.000 3.000"},
		{"apply", "1.000 4.000 9.000"},
	}
	for _, s := range steps {
		res, err := c.Run(s.line)
		if err != nil {
			t.Fatalf("'%s': unexpected error: %v", s.line, err)
		}
		if res != s.expected {
			t.Errorf("'%s': expected:\n%s\ngot:\n%s", s.line, s.expected, res)
		}
	}
}

func TestConsole_Precision(t *testing.T) {
	c := newTestConsole(mode2D)
	c.precision = 1

	res, err := c.Run("multiply2x2 0.25 0 0 1 1 0.5")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res != "0.2 0.5" {
		t.Errorf("Expected '0.2 0.5', got '%s'", res)
	}
}

func TestRunConsole(t *testing.T) {
	c := newTestConsole(mode2D)
	in := strings.NewReader(`multiply2x2 2 0 0 3 5 4

foo
mode 3
multiply3x3 1 0 0 0 2 0 0 0 3 1 1 1
`)
	var out, errOut bytes.Buffer
	if err := runConsole(c, in, &out, &errOut); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "10.000 12.000\n3.000\n1.000 2.000 3.000\n"
	if out.String() != expected {
		t.Errorf("Expected output:\n%s\ngot:\n%s", expected, out.String())
	}
	if errOut.String() != "error: invalid command\n" {
		t.Errorf("Unexpected error output: %q", errOut.String())
	}
}
