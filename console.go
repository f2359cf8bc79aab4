package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seqsense/lintransform/mat"
)

type console struct {
	state     *transformState
	precision int
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")

func vec2Rows(vv ...mat.Vec2) [][]float64 {
	var res [][]float64
	for _, v := range vv {
		res = append(res, []float64{v[0], v[1]})
	}
	return res
}

func vec3Rows(vv ...mat.Vec3) [][]float64 {
	var res [][]float64
	for _, v := range vv {
		res = append(res, []float64{v[0], v[1], v[2]})
	}
	return res
}

func mat2Rows(m mat.Mat2) [][]float64 {
	return [][]float64{{m[0], m[1]}, {m[2], m[3]}}
}

func mat3Rows(m mat.Mat3) [][]float64 {
	return [][]float64{{m[0], m[1], m[2]}, {m[3], m[4], m[5]}, {m[6], m[7], m[8]}}
}

var consoleCommands = map[string]func(s *transformState, args []float64) ([][]float64, error){
	"multiply2x2": func(_ *transformState, args []float64) ([][]float64, error) {
		if len(args) != 6 {
			return nil, errArgumentNumber
		}
		return vec2Rows(mat.Multiply2x2(args[0], args[1], args[2], args[3], args[4], args[5])), nil
	},
	"transform_basis": func(_ *transformState, args []float64) ([][]float64, error) {
		if len(args) != 4 {
			return nil, errArgumentNumber
		}
		b := mat.TransformBasis(args[0], args[1], args[2], args[3])
		return [][]float64{{b[0], b[1]}, {b[2], b[3]}}, nil
	},
	"multiply3x3": func(_ *transformState, args []float64) ([][]float64, error) {
		if len(args) != 12 {
			return nil, errArgumentNumber
		}
		return vec3Rows(mat.Multiply3x3(
			args[0], args[1], args[2],
			args[3], args[4], args[5],
			args[6], args[7], args[8],
			args[9], args[10], args[11],
		)), nil
	},
	"identity2": func(_ *transformState, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return mat2Rows(mat.Identity2()), nil
	},
	"identity3": func(_ *transformState, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return mat3Rows(mat.Identity3()), nil
	},
	"mode": func(s *transformState, args []float64) ([][]float64, error) {
		switch len(args) {
		case 0:
		case 1:
			md, err := parseMode(args[0])
			if err != nil {
				return nil, err
			}
			s.SetMode(md)
		default:
			return nil, errArgumentNumber
		}
		return [][]float64{{float64(s.Mode().dim())}}, nil
	},
	"matrix": func(s *transformState, args []float64) ([][]float64, error) {
		switch {
		case len(args) == 0:
		case len(args) == 4 && s.Mode() == mode2D:
			s.SetMat2(mat.NewMat2(args[0], args[1], args[2], args[3]))
		case len(args) == 9 && s.Mode() == mode3D:
			var m mat.Mat3
			copy(m[:], args)
			s.SetMat3(m)
		default:
			return nil, errArgumentNumber
		}
		if s.Mode() == mode2D {
			return mat2Rows(s.Mat2()), nil
		}
		return mat3Rows(s.Mat3()), nil
	},
	"vector": func(s *transformState, args []float64) ([][]float64, error) {
		switch {
		case len(args) == 0:
		case len(args) == 2 && s.Mode() == mode2D:
			s.SetVector(mat.Vec3{args[0], args[1], 0})
		case len(args) == 3 && s.Mode() == mode3D:
			s.SetVector(mat.Vec3{args[0], args[1], args[2]})
		default:
			return nil, errArgumentNumber
		}
		if s.Mode() == mode2D {
			return vec2Rows(s.Vector().XY()), nil
		}
		return vec3Rows(s.Vector()), nil
	},
	"basis": func(s *transformState, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		if s.Mode() != mode2D {
			return nil, errInvalidMode
		}
		return vec2Rows(s.Basis()), nil
	},
	"apply": func(s *transformState, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		tv := s.Apply()
		if s.Mode() == mode2D {
			return vec2Rows(tv.XY()), nil
		}
		return vec3Rows(tv), nil
	},
	"reset": func(s *transformState, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		s.Reset()
		return nil, nil
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	var argsFloat []float64
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return "", fmt.Errorf("argument %d: %w", i, err)
		}
		argsFloat = append(argsFloat, f)
	}
	res, err := fn(c.state, argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			resLine = append(resLine, strconv.FormatFloat(v, 'f', c.precision, 64))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}

// runConsole executes one command per line from r.
// Command errors are reported to werr and do not stop the loop.
func runConsole(c *console, r io.Reader, w, werr io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		res, err := c.Run(scanner.Text())
		if err != nil {
			fmt.Fprintf(werr, "error: %v\n", err)
			continue
		}
		if res != "" {
			fmt.Fprintln(w, res)
		}
	}
	return scanner.Err()
}
