package abi

import (
	"math"
	"syscall/js"
)

// Register sets multiply2x2, transformBasis and multiply3x3 on obj.
// Each takes the scalars followed by a Float64Array (or any indexable
// object) receiving the result, and returns undefined.
//
// The returned functions must stay alive as long as obj is reachable
// from JavaScript; call Release on them to free the callbacks.
func Register(obj js.Value) []js.Func {
	funcs := []js.Func{
		js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
			var buf [Multiply2x2Slots]float64
			Multiply2x2(buf[:],
				arg(args, 0), arg(args, 1), arg(args, 2), arg(args, 3),
				arg(args, 4), arg(args, 5),
			)
			store(args, 6, buf[:])
			return nil
		}),
		js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
			var buf [TransformBasisSlots]float64
			TransformBasis(buf[:], arg(args, 0), arg(args, 1), arg(args, 2), arg(args, 3))
			store(args, 4, buf[:])
			return nil
		}),
		js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
			var buf [Multiply3x3Slots]float64
			Multiply3x3(buf[:],
				arg(args, 0), arg(args, 1), arg(args, 2),
				arg(args, 3), arg(args, 4), arg(args, 5),
				arg(args, 6), arg(args, 7), arg(args, 8),
				arg(args, 9), arg(args, 10), arg(args, 11),
			)
			store(args, 12, buf[:])
			return nil
		}),
	}
	obj.Set("multiply2x2", funcs[0])
	obj.Set("transformBasis", funcs[1])
	obj.Set("multiply3x3", funcs[2])
	return funcs
}

// arg follows JavaScript number coercion: missing arguments are
// undefined, which converts to NaN.
func arg(args []js.Value, i int) float64 {
	if i >= len(args) {
		return math.NaN()
	}
	if args[i].Type() == js.TypeNumber {
		return args[i].Float()
	}
	return js.Global().Call("Number", args[i]).Float()
}

func store(args []js.Value, i int, v []float64) {
	if i >= len(args) {
		return
	}
	out := args[i]
	for k := range v {
		out.SetIndex(k, v[k])
	}
}
