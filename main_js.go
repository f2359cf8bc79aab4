package main

import (
	"fmt"
	"math"
	"strconv"
	"syscall/js"
	"time"

	glmat "github.com/seqsense/pcgol/mat"
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/lintransform/abi"
)

const (
	configPath = "lintransform.yaml"
	canvasID   = "scene"
	logID      = "log"
	exportName = "lintransform"
)

type consoleRequest struct {
	line string
	res  chan consoleResult
}

type consoleResult struct {
	out string
	err error
}

func main() {
	doc := js.Global().Get("document")

	logDiv := doc.Call("getElementById", logID)
	logPrint := func(msg interface{}) {
		println(fmt.Sprint(msg))
		if logDiv.IsNull() {
			return
		}
		html := logDiv.Get("innerHTML").String()
		logDiv.Set("innerHTML", fmt.Sprintf("%s%v<br/>", html, msg))
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		logPrint(err)
		cfg = defaultConfig()
	}
	pal, err := cfg.palette()
	if err != nil {
		logPrint(err)
		return
	}

	md := mode2D
	if !doc.Call("getElementById", "e").IsNull() {
		md = mode3D
	}
	state := newTransformState(md)
	con := &console{state: state, precision: cfg.Precision}
	vi := newView(cfg.Camera, md)

	api := js.Global().Get("Object").New()
	funcs := abi.Register(api)

	chConsole := make(chan consoleRequest)
	funcs = append(funcs, js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return errorToJS(errArgumentNumber)
		}
		req := consoleRequest{line: args[0].String(), res: make(chan consoleResult)}
		chConsole <- req
		res := <-req.res
		if res.err != nil {
			return errorToJS(res.err)
		}
		return res.out
	}))
	api.Set("console", funcs[len(funcs)-1])
	js.Global().Set(exportName, api)

	chApply := make(chan struct{})
	chReset := make(chan struct{})
	onButton := func(id string, ch chan struct{}) {
		btn := doc.Call("getElementById", id)
		if btn.IsNull() {
			return
		}
		fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			ch <- struct{}{}
			return nil
		})
		funcs = append(funcs, fn)
		btn.Call("addEventListener", "click", fn)
	}
	onButton("applyBtn", chApply)
	onButton("resetBtn", chReset)

	var gl *webgl.WebGL
	chWheel := make(chan webgl.WheelEvent)
	chMouseDown := make(chan webgl.MouseEvent)
	chMouseMove := make(chan webgl.MouseEvent)
	chMouseUp := make(chan webgl.MouseEvent)
	chContextLost := make(chan webgl.WebGLContextEvent)
	chContextRestored := make(chan webgl.WebGLContextEvent)

	if canvas := doc.Call("getElementById", canvasID); canvas.IsNull() {
		logPrint(fmt.Errorf("%s: %w", canvasID, errElementNotFound))
	} else if gl, err = webgl.New(canvas); err != nil {
		logPrint(err)
		gl = nil
	} else {
		showDebugInfo(gl)
		gl.Canvas.OnWheel(func(e webgl.WheelEvent) {
			e.PreventDefault()
			e.StopPropagation()
			chWheel <- e
		})
		gl.Canvas.OnMouseDown(func(e webgl.MouseEvent) {
			e.PreventDefault()
			e.StopPropagation()
			chMouseDown <- e
		})
		gl.Canvas.OnMouseMove(func(e webgl.MouseEvent) {
			e.PreventDefault()
			e.StopPropagation()
			chMouseMove <- e
		})
		gl.Canvas.OnMouseUp(func(e webgl.MouseEvent) {
			e.PreventDefault()
			e.StopPropagation()
			chMouseUp <- e
		})
		gl.Canvas.OnContextMenu(func(e webgl.MouseEvent) {
			e.PreventDefault()
			e.StopPropagation()
		})
		gl.Canvas.OnWebGLContextLost(func(e webgl.WebGLContextEvent) {
			e.PreventDefault()
			chContextLost <- e
		})
		gl.Canvas.OnWebGLContextRestored(func(e webgl.WebGLContextEvent) {
			chContextRestored <- e
		})
	}

	var r *renderer
	if gl != nil {
		if r, err = newRenderer(gl, cfg, pal); err != nil {
			logPrint(err)
			r = nil
		}
	}

	readInputs(doc, state)
	logPrint("lintransform ready")

	curMode := state.Mode()
	sceneDirty := true

	tick := time.NewTicker(time.Second / 30)
	defer tick.Stop()

	for {
		if state.Mode() != curMode {
			curMode = state.Mode()
			vi.reset(curMode)
		}
		if state.Updated() {
			sceneDirty = true
		}
		if r != nil {
			if sceneDirty {
				r.setScene(buildScene(cfg, pal, state))
				sceneDirty = false
			}
			var model *glmat.Mat4
			if _, ok := state.Transformed(); ok {
				m := state.Mat3().Mat4()
				model = &m
			}
			r.resize(vi)
			r.draw(vi.modelView(), model)
		}

		select {
		case <-chApply:
			readInputs(doc, state)
			tv := state.Apply()
			if state.Mode() == mode2D {
				logPrint(fmt.Sprintf("A·v = %v", tv.XY()))
			} else {
				logPrint(fmt.Sprintf("A·v = %v", tv))
			}
		case <-chReset:
			state.Reset()
			vi.reset(state.Mode())
			writeInputs(doc, state)
		case req := <-chConsole:
			out, err := con.Run(req.line)
			req.res <- consoleResult{out: out, err: err}
			writeInputs(doc, state)
		case e := <-chWheel:
			vi.wheel(e.DeltaY)
		case e := <-chMouseDown:
			vi.mouseDragStart(e.OffsetX, e.OffsetY, int(e.Button))
		case e := <-chMouseMove:
			vi.mouseDrag(e.OffsetX, e.OffsetY)
		case e := <-chMouseUp:
			vi.mouseDragEnd(e.OffsetX, e.OffsetY)
		case <-chContextLost:
			logPrint(errContextLostEvent)
			r = nil
		case <-chContextRestored:
			if r, err = newRenderer(gl, cfg, pal); err != nil {
				logPrint(err)
				r = nil
			}
			sceneDirty = true
		case <-tick.C:
		}
	}
}

// inputValue follows the parseFloat semantics of the page;
// an empty or malformed field is NaN.
func inputValue(doc js.Value, id string) float64 {
	el := doc.Call("getElementById", id)
	if el.IsNull() {
		return math.NaN()
	}
	return js.Global().Call("parseFloat", el.Get("value")).Float()
}

func setInputValue(doc js.Value, id string, v float64) {
	el := doc.Call("getElementById", id)
	if el.IsNull() {
		return
	}
	el.Set("value", strconv.FormatFloat(v, 'g', -1, 64))
}

func readInputs(doc js.Value, s *transformState) {
	readFields(s, func(id string) float64 {
		return inputValue(doc, id)
	})
}

func writeInputs(doc js.Value, s *transformState) {
	writeFields(s, func(id string, v float64) {
		setInputValue(doc, id, v)
	})
}
