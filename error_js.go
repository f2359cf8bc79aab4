package main

import (
	"errors"
	"syscall/js"
)

var (
	errContextLost      = errors.New("WebGL context lost")
	errContextLostEvent = errors.New("received context lost event")
	errElementNotFound  = errors.New("element not found")
)

func errorToJS(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}
