package main

import (
	"errors"
	"fmt"
	"syscall/js"
)

var errNotFound = errors.New("not found")

func fetchGet(path string) ([]byte, error) {
	var b []byte
	var errFetch error
	chErr := make(chan error, 1)

	// Every path of the promise chain ends in onData or onDataError,
	// so the callbacks can be released once chErr is received.
	onResponse := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		res := args[0]
		if !res.Get("ok").Bool() {
			if res.Get("status").Int() == 404 {
				errFetch = fmt.Errorf("%s: %w", path, errNotFound)
				return nil
			}
			errFetch = fmt.Errorf("failed to fetch %s: %s", path, res.Get("statusText").String())
			return nil
		}
		return res.Call("arrayBuffer")
	})
	onFetchError := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		errFetch = fmt.Errorf("failed to fetch %s", path)
		return nil
	})
	onData := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if errFetch != nil {
			chErr <- errFetch
			return nil
		}
		array := js.Global().Get("Uint8Array").New(args[0])
		b = make([]byte, array.Get("byteLength").Int())
		js.CopyBytesToGo(b, array)
		chErr <- nil
		return nil
	})
	onDataError := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chErr <- errors.New("failed to handle received data")
		return nil
	})
	defer func() {
		onResponse.Release()
		onFetchError.Release()
		onData.Release()
		onDataError.Release()
	}()

	js.Global().Call("fetch", path, map[string]interface{}{
		"credentials": "include",
	}).Call("then", onResponse, onFetchError).Call("then", onData, onDataError)

	if err := <-chErr; err != nil {
		return nil, err
	}
	return b, nil
}

// loadConfig fetches the yaml configuration.
// A missing file is not an error; the defaults are used.
func loadConfig(path string) (*config, error) {
	b, err := fetchGet(path)
	switch {
	case errors.Is(err, errNotFound):
		return defaultConfig(), nil
	case err != nil:
		return nil, err
	}
	return parseConfig(b)
}
