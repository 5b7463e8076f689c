//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/voxelsplace/islands/api"
)

// rle2glb(width, height, depth, rle) returns a Uint8Array or an error string.
func rle2glb(this js.Value, args []js.Value) any {
	if len(args) < 4 {
		return js.ValueOf("usage: rle2glb(width, height, depth, rle)")
	}
	out, err := api.RLEToGLB(args[0].Int(), args[1].Int(), args[2].Int(), args[3].String(), api.DefaultExport())
	if err != nil {
		return js.ValueOf(err.Error())
	}
	uint8arr := js.Global().Get("Uint8Array").New(len(out))
	js.CopyBytesToJS(uint8arr, out)
	return uint8arr
}

func main() {
	js.Global().Set("rle2glb", js.FuncOf(rle2glb))
	select {}
}
