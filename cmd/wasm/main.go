//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/inamate/easypaint/internal/editor"
	"github.com/inamate/easypaint/internal/geom"
	"github.com/inamate/easypaint/internal/render"
	"github.com/inamate/easypaint/internal/shape"
	"github.com/inamate/easypaint/internal/typeid"
)

var ed *editor.Session

func main() {
	ed = editor.NewSession(typeid.NewSessionID())

	// Create the editor API object
	easypaintEditor := js.Global().Get("Object").New()

	// --- Commands (frontend → editor) ---
	easypaintEditor.Set("createShape", js.FuncOf(createShape))
	easypaintEditor.Set("cancelConstruction", js.FuncOf(cancelConstruction))
	easypaintEditor.Set("handlePointerDown", js.FuncOf(handlePointerDown))
	easypaintEditor.Set("handlePointerMove", js.FuncOf(handlePointerMove))
	easypaintEditor.Set("handlePointerUp", js.FuncOf(handlePointerUp))
	easypaintEditor.Set("handleDoubleClick", js.FuncOf(handleDoubleClick))
	easypaintEditor.Set("deleteSelected", js.FuncOf(deleteSelected))
	easypaintEditor.Set("clear", js.FuncOf(clearScene))
	easypaintEditor.Set("setSelectedFillColor", js.FuncOf(setSelectedFillColor))
	easypaintEditor.Set("setSelectedBorderColor", js.FuncOf(setSelectedBorderColor))
	easypaintEditor.Set("setSelectedBorderStyle", js.FuncOf(setSelectedBorderStyle))
	easypaintEditor.Set("setSelectedBorderWidth", js.FuncOf(setSelectedBorderWidth))
	easypaintEditor.Set("loadSample", js.FuncOf(loadSample))

	// --- Queries (frontend ← editor) ---
	easypaintEditor.Set("render", js.FuncOf(renderScene))
	easypaintEditor.Set("selectedStyle", js.FuncOf(selectedStyle))
	easypaintEditor.Set("phase", js.FuncOf(phase))

	// Register on global scope
	js.Global().Set("easypaintEditor", easypaintEditor)

	// Signal that WASM is ready
	js.Global().Set("easypaintWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func errorResult(err error) interface{} {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

func okResult() interface{} {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func pointArg(args []js.Value) (geom.Point, bool) {
	if len(args) < 2 {
		return geom.Point{}, false
	}
	return geom.Pt(args[0].Float(), args[1].Float()), true
}

// --- Command Handlers ---

func createShape(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing shape kind"})
	}

	kind, err := shape.ParseKind(args[0].String())
	if err != nil {
		return errorResult(err)
	}
	if err := ed.CreateShape(kind); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func cancelConstruction(this js.Value, args []js.Value) interface{} {
	ed.CancelConstruction()
	return nil
}

func handlePointerDown(this js.Value, args []js.Value) interface{} {
	p, ok := pointArg(args)
	if !ok {
		return js.ValueOf(false)
	}
	return js.ValueOf(ed.PointerDown(p))
}

func handlePointerMove(this js.Value, args []js.Value) interface{} {
	p, ok := pointArg(args)
	if !ok {
		return js.ValueOf(false)
	}
	return js.ValueOf(ed.PointerMove(p))
}

func handlePointerUp(this js.Value, args []js.Value) interface{} {
	p, ok := pointArg(args)
	if !ok {
		return nil
	}
	ed.PointerUp(p)
	return nil
}

func handleDoubleClick(this js.Value, args []js.Value) interface{} {
	p, ok := pointArg(args)
	if !ok {
		return js.ValueOf(false)
	}
	return js.ValueOf(ed.DoubleClick(p))
}

func deleteSelected(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.DeleteSelected())
}

func clearScene(this js.Value, args []js.Value) interface{} {
	ed.Clear()
	return nil
}

func setSelectedFillColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(false)
	}
	color := args[0].String()
	if err := shape.ValidateColor(color); err != nil {
		return errorResult(err)
	}
	return js.ValueOf(ed.SetSelectedFillColor(color))
}

func setSelectedBorderColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(false)
	}
	color := args[0].String()
	if err := shape.ValidateColor(color); err != nil {
		return errorResult(err)
	}
	return js.ValueOf(ed.SetSelectedBorderColor(color))
}

func setSelectedBorderStyle(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(false)
	}
	style, err := shape.ParseBorderStyle(args[0].String())
	if err != nil {
		return errorResult(err)
	}
	return js.ValueOf(ed.SetSelectedBorderStyle(style))
}

func setSelectedBorderWidth(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(false)
	}
	width := args[0].Int()
	if err := shape.ValidateBorderWidth(width); err != nil {
		return errorResult(err)
	}
	return js.ValueOf(ed.SetSelectedBorderWidth(width))
}

func loadSample(this js.Value, args []js.Value) interface{} {
	ed.LoadSample()
	return okResult()
}

// --- Query Handlers ---

func renderScene(this js.Value, args []js.Value) interface{} {
	buf := render.NewCommandBuffer()
	ed.Render(buf)

	result, err := buf.JSON()
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(result)
}

// selectedStyle returns the selection's style as JSON, or null.
func selectedStyle(this js.Value, args []js.Value) interface{} {
	style, ok := ed.SelectedStyle()
	if !ok {
		return js.Null()
	}
	data, _ := json.Marshal(style)
	return js.ValueOf(string(data))
}

func phase(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.Phase().String())
}
