package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/homepage/pkg/htmx"
)

// Result element ids.
const (
	ShiftResultID        = "shift_result"
	Base64EncodeResultID = "base64_encode_result"
	Base64DecodeResultID = "base64_decode_result"
	CaesarResultID       = "caesar_result"
)

// ShiftForm is the state of the base shifter form.
type ShiftForm struct {
	Numeral string
	From    int
	To      int
	Result  string
}

// Base64Form is the state of one Base64 direction.
type Base64Form struct {
	Text   string
	Result string
}

// Base64Forms holds the encode and decode forms. Each keeps its own input and output.
type Base64Forms struct {
	Encode Base64Form
	Decode Base64Form
}

// CaesarForm is the state of the Caesar cipher form.
type CaesarForm struct {
	Text   string
	Shift  int
	Decode bool
	Result string
}

// Toolbox is the state of every tool on the toolbox page.
type Toolbox struct {
	Shift  ShiftForm
	Base64 Base64Forms
	Caesar CaesarForm
}

// Result renders a tool's output element. htmx swaps it in place.
func Result(id, value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(`<output`)
		w.attr("id", id)
		w.raw(` class="result">`)
		w.text(value)
		w.raw(`</output>`)
		return w.err
	})
}

// ToolboxContent renders the three tools.
func ToolboxContent(t Toolbox) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(`<article class="toolbox"><h1>Toolbox</h1>`)

		w.raw(`<section class="tool" id="shift"><h2>Base shifter</h2>`)
		formOpen(w, "/toolbox/shift", ShiftResultID, `input changed delay:300ms, submit`)
		textInput(w, "Number", "numeral", t.Shift.Numeral)
		numberInput(w, "From base", "from", t.Shift.From, 2, 36)
		numberInput(w, "To base", "to", t.Shift.To, 2, 36)
		w.raw(`<button type="submit">Convert</button></form>`)
		w.component(Result(ShiftResultID, t.Shift.Result))
		w.raw(`</section>`)

		w.raw(`<section class="tool" id="base64"><h2>Base64</h2>`)
		base64Form(w, "/toolbox/base64/encode", Base64EncodeResultID, "Text", "Encode", t.Base64.Encode)
		base64Form(w, "/toolbox/base64/decode", Base64DecodeResultID, "Base64", "Decode", t.Base64.Decode)
		w.raw(`</section>`)

		w.raw(`<section class="tool" id="caesar"><h2>Caesar cipher</h2>`)
		formOpen(w, "/toolbox/caesar", CaesarResultID, `input changed delay:300ms, change, submit`)
		w.raw(`<label>Text <textarea name="text" rows="4">`)
		w.text(t.Caesar.Text)
		w.raw(`</textarea></label>`)
		numberInput(w, "Shift", "shift", t.Caesar.Shift, -25, 25)
		w.raw(`<label><input type="checkbox" name="decode" value="true"`)
		w.flag("checked", t.Caesar.Decode)
		w.raw(`> Decode</label><button type="submit">Apply</button></form>`)
		w.component(Result(CaesarResultID, t.Caesar.Result))
		w.raw(`</section>`)

		w.raw(`</article>`)
		return w.err
	})
}

func formOpen(w *htmlWriter, action, resultID, trigger string) {
	w.raw(`<form method="post"`)
	w.attr("action", action)
	w.attr("hx-post", action)
	w.attr("hx-trigger", trigger)
	w.swap(resultID, htmx.SwapOuterHTML)
	w.raw(`>`)
}

func base64Form(w *htmlWriter, action, resultID, label, button string, f Base64Form) {
	formOpen(w, action, resultID, "submit")
	w.raw(`<label>`)
	w.text(label)
	w.raw(` <textarea name="text" rows="4">`)
	w.text(f.Text)
	w.raw(`</textarea></label><button type="submit">`)
	w.text(button)
	w.raw(`</button></form>`)
	w.component(Result(resultID, f.Result))
}

func textInput(w *htmlWriter, label, name, value string) {
	w.raw(`<label>`)
	w.text(label)
	w.raw(` <input type="text"`)
	w.attr("name", name)
	w.attr("value", value)
	w.raw(`></label>`)
}

func numberInput(w *htmlWriter, label, name string, value, lo, hi int) {
	w.raw(`<label>`)
	w.text(label)
	w.raw(` <input type="number"`)
	w.attr("name", name)
	w.attr("min", strconv.Itoa(lo))
	w.attr("max", strconv.Itoa(hi))
	w.attr("value", strconv.Itoa(value))
	w.raw(`></label>`)
}
