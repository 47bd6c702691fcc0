package handlers

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/homepage"
	"github.com/dmitrymomot/homepage/pkg/toolbox"
	"github.com/dmitrymomot/homepage/site/views"
)

// ToolboxDefaults are the values the toolbox forms start with.
type ToolboxDefaults struct {
	FromRadix   int
	ToRadix     int
	CaesarShift int
}

// DefaultToolbox returns base 10 to base 16 and a shift of 3.
func DefaultToolbox() ToolboxDefaults {
	shifter := toolbox.NewBaseShifter()
	return ToolboxDefaults{
		FromRadix:   shifter.From,
		ToRadix:     shifter.To,
		CaesarShift: toolbox.DefaultCaesarShift,
	}
}

// ToolboxHandler serves the text toolbox forms.
// htmx requests get the result element, plain form posts the whole page.
type ToolboxHandler struct {
	layout   *views.Layout
	defaults ToolboxDefaults
}

// NewToolbox creates the toolbox handler.
func NewToolbox(layout *views.Layout, defaults ToolboxDefaults) *ToolboxHandler {
	return &ToolboxHandler{layout: layout, defaults: defaults}
}

// Routes declares the toolbox routes.
func (h *ToolboxHandler) Routes(r homepage.Router) {
	r.Route("/toolbox", func(r homepage.Router) {
		r.GET("/", h.index)
		r.POST("/shift", h.shift)
		r.POST("/base64/encode", h.base64Encode)
		r.POST("/base64/decode", h.base64Decode)
		r.POST("/caesar", h.caesar)
	})
}

func (h *ToolboxHandler) blank() views.Toolbox {
	return views.Toolbox{
		Shift:  views.ShiftForm{From: h.defaults.FromRadix, To: h.defaults.ToRadix},
		Caesar: views.CaesarForm{Shift: h.defaults.CaesarShift},
	}
}

func (h *ToolboxHandler) index(c homepage.Context) error {
	content := views.ToolboxContent(h.blank())
	return c.RenderPartial(http.StatusOK, h.layout.Page("Toolbox", content), content)
}

func (h *ToolboxHandler) respond(c homepage.Context, state views.Toolbox, result homepage.Component) error {
	content := views.ToolboxContent(state)
	return c.RenderPartial(http.StatusOK, h.layout.Page("Toolbox", content), result)
}

func (h *ToolboxHandler) shift(c homepage.Context) error {
	state := h.blank()
	form := &state.Shift
	form.Numeral = c.Form("numeral")
	form.From = radix(c, fromField, h.defaults.FromRadix)
	form.To = radix(c, toField, h.defaults.ToRadix)

	if strings.TrimSpace(form.Numeral) != "" {
		form.Result = toolbox.BaseShifter{From: form.From, To: form.To}.Shift(form.Numeral)
	}
	return h.respond(c, state, views.Result(views.ShiftResultID, form.Result))
}

// radix reads a form radix. Unparsable input yields 0, which the shifter rejects with NaN.
func radix(c homepage.Context, field homepage.Extractor, def int) int {
	n, err := field.Int(c, def)
	if err != nil {
		return 0
	}
	return n
}

func (h *ToolboxHandler) base64Encode(c homepage.Context) error {
	state := h.blank()
	form := &state.Base64.Encode
	form.Text = c.Form("text")
	form.Result = toolbox.EncodeBase64(form.Text)
	return h.respond(c, state, views.Result(views.Base64EncodeResultID, form.Result))
}

func (h *ToolboxHandler) base64Decode(c homepage.Context) error {
	state := h.blank()
	form := &state.Base64.Decode
	form.Text = c.Form("text")
	form.Result = toolbox.DecodeBase64(form.Text)
	return h.respond(c, state, views.Result(views.Base64DecodeResultID, form.Result))
}

func (h *ToolboxHandler) caesar(c homepage.Context) error {
	state := h.blank()
	form := &state.Caesar
	form.Text = c.Form("text")
	form.Shift = homepage.FormDefault(c, "shift", h.defaults.CaesarShift)
	form.Decode = c.Form("decode") == "true"

	cipher := toolbox.Caesar{Shift: form.Shift}
	if form.Decode {
		form.Result = cipher.Decode(form.Text)
	} else {
		form.Result = cipher.Encode(form.Text)
	}
	return h.respond(c, state, views.Result(views.CaesarResultID, form.Result))
}
