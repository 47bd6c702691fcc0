package handlers

import (
	"net/http"

	"github.com/dmitrymomot/homepage"
	"github.com/dmitrymomot/homepage/middlewares"
	"github.com/dmitrymomot/homepage/pkg/toolbox"
)

// resultBody is the JSON envelope of a toolbox result.
type resultBody struct {
	Result string `json:"result"`
}

// API inputs. Each is read from the URL, the query string or a form body.
var (
	numeralField = homepage.Field("numeral")
	fromField    = homepage.Field("from")
	toField      = homepage.Field("to")
	textField    = homepage.Field("text")
	shiftField   = homepage.Field("shift")
	decodeField  = homepage.Field("decode")
)

// ToolboxAPI exposes the toolbox as a JSON API under /api/toolbox.
// Unlike the forms it reports invalid input as 400 instead of NaN.
type ToolboxAPI struct {
	defaults ToolboxDefaults
	cors     []middlewares.CORSOption
}

// NewToolboxAPI creates the API handler. corsOpts configure the CORS middleware guarding it.
func NewToolboxAPI(defaults ToolboxDefaults, corsOpts ...middlewares.CORSOption) *ToolboxAPI {
	return &ToolboxAPI{defaults: defaults, cors: corsOpts}
}

// Routes declares the API routes. Every endpoint answers GET with query
// parameters and POST with a form body, for inputs too long for a URL.
func (h *ToolboxAPI) Routes(r homepage.Router) {
	r.Route("/api/toolbox", func(r homepage.Router) {
		r.UseHTTP(middlewares.CORS(h.cors...))
		methods := []string{http.MethodGet, http.MethodPost}
		r.GET("/shift/{numeral}", h.shift)
		r.Match(methods, "/shift", h.shift)
		r.Match(methods, "/base64/encode", h.base64Encode)
		r.Match(methods, "/base64/decode", h.base64Decode)
		r.Match(methods, "/caesar", h.caesar)
	})
}

func (h *ToolboxAPI) shift(c homepage.Context) error {
	from, err := fromField.Int(c, h.defaults.FromRadix)
	if err != nil {
		return err
	}
	to, err := toField.Int(c, h.defaults.ToRadix)
	if err != nil {
		return err
	}

	result, err := toolbox.Shift(numeralField.ExtractDefault(c, ""), from, to)
	if err != nil {
		return c.Error(http.StatusBadRequest, err.Error(), homepage.WithError(err))
	}
	return c.JSON(http.StatusOK, resultBody{Result: result})
}

func (h *ToolboxAPI) base64Encode(c homepage.Context) error {
	return c.JSON(http.StatusOK, resultBody{Result: toolbox.EncodeBase64(textField.ExtractDefault(c, ""))})
}

func (h *ToolboxAPI) base64Decode(c homepage.Context) error {
	result, err := toolbox.DecodeBase64Strict(textField.ExtractDefault(c, ""))
	if err != nil {
		return c.Error(http.StatusBadRequest, err.Error(), homepage.WithError(err))
	}
	return c.JSON(http.StatusOK, resultBody{Result: result})
}

func (h *ToolboxAPI) caesar(c homepage.Context) error {
	shift, err := shiftField.Int(c, h.defaults.CaesarShift)
	if err != nil {
		return err
	}
	decode, err := decodeField.Bool(c, false)
	if err != nil {
		return err
	}

	cipher := toolbox.Caesar{Shift: shift}
	text := textField.ExtractDefault(c, "")
	if decode {
		return c.JSON(http.StatusOK, resultBody{Result: cipher.Decode(text)})
	}
	return c.JSON(http.StatusOK, resultBody{Result: cipher.Encode(text)})
}
