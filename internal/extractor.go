package internal

import (
	"fmt"
	"strconv"
)

// ExtractorSource reads one candidate value for a request input.
// It reports false when the source does not carry the value.
type ExtractorSource = func(Context) (string, bool)

// Extractor reads a request input from the first source that carries it.
type Extractor struct {
	name    string
	sources []ExtractorSource
}

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Field returns an extractor for the input called name, read from the URL
// parameter first and then from the form body or query string.
//
//	numeral := homepage.Field("numeral")
//	r.GET("/shift/{numeral}", h.shift)
//	r.GET("/shift", h.shift)
func Field(name string) Extractor {
	return Extractor{name: name, sources: []ExtractorSource{FromParam(name), FromForm(name)}}
}

// Extract returns the first non-empty value.
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(c); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// ExtractDefault returns the first match or fallback.
func (e Extractor) ExtractDefault(c Context, fallback string) string {
	if v, ok := e.Extract(c); ok {
		return v
	}
	return fallback
}

// Int parses the value as a base 10 integer, returning def when it is absent.
// Unparsable input is a 400 HTTPError.
func (e Extractor) Int(c Context, def int) (int, error) {
	raw, ok := e.Extract(c)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrBadRequest(fmt.Sprintf("%s must be an integer", e.label()), WithError(err))
	}
	return n, nil
}

// Bool parses the value with strconv.ParseBool, returning def when it is absent.
// Unparsable input is a 400 HTTPError.
func (e Extractor) Bool(c Context, def bool) (bool, error) {
	raw, ok := e.Extract(c)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, ErrBadRequest(fmt.Sprintf("%s must be a boolean", e.label()), WithError(err))
	}
	return b, nil
}

func (e Extractor) label() string {
	if e.name == "" {
		return "value"
	}
	return e.name
}

func nonEmpty(v string) (string, bool) {
	return v, v != ""
}

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		return nonEmpty(c.Header(name))
	}
}

// FromQuery reads a query parameter.
func FromQuery(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		return nonEmpty(c.Query(name))
	}
}

// FromCookie reads the request cookie jar, including cookies written
// earlier in the same request.
func FromCookie(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v, ok := c.Cookies().Get(name)
		if !ok {
			return "", false
		}
		return nonEmpty(v)
	}
}

// FromParam reads a URL parameter.
func FromParam(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		return nonEmpty(c.Param(name))
	}
}

// FromForm reads a form field. Query parameters count as form fields.
func FromForm(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		return nonEmpty(c.Form(name))
	}
}
