package htmx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Renderable is the interface for OOB components.
// Compatible with templ.Component.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

// Config holds HTMX render configuration.
type Config struct {
	OOBComponents []Renderable
	TriggerDetail map[string]any
	Retarget      string
	Reswap        SwapStrategy
	PushURL       string
	Triggers      []string
	Refresh       bool
}

// RenderOption configures HTMX render behavior.
type RenderOption func(*Config)

// NewConfig creates a Config from options.
func NewConfig(opts ...RenderOption) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ApplyHeaders sets HTMX headers on the response.
// Must be called before WriteHeader.
func (c *Config) ApplyHeaders(w http.ResponseWriter) {
	if c == nil {
		return
	}

	h := w.Header()

	if c.Retarget != "" {
		h.Set(HeaderHXRetarget, c.Retarget)
	}
	if c.Reswap != "" {
		h.Set(HeaderHXReswap, string(c.Reswap))
	}
	if c.PushURL != "" {
		h.Set(HeaderHXPushURL, c.PushURL)
	}
	if trigger := c.trigger(); trigger != "" {
		h.Set(HeaderHXTrigger, trigger)
	}
	if c.Refresh {
		h.Set(HeaderHXRefresh, "true")
	}
}

// trigger renders HX-Trigger. Plain event names are comma-joined; once any
// event carries a detail the whole header switches to the JSON form.
func (c *Config) trigger() string {
	if len(c.TriggerDetail) == 0 {
		return strings.Join(c.Triggers, ", ")
	}
	events := make(map[string]any, len(c.Triggers)+len(c.TriggerDetail))
	for _, name := range c.Triggers {
		events[name] = nil
	}
	for name, detail := range c.TriggerDetail {
		events[name] = detail
	}
	b, err := json.Marshal(events)
	if err != nil {
		return strings.Join(c.Triggers, ", ")
	}
	return string(b)
}

// WithOOB appends out-of-band components to render after the main component.
// Components must include id and hx-swap-oob attributes.
func WithOOB(components ...Renderable) RenderOption {
	return func(c *Config) {
		c.OOBComponents = append(c.OOBComponents, components...)
	}
}

// WithRetarget sets the HX-Retarget header to change the target element.
func WithRetarget(selector string) RenderOption {
	return func(c *Config) {
		c.Retarget = selector
	}
}

// WithReswap sets the HX-Reswap header to change the swap strategy.
// Unknown strategies are ignored.
func WithReswap(strategy SwapStrategy) RenderOption {
	return func(c *Config) {
		if strategy.Valid() {
			c.Reswap = strategy
		}
	}
}

// WithPushURL sets the HX-Push-Url header to update browser history.
// Pass "false" to prevent URL update.
func WithPushURL(url string) RenderOption {
	return func(c *Config) {
		c.PushURL = url
	}
}

// WithTrigger triggers client-side events without details.
func WithTrigger(events ...string) RenderOption {
	return func(c *Config) {
		c.Triggers = append(c.Triggers, events...)
	}
}

// WithTriggerDetail triggers a client-side event carrying detail,
// e.g. {"themeChanged": {"theme": "dark"}}.
func WithTriggerDetail(event string, detail any) RenderOption {
	return func(c *Config) {
		if c.TriggerDetail == nil {
			c.TriggerDetail = make(map[string]any)
		}
		c.TriggerDetail[event] = detail
	}
}

// WithRefresh sets the HX-Refresh header to force a full page refresh.
func WithRefresh() RenderOption {
	return func(c *Config) {
		c.Refresh = true
	}
}
