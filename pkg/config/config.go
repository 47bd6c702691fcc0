package config

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/dmitrymomot/homepage/pkg/logger"
)

// EnvPrefix prefixes environment overrides. Sections are separated by a
// double underscore: HOMEPAGE_SERVER__ADDR sets server.addr.
const EnvPrefix = "HOMEPAGE_"

// Config is the top-level site configuration, corresponding to homepage.yml.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Cookies CookieConfig  `yaml:"cookies" koanf:"cookies"`
	Toolbox ToolboxConfig `yaml:"toolbox" koanf:"toolbox"`
	Log     logger.Config `yaml:"log" koanf:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr" koanf:"addr"`
	RequestTimeout  time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
	CORSOrigins     []string      `yaml:"cors_origins" koanf:"cors_origins"`
}

// SiteConfig holds content settings.
type SiteConfig struct {
	Title string `yaml:"title" koanf:"title"`
	// StaticBase is the URL prefix of the stylesheets and scripts.
	StaticBase string `yaml:"static_base" koanf:"static_base"`
	// Script overrides the htmx script URL.
	Script string `yaml:"script" koanf:"script"`
	// ContentDir serves pages from disk instead of the embedded content.
	ContentDir    string        `yaml:"content_dir" koanf:"content_dir"`
	PrivacyNotice string        `yaml:"privacy_notice" koanf:"privacy_notice"`
	CacheTTL      time.Duration `yaml:"cache_ttl" koanf:"cache_ttl"`
}

// CookieConfig holds attributes for preference cookies.
type CookieConfig struct {
	Domain   string `yaml:"domain" koanf:"domain"`
	Secure   bool   `yaml:"secure" koanf:"secure"`
	SameSite string `yaml:"same_site" koanf:"same_site"`
}

// ToolboxConfig holds the defaults of the toolbox forms.
type ToolboxConfig struct {
	FromRadix   int `yaml:"from_radix" koanf:"from_radix"`
	ToRadix     int `yaml:"to_radix" koanf:"to_radix"`
	CaesarShift int `yaml:"caesar_shift" koanf:"caesar_shift"`
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (HOMEPAGE_*). A missing file is not an error.
// The result is validated.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(envProvider(), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envProvider() koanf.Provider {
	return env.Provider(EnvPrefix, ".", func(key string) string {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	})
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is required", ErrInvalid)
	}
	if c.Server.RequestTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must be non-negative", ErrInvalid)
	}
	if !strings.HasPrefix(c.Site.StaticBase, "/") {
		return fmt.Errorf("%w: site.static_base %q must start with /", ErrInvalid, c.Site.StaticBase)
	}
	if c.Site.CacheTTL < 0 {
		return fmt.Errorf("%w: site.cache_ttl must be non-negative", ErrInvalid)
	}
	if _, ok := sameSiteModes[strings.ToLower(c.Cookies.SameSite)]; !ok {
		return fmt.Errorf("%w: cookies.same_site %q: must be one of lax, strict, none", ErrInvalid, c.Cookies.SameSite)
	}
	if !validRadix(c.Toolbox.FromRadix) || !validRadix(c.Toolbox.ToRadix) {
		return fmt.Errorf("%w: toolbox radices must be within 2-36", ErrInvalid)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

var sameSiteModes = map[string]http.SameSite{
	"":       http.SameSiteLaxMode,
	"lax":    http.SameSiteLaxMode,
	"strict": http.SameSiteStrictMode,
	"none":   http.SameSiteNoneMode,
}

// SameSiteMode returns the configured SameSite attribute.
func (c CookieConfig) SameSiteMode() http.SameSite {
	if mode, ok := sameSiteModes[strings.ToLower(c.SameSite)]; ok {
		return mode
	}
	return http.SameSiteLaxMode
}

func validRadix(r int) bool { return r >= 2 && r <= 36 }

// Write encodes the configuration as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yamlv3.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	return enc.Close()
}
