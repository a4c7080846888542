package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/dlclark/regexp2"
	"gopkg.in/yaml.v3"

	"github.com/kvannotten/mailstrip/v2"
)

var (
	// ErrUnknownFormat is returned for catalog files and output formats that
	// are not supported.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrEmptyPattern is returned when a reply header entry is blank.
	ErrEmptyPattern = errors.New("empty pattern")
)

// Catalog overrides the patterns a parser uses. Empty fields keep the
// built-in patterns.
type Catalog struct {
	Signature   string `yaml:"signature" toml:"signature"`
	QuoteMarker string `yaml:"quote_marker" toml:"quote_marker"`
	// QuoteHeaders replaces the reply header catalog, unless
	// AppendQuoteHeaders is set.
	QuoteHeaders       []string `yaml:"quote_headers" toml:"quote_headers"`
	AppendQuoteHeaders bool     `yaml:"append_quote_headers" toml:"append_quote_headers"`
	// MatchTimeout is a duration such as "50ms".
	MatchTimeout string `yaml:"match_timeout" toml:"match_timeout"`
}

// LoadCatalog reads a pattern catalog. The format is picked by extension:
// .yaml and .yml for YAML, .toml for TOML.
func LoadCatalog(path string) (*Catalog, error) {
	var catalog Catalog

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &catalog); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("catalog %s: %w %q", path, ErrUnknownFormat, ext)
	}

	return &catalog, nil
}

// Options compiles the catalog into parser options. MatchTimeout applies to
// the catalog's own patterns and to the built-in ones it keeps.
func (c *Catalog) Options() ([]mailstrip.Option, error) {
	if c == nil {
		return nil, nil
	}

	var timeout time.Duration
	if c.MatchTimeout != "" {
		d, err := time.ParseDuration(c.MatchTimeout)
		if err != nil {
			return nil, fmt.Errorf("match_timeout: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("match_timeout must be positive, got %s", d)
		}
		timeout = d
	}

	compile := func(expr string) (*regexp2.Regexp, error) {
		re, err := mailstrip.Compile(expr)
		if err != nil {
			return nil, err
		}
		if timeout > 0 {
			re.MatchTimeout = timeout
		}
		return re, nil
	}

	var opts []mailstrip.Option

	if c.Signature != "" {
		re, err := compile(c.Signature)
		if err != nil {
			return nil, fmt.Errorf("signature: %w", err)
		}
		opts = append(opts, mailstrip.WithSignaturePattern(re))
	}

	if c.QuoteMarker != "" {
		re, err := compile(c.QuoteMarker)
		if err != nil {
			return nil, fmt.Errorf("quote_marker: %w", err)
		}
		opts = append(opts, mailstrip.WithQuoteMarkerPattern(re))
	}

	if len(c.QuoteHeaders) > 0 {
		var headers []*regexp2.Regexp
		if c.AppendQuoteHeaders {
			headers = mailstrip.DefaultQuoteHeaderPatterns()
		}
		for i, expr := range c.QuoteHeaders {
			if strings.TrimSpace(expr) == "" {
				return nil, fmt.Errorf("quote_headers[%d]: %w", i, ErrEmptyPattern)
			}
			re, err := compile(expr)
			if err != nil {
				return nil, fmt.Errorf("quote_headers[%d]: %w", i, err)
			}
			headers = append(headers, re)
		}
		opts = append(opts, mailstrip.WithQuoteHeaderPatterns(headers...))
	}

	if timeout > 0 {
		opts = append(opts, mailstrip.WithMatchTimeout(timeout))
	}

	return opts, nil
}
