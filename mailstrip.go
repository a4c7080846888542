// mailstrip is a Go library that parses email text and strips it of
// signatures, reply headers and quoted history. It splits a plaintext body
// into fragments, each marked as reply text, quoted text or signature, and
// renders the visible text a reader of the latest message cares about.
//
// The input must already be plain text; MIME decoding and HTML conversion
// are left to the caller.
package mailstrip

import (
	"fmt"
	"io"
	"time"

	"github.com/dlclark/regexp2"
	"go.uber.org/zap"
)

var defaultParser = New()

// Parse parses a plaintext email with the default patterns and returns the
// results.
func Parse(text string) *Email {
	return defaultParser.Parse(text)
}

// VisibleText parses a plaintext email with the default patterns and returns
// only its visible text.
func VisibleText(text string) string {
	return defaultParser.Parse(text).VisibleText(false)
}

// Parser splits emails into fragments using a set of line patterns. A Parser
// is immutable once created and safe for concurrent use.
type Parser struct {
	classifier   *Classifier
	matchTimeout time.Duration
	logger       *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithSignaturePattern replaces the pattern that recognises signature lines.
func WithSignaturePattern(re *regexp2.Regexp) Option {
	return func(p *Parser) {
		if re != nil {
			p.classifier.signature = re
		}
	}
}

// WithQuoteMarkerPattern replaces the pattern that recognises quoted lines.
func WithQuoteMarkerPattern(re *regexp2.Regexp) Option {
	return func(p *Parser) {
		if re != nil {
			p.classifier.quoteMarker = re
		}
	}
}

// WithQuoteHeaderPatterns replaces the reply header catalog. Order matters:
// multi-line headers are joined pattern by pattern, first match only. Each
// pattern must capture the header phrase as its first group.
func WithQuoteHeaderPatterns(res ...*regexp2.Regexp) Option {
	return func(p *Parser) {
		headers := make([]*regexp2.Regexp, 0, len(res))
		for _, re := range res {
			if re != nil {
				headers = append(headers, re)
			}
		}
		p.classifier.quoteHeaders = headers
	}
}

// WithMatchTimeout bounds the time a single pattern evaluation may take.
// Evaluations that time out count as non-matches. The timeout applies to the
// built-in patterns the Parser uses, which are recompiled for it so the
// package-level ones are left untouched. Patterns passed to the other options
// keep their own MatchTimeout; set it on them before passing them in.
func WithMatchTimeout(d time.Duration) Option {
	return func(p *Parser) {
		p.matchTimeout = d
	}
}

// WithLogger sets the logger used for diagnostics. By default nothing is
// logged.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Parser. Patterns not overridden by options fall back to the
// built-in catalog.
func New(opts ...Option) *Parser {
	p := &Parser{
		classifier: &Classifier{
			signature:    signatureRegexp,
			quoteMarker:  quoteMarkerRegexp,
			quoteHeaders: quoteHeaderRegexps,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.classifier.logger = p.logger

	if p.matchTimeout > 0 {
		c := p.classifier
		c.signature = withTimeout(c.signature, p.matchTimeout)
		c.quoteMarker = withTimeout(c.quoteMarker, p.matchTimeout)
		headers := make([]*regexp2.Regexp, len(c.quoteHeaders))
		for i, re := range c.quoteHeaders {
			headers[i] = withTimeout(re, p.matchTimeout)
		}
		c.quoteHeaders = headers
	}
	return p
}

// Classifier returns the line classifier used by the Parser.
func (p *Parser) Classifier() *Classifier {
	return p.classifier
}

// Parse parses a plaintext email and returns the results. The empty string
// yields an Email without fragments.
func (p *Parser) Parse(text string) *Email {
	if text == "" {
		return &Email{fragments: []Fragment{}}
	}

	text = normalizeLineEndings(text)

	// Check for multi-line reply headers. Some clients break up the "On DATE,
	// NAME <EMAIL> wrote:" line (and similar quote headers) into multiple lines.
	text = normalizeHeaders(text, p.classifier.headers(), p.logger)

	a := &assembler{classifier: p.classifier}
	fragments := a.assemble(text)

	p.logger.Debug("parsed email", zap.Int("fragments", len(fragments)))
	return &Email{fragments: fragments}
}

// ParseBytes is like Parse. A nil slice yields an Email without fragments.
func (p *Parser) ParseBytes(b []byte) *Email {
	return p.Parse(string(b))
}

// ParseReader reads the whole email from r and parses it. A nil reader
// yields an Email without fragments.
func (p *Parser) ParseReader(r io.Reader) (*Email, error) {
	if r == nil {
		return p.Parse(""), nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read email: %w", err)
	}
	return p.ParseBytes(b), nil
}

// withTimeout recompiles a built-in pattern so that setting its timeout does
// not affect other users of it. Caller-supplied patterns are returned as is.
func withTimeout(re *regexp2.Regexp, d time.Duration) *regexp2.Regexp {
	if !isBuiltin(re) {
		return re
	}
	clone := MustCompile(re.String())
	clone.MatchTimeout = d
	return clone
}
