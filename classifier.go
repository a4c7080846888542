package mailstrip

import (
	"github.com/dlclark/regexp2"
	"go.uber.org/zap"
)

// Classifier decides, one line at a time, whether a line is a signature
// delimiter, a quoted line or a reply header. It keeps no state between
// calls and may be shared by concurrent parses. The zero value uses the
// built-in patterns and logs nothing.
type Classifier struct {
	signature    *regexp2.Regexp
	quoteMarker  *regexp2.Regexp
	quoteHeaders []*regexp2.Regexp
	logger       *zap.Logger
}

// IsSignatureLine reports whether line starts a signature block, e.g. "-- ",
// "__", "-Bob", "Sent from my iPhone" or a row of 30 or more '='.
func (c *Classifier) IsSignatureLine(line string) bool {
	re := c.signature
	if re == nil {
		re = signatureRegexp
	}
	return c.match(re, line)
}

// IsQuoteMarkerLine reports whether line is part of a '>' quoted block.
func (c *Classifier) IsQuoteMarkerLine(line string) bool {
	re := c.quoteMarker
	if re == nil {
		re = quoteMarkerRegexp
	}
	return c.match(re, line)
}

// IsQuoteHeaderLine reports whether line matches any reply header pattern,
// such as "On DATE, NAME <EMAIL> wrote:".
func (c *Classifier) IsQuoteHeaderLine(line string) bool {
	for _, re := range c.headers() {
		if c.match(re, line) {
			return true
		}
	}
	return false
}

// headers returns the reply header patterns. A nil catalog means the
// built-in one; an empty one matches nothing.
func (c *Classifier) headers() []*regexp2.Regexp {
	if c.quoteHeaders == nil {
		return quoteHeaderRegexps
	}
	return c.quoteHeaders
}

// match treats evaluation errors, which regexp2 only returns on timeouts, as
// a non-match.
func (c *Classifier) match(re *regexp2.Regexp, line string) bool {
	ok, err := re.MatchString(line)
	if err != nil {
		logger := c.logger
		if logger == nil {
			logger = zap.NewNop()
		}
		logger.Warn("pattern evaluation failed",
			zap.String("pattern", re.String()),
			zap.Int("line_length", len(line)),
			zap.Error(err))
		return false
	}
	return ok
}
