package mailstrip

import (
	"strings"

	"github.com/dlclark/regexp2"
	"go.uber.org/zap"
)

// normalizeLineEndings converts every "\r\n" to "\n".
func normalizeLineEndings(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// normalizeHeaders joins reply headers that were broken into multiple lines
// by the e-mail client, e.g. gmail does that for lines exceeding 80 chars.
// Only the first match of each pattern is joined, and only the newlines
// inside its first capture group are replaced.
func normalizeHeaders(text string, patterns []*regexp2.Regexp, logger *zap.Logger) string {
	runes := []rune(text)
	for _, re := range patterns {
		m, err := re.FindRunesMatch(runes)
		if err != nil {
			logger.Warn("reply header pattern failed",
				zap.String("pattern", re.String()),
				zap.Error(err))
			continue
		}
		if m == nil {
			continue
		}
		header := m.GroupByNumber(1)
		if header == nil || header.Length == 0 {
			continue
		}
		joined := false
		for i := header.Index; i < header.Index+header.Length; i++ {
			if runes[i] == '\n' {
				runes[i] = ' '
				joined = true
			}
		}
		if joined {
			logger.Debug("joined multi-line reply header",
				zap.String("pattern", re.String()),
				zap.Int("offset", header.Index))
		}
	}
	return string(runes)
}
