package mailstrip

import (
	"strings"
	"unicode"
)

// assembler groups the lines of one email into fragments. A new assembler is
// used for every parse.
type assembler struct {
	classifier *Classifier
	// This points to the current open fragment. If the scanned line fits, it
	// is added to this fragment. Otherwise, the fragment is sealed and a new
	// one is started.
	fragment *fragmentBuilder
	// The fragments sealed so far, bottom-up.
	fragments []Fragment
}

// assemble scans text from the last line to the first. Signatures and reply
// headers are recognised by the line that follows them in reading order,
// which is the line scanned just before them here.
func (a *assembler) assemble(text string) []Fragment {
	lines := strings.Split(text, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		a.scanLine(lines[i])
	}

	// Seal the final (top-most) fragment.
	a.finishFragment()

	// Now that parsing is done, reverse the order.
	reverseFragments(a.fragments)
	return a.fragments
}

// scanLine scans the given line of text and figures out which fragment it
// belongs to.
func (a *assembler) scanLine(line string) {
	// Signature delimiters such as "-- " keep their trailing whitespace.
	if !a.classifier.IsSignatureLine(line) {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
	}

	if a.fragment != nil {
		last := a.fragment.lastLine()
		if a.classifier.IsSignatureLine(last) {
			a.fragment.signature = true
			a.finishFragment()
		} else if line == "" && a.classifier.IsQuoteHeaderLine(last) {
			// A blank line above a reply header closes the quoted block the
			// header introduces. Yahoo! does not use '>' markers, so the
			// block may not have been quoted until now.
			a.fragment.quoted = true
			a.finishFragment()
		}
	}

	isQuoted := a.classifier.IsQuoteMarkerLine(line)

	if a.fragment == nil || !a.belongs(line, isQuoted) {
		a.finishFragment()
		a.fragment = &fragmentBuilder{quoted: isQuoted}
	}
	a.fragment.add(line)
}

// belongs reports whether line continues the open fragment. A quoted
// fragment also absorbs reply headers and blank lines, even though they do
// not start with '>'.
func (a *assembler) belongs(line string, isQuoted bool) bool {
	if a.fragment.quoted == isQuoted {
		return true
	}
	if a.fragment.quoted {
		return line == "" || a.classifier.IsQuoteHeaderLine(line)
	}
	return false
}

// finishFragment seals the open fragment, if any. Sealing fixes the hidden
// flag: quoted fragments, signatures and empty fragments are hidden.
func (a *assembler) finishFragment() {
	if a.fragment != nil {
		a.fragments = append(a.fragments, a.fragment.seal())
	}
	a.fragment = nil
}

func reverseFragments(f []Fragment) {
	for i, j := 0, len(f)-1; i < j; i, j = i+1, j-1 {
		f[i], f[j] = f[j], f[i]
	}
}
