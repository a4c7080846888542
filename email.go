package mailstrip

import "strings"

// Email contains the parsed contents of an email. It is immutable; a nil
// *Email behaves like an email without fragments.
type Email struct {
	fragments []Fragment
}

// Fragments returns the fragments of the Email in reading order. The slice
// is a copy and may be modified freely.
func (e *Email) Fragments() []Fragment {
	if e == nil {
		return []Fragment{}
	}
	out := make([]Fragment, len(e.fragments))
	copy(out, e.fragments)
	return out
}

// Len returns the number of fragments.
func (e *Email) Len() int {
	if e == nil {
		return 0
	}
	return len(e.fragments)
}

// VisibleText joins the content of the non-hidden fragments with newlines.
//
// In aggressive mode a visible fragment is also left out when the fragments
// directly above and below it are both hidden, e.g. a stray line between two
// quoted blocks. The first and last fragments are never dropped this way.
func (e *Email) VisibleText(aggressive bool) string {
	if e == nil {
		return ""
	}
	results := []string{}
	for i, fragment := range e.fragments {
		if fragment.Hidden() {
			continue
		}
		if aggressive && e.sandwiched(i) {
			continue
		}
		results = append(results, fragment.Content())
	}
	return strings.Join(results, "\n")
}

// String returns the non-Hidden() fragments of the Email.
func (e *Email) String() string {
	return e.VisibleText(false)
}

func (e *Email) sandwiched(i int) bool {
	if i == 0 || i == len(e.fragments)-1 {
		return false
	}
	return e.fragments[i-1].Hidden() && e.fragments[i+1].Hidden()
}
