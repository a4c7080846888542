package mailstrip

import "strings"

// Fragment contains a parsed section of an email.
type Fragment struct {
	content   string
	hidden    bool
	signature bool
	quoted    bool
}

// Signature returns if the fragment is a signature or not.
func (f Fragment) Signature() bool {
	return f.signature
}

// Quoted returns if the fragment is a quote or not.
func (f Fragment) Quoted() bool {
	return f.quoted
}

// Hidden returns if the fragment is considered hidden or not. A fragment is
// hidden when it is quoted, a signature or empty.
func (f Fragment) Hidden() bool {
	return f.hidden
}

// Empty returns if the fragment has no content besides newlines.
func (f Fragment) Empty() bool {
	return isBlank(f.content)
}

// Content returns the content of the fragment.
func (f Fragment) Content() string {
	return f.content
}

// String returns the content of the fragment.
func (f Fragment) String() string {
	return f.content
}

// fragmentBuilder collects lines for a fragment that is still open. Lines
// are kept in the order they were scanned, which is bottom-up.
type fragmentBuilder struct {
	lines     []string
	signature bool
	quoted    bool
}

func (b *fragmentBuilder) add(line string) {
	b.lines = append(b.lines, line)
}

// lastLine is really the top-most line of the fragment so far, since lines
// are scanned in reverse.
func (b *fragmentBuilder) lastLine() string {
	return b.lines[len(b.lines)-1]
}

// seal builds the immutable Fragment. Lines are put back into reading order
// and a single leading newline is dropped from the joined content.
func (b *fragmentBuilder) seal() Fragment {
	lines := make([]string, len(b.lines))
	for i, line := range b.lines {
		lines[len(lines)-1-i] = line
	}
	content := strings.TrimPrefix(strings.Join(lines, "\n"), "\n")
	return Fragment{
		content:   content,
		signature: b.signature,
		quoted:    b.quoted,
		hidden:    b.quoted || b.signature || isBlank(content),
	}
}

func isBlank(s string) bool {
	return strings.ReplaceAll(s, "\n", "") == ""
}
