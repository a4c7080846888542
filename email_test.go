package mailstrip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visible(content string) Fragment {
	return Fragment{content: content}
}

func quoted(content string) Fragment {
	return Fragment{content: content, quoted: true, hidden: true}
}

func TestEmailNil(t *testing.T) {
	var email *Email

	assert.Equal(t, 0, email.Len())
	assert.Empty(t, email.Fragments())
	assert.NotNil(t, email.Fragments())
	assert.Equal(t, "", email.VisibleText(false))
	assert.Equal(t, "", email.VisibleText(true))
	assert.Equal(t, "", email.String())
}

func TestEmailFragmentsIsCopy(t *testing.T) {
	email := Parse("Hi folks\n\n-Abhishek Kona\n")
	require.Equal(t, 2, email.Len())

	fragments := email.Fragments()
	fragments[0] = quoted("replaced")

	assert.Equal(t, 2, email.Len())
	assert.Equal(t, "Hi folks\n", email.Fragments()[0].Content())
	assert.False(t, email.Fragments()[0].Hidden())
}

func TestEmailVisibleText(t *testing.T) {
	tests := []struct {
		name       string
		fragments  []Fragment
		normal     string
		aggressive string
	}{
		{
			name:       "no fragments",
			fragments:  []Fragment{},
			normal:     "",
			aggressive: "",
		},
		{
			name:       "single visible",
			fragments:  []Fragment{visible("hello")},
			normal:     "hello",
			aggressive: "hello",
		},
		{
			name:       "sandwiched fragment",
			fragments:  []Fragment{visible("a"), quoted("> q"), visible("b"), quoted("> q2"), visible("c")},
			normal:     "a\nb\nc",
			aggressive: "a\nc",
		},
		{
			name:       "first and last are never sandwiched",
			fragments:  []Fragment{visible("a"), quoted("> q"), visible("c")},
			normal:     "a\nc",
			aggressive: "a\nc",
		},
		{
			name:       "visible neighbour keeps fragment",
			fragments:  []Fragment{quoted("> q"), visible("a"), visible("b"), quoted("> q2")},
			normal:     "a\nb",
			aggressive: "a\nb",
		},
		{
			name:       "all hidden",
			fragments:  []Fragment{quoted("> q"), quoted("> q2")},
			normal:     "",
			aggressive: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email := &Email{fragments: tt.fragments}
			assert.Equal(t, tt.normal, email.VisibleText(false))
			assert.Equal(t, tt.aggressive, email.VisibleText(true))
			assert.Equal(t, tt.normal, email.String())
		})
	}
}

func TestEmailAggressiveScenario(t *testing.T) {
	email := Parse("Visible top\n\n> quoted\n\nmiddle\n\n> quoted2\n\nbottom")

	want := []Fragment{
		visible("Visible top"),
		quoted("> quoted"),
		visible("middle"),
		quoted("> quoted2"),
		visible("bottom"),
	}
	if diff := cmp.Diff(want, email.Fragments(), cmp.AllowUnexported(Fragment{})); diff != "" {
		t.Errorf("Fragments() mismatch (-want +got):\n%s", diff)
	}
}

func TestFragmentEmpty(t *testing.T) {
	assert.True(t, Fragment{}.Empty())
	assert.True(t, visible("\n\n").Empty())
	assert.False(t, visible(" ").Empty())
	assert.False(t, visible("a").Empty())
}

func TestFragmentBuilderSeal(t *testing.T) {
	// lines are added bottom-up
	b := &fragmentBuilder{}
	for _, line := range []string{"", "second", "first", ""} {
		b.add(line)
	}
	assert.Equal(t, "", b.lastLine())

	f := b.seal()
	assert.Equal(t, "first\nsecond\n", f.Content())
	assert.False(t, f.Hidden())

	b = &fragmentBuilder{}
	b.add("")
	b.add("")
	f = b.seal()
	assert.Equal(t, "", f.Content())
	assert.True(t, f.Hidden())
	assert.True(t, f.Empty())

	b = &fragmentBuilder{signature: true}
	b.add("rick")
	b.add("-- ")
	f = b.seal()
	assert.Equal(t, "-- \nrick", f.Content())
	assert.True(t, f.Signature())
	assert.True(t, f.Hidden())
}
