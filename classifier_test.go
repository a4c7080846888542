package mailstrip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifierSignatureLines(t *testing.T) {
	c := New().Classifier()

	for _, line := range []string{
		"-- ",
		"--",
		"  -- foo",
		"__",
		"_______________________________________________",
		"-Abhishek Kona",
		"-Bob",
		"Sent from my iPhone",
		"Sent from my BlackBerry",
		"Sent from my Verizon Wireless BlackBerry",
		"==============================",
	} {
		assert.True(t, c.IsSignatureLine(line), "expected signature line: %q", line)
	}

	for _, line := range []string{
		"",
		"Hello",
		"- bullet",
		"   - how about bullets",
		"Sent from my desk, is much easier then my mobile phone.",
		"=============================",
		"this is an email with a correct -- signature.",
	} {
		assert.False(t, c.IsSignatureLine(line), "unexpected signature line: %q", line)
	}
}

func TestClassifierQuoteMarkerLines(t *testing.T) {
	c := New().Classifier()

	assert.True(t, c.IsQuoteMarkerLine(">"))
	assert.True(t, c.IsQuoteMarkerLine("> quoted"))
	assert.True(t, c.IsQuoteMarkerLine(">>> deeply quoted"))
	assert.False(t, c.IsQuoteMarkerLine(""))
	assert.False(t, c.IsQuoteMarkerLine(" > indented"))
	assert.False(t, c.IsQuoteMarkerLine("a > b"))
}

func TestClassifierQuoteHeaderLines(t *testing.T) {
	c := New().Classifier()

	assert.True(t, c.IsQuoteHeaderLine("On Tue, 2011-03-01 at 18:02 +0530, Abhishek Kona wrote:"))
	assert.True(t, c.IsQuoteHeaderLine("From: foo@example.com <foo@example.com>"))
	assert.True(t, c.IsQuoteHeaderLine("Test user <test@example.com> schrieb:"))

	assert.False(t, c.IsQuoteHeaderLine("One outstanding question I had:"))
	assert.False(t, c.IsQuoteHeaderLine("On the other hand, I wrote: nothing"))
	assert.False(t, c.IsQuoteHeaderLine("Dear Google Apps Sync user,"))
	assert.False(t, c.IsQuoteHeaderLine(""))
}

func TestClassifierWithoutQuoteHeaders(t *testing.T) {
	c := New(WithQuoteHeaderPatterns()).Classifier()

	assert.False(t, c.IsQuoteHeaderLine("On Tue, 2011-03-01 at 18:02 +0530, Abhishek Kona wrote:"))
}

func TestClassifierNonASCIISignOffs(t *testing.T) {
	c := New().Classifier()

	for _, line := range []string{
		"-Łukasz",
		"-Élodie",
		"-Ørjan Berg",
		"Sent from my Téléphone",
	} {
		assert.False(t, c.IsSignatureLine(line), line)
	}
	assert.True(t, c.IsSignatureLine("-Lukasz"))
	assert.True(t, c.IsSignatureLine("Sent from my Telephone"))
}

func TestClassifierZeroValue(t *testing.T) {
	var c Classifier

	assert.NotPanics(t, func() {
		assert.True(t, c.IsSignatureLine("-- "))
		assert.False(t, c.IsSignatureLine("Hello"))
		assert.True(t, c.IsQuoteMarkerLine("> quoted"))
		assert.True(t, c.IsQuoteHeaderLine("On Mon, Alice wrote:"))
	})
}
