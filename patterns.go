package mailstrip

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// > I define UNIX as “30 definitions of regular expressions living under one
// > roof.”
// -- Don Knuth
//
// The reply header catalog relies on lookahead to tell "On DATE, NAME wrote:"
// apart from ordinary sentences starting with "One" or "On", which Go's RE2
// engine cannot express. The patterns are therefore compiled with regexp2,
// a backtracking engine, always with the Multiline option so that ^ and $
// stand for beginning and end of line, and with ECMAScript semantics so that
// \w and \d only match ASCII, as the catalog was written for: "-Łukasz" is
// a reply line, not a signature. Every pattern is applied to text in
// natural reading order, even though the assembler walks lines bottom-up.
//
// Backtracking engines can be driven into catastrophic runtimes by a badly
// written pattern. The default catalog is bounded by line anchors; callers
// supplying their own patterns should set a match timeout (see
// WithMatchTimeout).
const (
	defaultSignature   = `(?:^\s*--|^\s*__|^-\w|^-- $)|(?:^Sent from my (?:\s*\w+){1,4}$)|(?:^={30,}$)$`
	defaultQuoteMarker = `^>+`
)

var defaultQuoteHeaders = []string{
	// On DATE, NAME <EMAIL> wrote:
	`^\s*(On(?:(?!.*On\b|\bwrote:)[\s\S])+wrote:)$`,
	// Le DATE, NAME <EMAIL> a écrit :
	`^\s*(Le(?:(?!.*Le\b|\bécrit:)[\s\S])+écrit :)$`,
	// El DATE, NAME <EMAIL> escribió:
	`^\s*(El(?:(?!.*El\b|\bescribió:)[\s\S])+escribió:)$`,
	// Il DATE, NAME <EMAIL> ha scritto:
	`^\s*(Il(?:(?!.*Il\b|\bscritto:)[\s\S])+scritto:)$`,
	// Op DATE schreef NAME <EMAIL>:
	`^\s*(Op\s[\S\s]+?schreef[\S\s]+:)$`,
	// Em DATE, NAME <EMAIL> escreveu:
	`^\s*(Em(?:(?!.*Em\b|\bescreveu:)[\s\S])+escreveu:)$`,
	// W dniu DATE, NAME <EMAIL> pisze|napisał:
	`^\s*((W\sdniu|Dnia)\s[\S\s]+?(pisze|napisał(\(a\))?):)$`,
	// Den DATE skrev NAME <EMAIL>:
	`^\s*(Den\s.+\sskrev\s.+:)$`,
	// Am DATE um TIME schrieb NAME:
	`^\s*(Am\s.+\sum\s.+\sschrieb\s.+:)$`,
	// 在 DATE, TIME, NAME 写道：
	`^(在[\S\s]+写道：)$`,
	// DATE TIME NAME 작성:
	`^(20[0-9]{2}\..+\s작성:)$`,
	// DATE TIME、NAME のメッセージ:
	`^(20[0-9]{2}\/.+のメッセージ:)$`,
	// NAME <EMAIL> schrieb:
	`^(.+\s<.+>\sschrieb:)$`,
	// From: NAME <EMAIL>, From : NAME<EMAIL>, From: NAME [mailto:EMAIL]
	`^\s*(From\s?:.+\s?(\[|<).+(\]|>))`,
	// De: NAME <EMAIL>
	`^\s*(De\s?:.+\s?(\[|<).+(\]|>))`,
	// Van: NAME <EMAIL>
	`^\s*(Van\s?:.+\s?(\[|<).+(\]|>))`,
	// Da: NAME <EMAIL>
	`^\s*(Da\s?:.+\s?(\[|<).+(\]|>))`,
	// 20YY-MM-DD HH:II GMT+01:00 NAME <EMAIL>:
	`^(20[0-9]{2}-(?:0?[1-9]|1[012])-(?:0?[0-9]|[1-2][0-9]|3[01]|[1-9])\s[0-2]?[0-9]:\d{2}\s[\S\s]+?:)$`,
	// tir. DATE skrev NAME <EMAIL>:
	`^\s*([a-z]{3,4}\.[\s\S]+\sskrev[\s\S]+:)$`,
}

var (
	signatureRegexp    = MustCompile(defaultSignature)
	quoteMarkerRegexp  = MustCompile(defaultQuoteMarker)
	quoteHeaderRegexps = mustCompileAll(defaultQuoteHeaders)
)

// compileOptions are the options every catalog pattern is compiled with.
const compileOptions = regexp2.ECMAScript | regexp2.Multiline

// Compile compiles a catalog pattern with the ECMAScript and Multiline
// options. Reply header patterns must capture the header phrase as their
// first group.
func Compile(expr string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(expr, compileOptions)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	return re, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(expr string) *regexp2.Regexp {
	re, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return re
}

// DefaultQuoteHeaderPatterns returns the built-in reply header catalog, in
// the order the header normalizer applies it. The returned slice is a copy.
func DefaultQuoteHeaderPatterns() []*regexp2.Regexp {
	out := make([]*regexp2.Regexp, len(quoteHeaderRegexps))
	copy(out, quoteHeaderRegexps)
	return out
}

// isBuiltin reports whether re is one of the package's own patterns.
func isBuiltin(re *regexp2.Regexp) bool {
	if re == signatureRegexp || re == quoteMarkerRegexp {
		return true
	}
	for _, header := range quoteHeaderRegexps {
		if re == header {
			return true
		}
	}
	return false
}

func mustCompileAll(exprs []string) []*regexp2.Regexp {
	res := make([]*regexp2.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		res = append(res, MustCompile(expr))
	}
	return res
}
