package mailstrip

import (
	"fmt"
)

func ExampleParse() {
	text :=
		`Yeah, that works!

-Bob

On 01/03/11 7:07 PM, Alice wrote:
> Hi Bob,
>
> can I push the latest release later tonight?
`

	email := Parse(text)
	fmt.Printf("result: %q\n", email.String())
	// Output:
	// result: "Yeah, that works!\n"
}

func ExampleVisibleText() {
	text := "Here is another email\nSent from my iPhone\n"

	fmt.Printf("result: %q\n", VisibleText(text))
	// Output:
	// result: "Here is another email"
}

func ExampleEmail_VisibleText() {
	text :=
		`Visible top

> quoted

middle

> quoted2

bottom`

	email := Parse(text)
	fmt.Printf("default: %q\n", email.VisibleText(false))
	fmt.Printf("aggressive: %q\n", email.VisibleText(true))
	// Output:
	// default: "Visible top\nmiddle\nbottom"
	// aggressive: "Visible top\nbottom"
}

func ExampleNew() {
	text := "Thank you!\n\n2016. 11. 28. 13:56 Test User <test@example.com> írta:\n> Hi there\n"

	parser := New(WithQuoteHeaderPatterns(MustCompile(`^(\d{4}([\S\s]*)rta:)$`)))
	fmt.Printf("result: %q\n", parser.Parse(text).VisibleText(false))
	// Output:
	// result: "Thank you!\n"
}
