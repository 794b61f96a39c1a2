package main

import (
	"fmt"

	. "github.com/vango-dev/stringjsx/el"
	"github.com/vango-dev/stringjsx/pkg/tree"
)

// builtinComponents are the pseudo-components documents can name.
func builtinComponents() *tree.Registry {
	reg := tree.NewRegistry()
	reg.Register("Item", Item)
	reg.Register("MyTable", MyTable)
	reg.Register("Card", Card)
	reg.Register("CodeBlock", CodeBlock)
	reg.Register("NavLink", NavLink)
	return reg
}

// Item renders one table row holding a list item.
func Item(p Props) any {
	return Tr(
		Li(AttrOf("id", p.Get("index")),
			H4(p.Get("item")),
			p.Children,
		),
	)
}

// MyTable wraps its children in a table body.
func MyTable(p Props) any {
	return Table(Class("mytable"),
		Tbody(p.Children),
	)
}

// Card renders a titled section. Props: title, footer.
func Card(p Props) any {
	return Section(Class("card"),
		If(p.Has("title"), Header(H2(p.Get("title")))),
		Div(Class("card-body"), p.Children),
		If(p.Has("footer"), Footer(p.Get("footer"))),
	)
}

// CodeBlock renders preformatted code. Props: lang.
func CodeBlock(p Props) any {
	var lang any
	if l := p.Get("lang"); l != nil {
		lang = fmt.Sprintf("language-%v", l)
	}
	return Pre(Code(AttrOf("class", lang), p.Children))
}

// NavLink renders a link that marks itself current. Props: href, current.
func NavLink(p Props) any {
	current := p.Get("current") == true
	return A(
		AttrOf("href", p.Get("href")),
		If(current, AttrOf("aria-current", "page")),
		p.Children,
	)
}
