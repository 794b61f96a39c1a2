// Package el provides an element DSL on top of the render package.
//
// Every element constructor takes a mixed argument list: render.Attr and
// render.Attrs values become attributes, in order, and everything else is
// a child. Each constructor is one render.H call:
//
//	el.Div(el.Class("foo"),
//	    el.H1("Hi!"),
//	    el.Ul(el.Range(items, func(item string, _ int) any { return el.Li(item) })),
//	)
//
// Typical usage dot-imports the package:
//
//	import . "github.com/vango-dev/stringjsx/el"
package el
