// Package render turns nested tag/attributes/children calls into a single
// escaped HTML string.
//
// Each call builds one element and returns it as SafeHTML. Passing that
// value as a child of another call embeds it verbatim, while every other
// child is converted to text and escaped:
//
//	page := render.H(render.El("div"), render.Attrs{{Key: "class", Value: "foo"}},
//	    render.H(render.El("h1"), nil, "Hi!"),
//	    "<b>escaped</b>",
//	)
//	// <div class="foo"><h1>Hi!</h1>&lt;b&gt;escaped&lt;/b&gt;</div>
//
// # Children
//
// Children may be strings, numbers, booleans, nil, SafeHTML values, or
// slices and arrays of any of these, nested to any depth. They are
// flattened depth-first, left to right. Falsy children (nil, false, "",
// zero, NaN) are skipped.
//
// # Attributes
//
// Attrs is ordered; attributes render in the order given. Attributes whose
// value is false or nil are omitted. className renders as class and htmlFor
// as for. The dangerouslySetInnerHTML attribute replaces the element body
// with unescaped markup and discards the children.
//
// # Pseudo-components
//
// A Component is a function of Props. Func(c) in the tag position calls c
// with a copy of the attributes and the children as passed:
//
//	Item := func(p render.Props) any {
//	    return render.H(render.El("li"), nil, p.Get("item"), p.Children)
//	}
//	render.H(render.Func(Item), render.Attrs{{Key: "item", Value: "1"}}, "child")
//
// # Void elements
//
// area, base, br, col, command, embed, hr, img, input, keygen, link, meta,
// param, source, track and wbr never get a closing tag or body.
//
// # Security
//
// All text and attribute values are escaped. Raw and
// dangerouslySetInnerHTML bypass escaping and should only be used with
// trusted content.
package render
