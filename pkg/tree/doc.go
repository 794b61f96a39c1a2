// Package tree reads markup documents and turns them into render calls.
//
// A document is JSON or YAML. Mappings are elements, sequences are nested
// child sequences and scalars are text:
//
//	tag: div
//	attrs:
//	  className: card
//	children:
//	  - {tag: h1, children: [Hello]}
//	  - [a, [b]]
//	  - {tag: Item, attrs: {item: one}}
//
// A missing or null tag is a fragment. Tags starting with an upper-case
// letter are pseudo-components looked up in a Registry at evaluation time.
// Attribute order is kept exactly as written.
package tree
