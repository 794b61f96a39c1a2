package render

// SafeHTML is markup that has already been escaped and assembled. It is
// embedded verbatim when passed as a child; plain strings are escaped.
//
// Every value returned by Renderer.Render and H is a SafeHTML.
type SafeHTML string

// String returns the markup.
func (s SafeHTML) String() string {
	return string(s)
}

// Raw marks trusted markup as safe without escaping it.
// Only use it with content that never carries user input.
func Raw(html string) SafeHTML {
	return SafeHTML(html)
}

// Text escapes v and returns it as SafeHTML.
func Text(v any) SafeHTML {
	return SafeHTML(Escape(v))
}

// TagKind is the tag discriminator.
type TagKind uint8

const (
	KindFragment  TagKind = iota // No wrapping element
	KindElement                  // <div>, <li>, etc.
	KindComponent                // Pseudo-component call
)

// String returns the string representation of the TagKind.
func (k TagKind) String() string {
	switch k {
	case KindFragment:
		return "Fragment"
	case KindElement:
		return "Element"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Tag is what goes in the tag position of a render call: an element name,
// a fragment, or a pseudo-component. The zero Tag is a fragment.
type Tag struct {
	Kind      TagKind
	Name      string
	Component Component
}

// Fragment groups children without a wrapping element.
var Fragment = Tag{Kind: KindFragment}

// El returns an element tag. An empty name is a fragment.
func El(name string) Tag {
	if name == "" {
		return Fragment
	}
	return Tag{Kind: KindElement, Name: name}
}

// Func returns a tag that invokes c as a pseudo-component.
func Func(c Component) Tag {
	if c == nil {
		return Fragment
	}
	return Tag{Kind: KindComponent, Component: c}
}

// String returns the tag name, "<>" for fragments and "<component>" for
// pseudo-components.
func (t Tag) String() string {
	switch t.Kind {
	case KindElement:
		return t.Name
	case KindComponent:
		return "<component>"
	default:
		return "<>"
	}
}

// Component is a pseudo-component: a plain function of its props returning
// a child value, usually a SafeHTML. It is invoked once per occurrence and
// keeps no state between calls.
type Component func(props Props) any

// Props is what a pseudo-component receives: a copy of the attributes it
// was called with plus the children passed to it, unflattened. Children
// is empty, never nil, when none were passed.
type Props struct {
	Attrs    Attrs
	Children []any
}

// Get returns the attribute value for key, or nil.
func (p Props) Get(key string) any {
	v, _ := p.Attrs.Get(key)
	return v
}

// Has reports whether the attribute key is present.
func (p Props) Has(key string) bool {
	_, ok := p.Attrs.Get(key)
	return ok
}

// Attr is a single attribute.
type Attr struct {
	Key   string
	Value any
}

// Attrs is an ordered attribute list. Attributes render in slice order.
type Attrs []Attr

// Get returns the value of the first attribute named key.
func (a Attrs) Get(key string) (any, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of key, or appends it if absent.
func (a Attrs) Set(key string, value any) Attrs {
	for i := range a {
		if a[i].Key == key {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Key: key, Value: value})
}

// Clone returns a copy of the attribute list.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	copy(out, a)
	return out
}

// InnerHTMLKey is the attribute that replaces an element's body with raw,
// unescaped markup. It is never rendered as an attribute.
const InnerHTMLKey = "dangerouslySetInnerHTML"

// InnerHTML is the value carried by InnerHTMLKey.
type InnerHTML struct {
	HTML string
}

// DangerouslySetInnerHTML returns the attribute that sets raw element content.
func DangerouslySetInnerHTML(html string) Attr {
	return Attr{Key: InnerHTMLKey, Value: InnerHTML{HTML: html}}
}

// innerHTML returns the raw body set through InnerHTMLKey, if any.
func (a Attrs) innerHTML() (string, bool) {
	v, ok := a.Get(InnerHTMLKey)
	if !ok {
		return "", false
	}
	switch x := v.(type) {
	case InnerHTML:
		return x.HTML, true
	case *InnerHTML:
		if x != nil {
			return x.HTML, true
		}
	}
	return "", false
}
