package render

import (
	"log/slog"
	"math"
	"reflect"
	"strings"
)

// DefaultMaxDepth is the nesting limit used when RendererConfig.MaxDepth
// is zero.
const DefaultMaxDepth = 512

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// MaxDepth bounds how deeply child slices may nest.
	// Defaults to DefaultMaxDepth if not specified.
	MaxDepth int

	// Logger receives depth-limit reports at debug level. Optional.
	Logger *slog.Logger
}

// Renderer turns tag/attributes/children calls into escaped HTML.
// It only holds configuration and is safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	return &Renderer{config: config}
}

// MaxDepth returns the configured nesting limit.
func (r *Renderer) MaxDepth() int {
	return r.config.MaxDepth
}

var defaultRenderer = NewRenderer(RendererConfig{})

// H renders with the default renderer. It panics with a *DepthError if
// children nest deeper than DefaultMaxDepth; use Renderer.Render to get the
// error instead.
func H(tag Tag, attrs Attrs, children ...any) SafeHTML {
	html, err := defaultRenderer.Render(tag, attrs, children...)
	if err != nil {
		panic(err)
	}
	return html
}

// Render builds the markup for one tag.
//
// Elements render as <tag attrs>body</tag>, void elements as <tag attrs>,
// and fragments as their body alone. A pseudo-component is called with a
// copy of attrs and the children as passed; a SafeHTML result is returned
// untouched and any other result is rendered like a fragment child.
func (r *Renderer) Render(tag Tag, attrs Attrs, children ...any) (SafeHTML, error) {
	switch tag.Kind {
	case KindComponent:
		return r.renderComponent(tag.Component, attrs, children)
	case KindElement:
		return r.renderElement(tag.Name, attrs, children)
	default:
		return r.renderElement("", attrs, children)
	}
}

// renderComponent invokes a pseudo-component once.
func (r *Renderer) renderComponent(c Component, attrs Attrs, children []any) (SafeHTML, error) {
	if c == nil {
		return r.renderElement("", attrs, children)
	}

	props := Props{Attrs: attrs.Clone(), Children: make([]any, len(children))}
	copy(props.Children, children)

	out := c(props)
	if html, ok := out.(SafeHTML); ok {
		return html, nil
	}
	return r.renderElement("", nil, []any{out})
}

// renderElement renders an element, or a fragment when tag is empty.
func (r *Renderer) renderElement(tag string, attrs Attrs, children []any) (SafeHTML, error) {
	var buf strings.Builder

	if tag != "" {
		buf.WriteByte('<')
		buf.WriteString(tag)
		renderAttributes(&buf, attrs)
		buf.WriteByte('>')

		if isVoidElement(tag) {
			return SafeHTML(buf.String()), nil
		}
	}

	if raw, ok := attrs.innerHTML(); ok {
		buf.WriteString(raw)
	} else if err := r.renderChildren(&buf, tag, children); err != nil {
		return "", err
	}

	if tag != "" {
		buf.WriteString("</")
		buf.WriteString(tag)
		buf.WriteByte('>')
	}

	return SafeHTML(buf.String()), nil
}

// renderAttributes writes ` name="value"` for every attribute that renders.
func renderAttributes(buf *strings.Builder, attrs Attrs) {
	for _, attr := range attrs {
		if attr.Key == InnerHTMLKey {
			continue
		}
		if isOmitted(attr.Value) {
			continue
		}

		buf.WriteByte(' ')
		if name, ok := attrNames[attr.Key]; ok {
			buf.WriteString(name)
		} else {
			buf.WriteString(Escape(attr.Key))
		}
		buf.WriteString(`="`)
		buf.WriteString(Escape(attr.Value))
		buf.WriteByte('"')
	}
}

// stackItem is a pending child and the slice depth it was found at.
type stackItem struct {
	value any
	depth int
}

// renderChildren flattens children depth-first, left to right, using an
// explicit stack so deep nesting never grows the call stack.
func (r *Renderer) renderChildren(buf *strings.Builder, tag string, children []any) error {
	stack := make([]stackItem, 0, len(children))
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, stackItem{value: children[i]})
	}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if isFalsy(item.value) {
			continue
		}

		switch v := item.value.(type) {
		case SafeHTML:
			buf.WriteString(string(v))
			continue
		case string:
			buf.WriteString(escapeHTML(v))
			continue
		case []any:
			if err := r.checkDepth(tag, item.depth+1); err != nil {
				return err
			}
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, stackItem{value: v[i], depth: item.depth + 1})
			}
			continue
		}

		if rv, ok := sequence(item.value); ok {
			if err := r.checkDepth(tag, item.depth+1); err != nil {
				return err
			}
			for i := rv.Len() - 1; i >= 0; i-- {
				stack = append(stack, stackItem{value: rv.Index(i).Interface(), depth: item.depth + 1})
			}
			continue
		}

		buf.WriteString(Escape(item.value))
	}

	return nil
}

// checkDepth fails once nesting passes the configured limit.
func (r *Renderer) checkDepth(tag string, depth int) error {
	if depth <= r.config.MaxDepth {
		return nil
	}
	if tag == "" {
		tag = Fragment.String()
	}
	if r.config.Logger != nil {
		r.config.Logger.Debug("render depth limit exceeded", "tag", tag, "limit", r.config.MaxDepth)
	}
	return &DepthError{Tag: tag, Limit: r.config.MaxDepth}
}

// sequence reports whether v is a slice or array to be flattened.
// Byte slices are text, not sequences.
func sequence(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv, false
		}
		return rv, true
	case reflect.Array:
		return rv, true
	}
	return rv, false
}

// isVoidElement returns true if the tag is a void element.
func isVoidElement(tag string) bool {
	return voidElements[tag]
}

// isOmitted reports whether an attribute value drops the attribute:
// false and nil do, everything else (true, 0, "") renders.
func isOmitted(v any) bool {
	if b, ok := v.(bool); ok {
		return !b
	}
	return isNil(v)
}

// isFalsy reports whether a child is skipped entirely: nil, false, "",
// numeric zero, NaN and typed nils.
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case SafeHTML:
		return x == ""
	case int:
		return x == 0
	case int64:
		return x == 0
	case float64:
		return x == 0 || math.IsNaN(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	}
	return false
}

// isNil reports whether v is nil or a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
