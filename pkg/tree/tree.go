package tree

import (
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/stringjsx/pkg/render"
)

var (
	// ErrSyntax is returned when a document is not valid JSON or YAML.
	ErrSyntax = errors.New("tree: syntax error")

	// ErrInvalidDocument is returned when a document has the wrong shape.
	ErrInvalidDocument = errors.New("tree: invalid document")

	// ErrUnknownComponent is returned when a document names a component
	// that is not registered.
	ErrUnknownComponent = errors.New("tree: unknown component")
)

// DocumentError locates a problem in a document.
type DocumentError struct {
	Line   int
	Column int
	Msg    string
	Kind   error // ErrSyntax, ErrInvalidDocument or ErrUnknownComponent
	Err    error // Underlying parser error, if any
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v at line %d, column %d: %s", e.Kind, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
}

// Unwrap returns the error kind and the underlying parser error.
func (e *DocumentError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Node is one element of a document: a render call waiting to happen.
//
// Children hold strings, numbers, booleans, nil, []any sequences and
// *Node values.
type Node struct {
	Tag      string // Empty for fragments; Capitalized for components
	Attrs    render.Attrs
	Children []any

	Line   int
	Column int
}

// IsComponent reports whether the tag names a registered component.
// Component names start with an upper-case letter.
func (n *Node) IsComponent() bool {
	r, _ := utf8.DecodeRuneInString(n.Tag)
	return unicode.IsUpper(r)
}

// Option configures parsing.
type Option func(*options)

type options struct {
	maxDepth int
}

// WithMaxDepth bounds how deeply elements and sequences may nest.
// Defaults to render.DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// Decode reads a whole document from r and parses it.
func Decode(r io.Reader, opts ...Option) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tree: read document: %w", err)
	}
	return Parse(data, opts...)
}

// Parse parses a JSON or YAML document.
//
// The root may be an element mapping, a sequence (rendered as a fragment)
// or a scalar (rendered as escaped text). Mapping order is preserved, so
// attributes render in the order they are written.
func Parse(data []byte, opts ...Option) (*Node, error) {
	o := options{maxDepth: render.DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &DocumentError{Msg: err.Error(), Kind: ErrSyntax, Err: err}
	}

	p := parser{
		maxDepth: o.maxDepth,
		maxNodes: max(expansionRatio*len(data), minNodeBudget),
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &Node{}, nil
	}
	root := doc.Content[0]

	switch root.Kind {
	case yaml.MappingNode:
		return p.element(root, 0)
	default:
		child, err := p.child(root, 0)
		if err != nil {
			return nil, err
		}
		n := &Node{Line: root.Line, Column: root.Column}
		if seq, ok := child.([]any); ok {
			n.Children = seq
		} else {
			n.Children = []any{child}
		}
		return n, nil
	}
}

// Aliases let a small document expand to a huge tree. Parsing stops once
// the node count passes expansionRatio times the input size, with a floor
// of minNodeBudget.
const (
	expansionRatio = 4
	minNodeBudget  = 4096
)

type parser struct {
	maxDepth int
	maxNodes int
	nodes    int
}

// visit counts one parsed node against the budget.
func (p *parser) visit(n *yaml.Node) error {
	p.nodes++
	if p.nodes <= p.maxNodes {
		return nil
	}
	return &DocumentError{
		Line:   n.Line,
		Column: n.Column,
		Msg:    fmt.Sprintf("document expands to more than %d nodes through aliases", p.maxNodes),
		Kind:   ErrInvalidDocument,
	}
}

func (p *parser) fail(n *yaml.Node, format string, args ...any) error {
	return &DocumentError{
		Line:   n.Line,
		Column: n.Column,
		Msg:    fmt.Sprintf(format, args...),
		Kind:   ErrInvalidDocument,
	}
}

func (p *parser) checkDepth(n *yaml.Node, depth int) error {
	if depth <= p.maxDepth {
		return nil
	}
	return &DocumentError{
		Line:   n.Line,
		Column: n.Column,
		Msg:    fmt.Sprintf("nesting deeper than %d levels", p.maxDepth),
		Kind:   render.ErrRecursionLimitExceeded,
	}
}

// element parses {tag, attrs, children}.
func (p *parser) element(n *yaml.Node, depth int) (*Node, error) {
	if err := p.checkDepth(n, depth); err != nil {
		return nil, err
	}

	out := &Node{Line: n.Line, Column: n.Column}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]

		switch key.Value {
		case "tag":
			if isNull(value) {
				continue
			}
			if value.Kind != yaml.ScalarNode {
				return nil, p.fail(value, "tag must be a string")
			}
			out.Tag = value.Value

		case "attrs":
			attrs, err := p.attrs(value)
			if err != nil {
				return nil, err
			}
			out.Attrs = attrs

		case "children":
			if isNull(value) {
				continue
			}
			if value.Kind != yaml.SequenceNode {
				child, err := p.child(value, depth+1)
				if err != nil {
					return nil, err
				}
				out.Children = []any{child}
				continue
			}
			children, err := p.sequence(value, depth+1)
			if err != nil {
				return nil, err
			}
			out.Children = children

		default:
			return nil, p.fail(key, "unknown element key %q (want tag, attrs or children)", key.Value)
		}
	}

	return out, nil
}

// attrs parses an ordered attribute mapping.
func (p *parser) attrs(n *yaml.Node) (render.Attrs, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, p.fail(n, "attrs must be a mapping")
	}

	attrs := make(render.Attrs, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]

		if key.Value == render.InnerHTMLKey {
			inner, err := p.innerHTML(value)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, render.Attr{Key: key.Value, Value: inner})
			continue
		}

		var v any
		if err := value.Decode(&v); err != nil {
			return nil, p.fail(value, "attribute %q: %v", key.Value, err)
		}
		attrs = append(attrs, render.Attr{Key: key.Value, Value: v})
	}
	return attrs, nil
}

// innerHTML parses {__html: "..."}.
func (p *parser) innerHTML(n *yaml.Node) (any, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, p.fail(n, "%s must be a mapping with an __html key", render.InnerHTMLKey)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == "__html" {
			return render.InnerHTML{HTML: n.Content[i+1].Value}, nil
		}
	}
	return nil, p.fail(n, "%s is missing __html", render.InnerHTMLKey)
}

func (p *parser) sequence(n *yaml.Node, depth int) ([]any, error) {
	if err := p.checkDepth(n, depth); err != nil {
		return nil, err
	}
	out := make([]any, 0, len(n.Content))
	for _, item := range n.Content {
		child, err := p.child(item, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

// child parses one child value.
func (p *parser) child(n *yaml.Node, depth int) (any, error) {
	if err := p.visit(n); err != nil {
		return nil, err
	}

	switch n.Kind {
	case yaml.MappingNode:
		return p.element(n, depth+1)
	case yaml.SequenceNode:
		return p.sequence(n, depth+1)
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, p.fail(n, "dangling alias")
		}
		return p.child(n.Alias, depth+1)
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, p.fail(n, "%v", err)
		}
		return v, nil
	default:
		return nil, p.fail(n, "unsupported node")
	}
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

// Eval renders the node with r, resolving component names through reg.
func (n *Node) Eval(r *render.Renderer, reg *Registry) (render.SafeHTML, error) {
	return n.eval(r, reg, 0)
}

func (n *Node) eval(r *render.Renderer, reg *Registry, depth int) (render.SafeHTML, error) {
	if depth > r.MaxDepth() {
		return "", &render.DepthError{Tag: n.Tag, Limit: r.MaxDepth()}
	}

	children, err := evalChildren(n.Children, r, reg, depth)
	if err != nil {
		return "", err
	}

	tag := render.El(n.Tag)
	if n.IsComponent() {
		c, ok := reg.Lookup(n.Tag)
		if !ok {
			return "", &DocumentError{
				Line:   n.Line,
				Column: n.Column,
				Msg:    fmt.Sprintf("%q is not registered", n.Tag),
				Kind:   ErrUnknownComponent,
			}
		}
		tag = render.Func(c)
	}

	return r.Render(tag, n.Attrs, children...)
}

// evalChildren renders element children and keeps sequences nested, so
// components see their children exactly as written.
func evalChildren(children []any, r *render.Renderer, reg *Registry, depth int) ([]any, error) {
	if len(children) == 0 {
		return nil, nil
	}
	if depth > r.MaxDepth() {
		return nil, &render.DepthError{Tag: "<>", Limit: r.MaxDepth()}
	}

	out := make([]any, len(children))
	for i, child := range children {
		switch v := child.(type) {
		case *Node:
			html, err := v.eval(r, reg, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = html
		case []any:
			seq, err := evalChildren(v, r, reg, depth+1)
			if err != nil {
				return nil, err
			}
			if seq == nil {
				seq = []any{}
			}
			out[i] = seq
		default:
			out[i] = v
		}
	}
	return out, nil
}
