package tree

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/stringjsx/pkg/render"
)

func evalString(t *testing.T, doc string, reg *Registry) string {
	t.Helper()
	node, err := Parse([]byte(doc))
	require.NoError(t, err)
	html, err := node.Eval(render.NewRenderer(render.RendererConfig{}), reg)
	require.NoError(t, err)
	return string(html)
}

func TestParseJSON(t *testing.T) {
	doc := `{
  "tag": "div",
  "attrs": {"class": "foo", "data-z": 1, "data-a": true, "hidden": false, "title": null},
  "children": [{"tag": "h1", "children": ["Hi!"]}, "<b>", 0, 42]
}`

	got := evalString(t, doc, nil)
	assert.Equal(t, `<div class="foo" data-z="1" data-a="true"><h1>Hi!</h1>&lt;b&gt;42</div>`, got)
}

func TestParseYAMLKeepsAttributeOrder(t *testing.T) {
	doc := `
tag: input
attrs:
  type: text
  name: q
  className: search
  htmlFor: box
  autocomplete: "off"
`
	got := evalString(t, doc, nil)
	assert.Equal(t, `<input type="text" name="q" class="search" for="box" autocomplete="off">`, got)
}

func TestParseNestedSequencesFlatten(t *testing.T) {
	doc := `
tag: div
children:
  - [[a, b]]
  - {tag: c, children: [d]}
  - [e, [f], [[g]]]
`
	assert.Equal(t, "<div>ab<c>d</c>efg</div>", evalString(t, doc, nil))
}

func TestParseFragments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "root sequence", doc: `["foo", "bar", {"tag": "em", "children": "baz"}]`, want: "foobar<em>baz</em>"},
		{name: "null tag", doc: `{"tag": null, "children": ["a", "b"]}`, want: "ab"},
		{name: "missing tag", doc: `children: [x]`, want: "x"},
		{name: "root scalar", doc: `"<p>"`, want: "&lt;p&gt;"},
		{name: "empty document", doc: ``, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evalString(t, tt.doc, nil))
		})
	}
}

func TestParseInnerHTML(t *testing.T) {
	doc := `{"tag": "div", "attrs": {"dangerouslySetInnerHTML": {"__html": "<span>x</span>"}}, "children": ["ignored"]}`
	assert.Equal(t, "<div><span>x</span></div>", evalString(t, doc, nil))

	_, err := Parse([]byte(`{"tag": "div", "attrs": {"dangerouslySetInnerHTML": "<b>"}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, err = Parse([]byte(`{"tag": "div", "attrs": {"dangerouslySetInnerHTML": {"html": "<b>"}}}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestParseVoidElementDropsChildren(t *testing.T) {
	assert.Equal(t, "<br>", evalString(t, `{"tag": "br", "children": ["ignored"]}`, nil))
}

func TestComponents(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Item", func(p render.Props) any {
		return render.H(render.El("li"), render.Attrs{{Key: "id", Value: p.Get("index")}},
			render.H(render.El("h4"), nil, p.Get("item")),
			p.Children,
		)
	})

	doc := `
tag: ul
children:
  - {tag: Item, attrs: {item: one, index: 0}}
  - tag: Item
    attrs: {item: two, index: 1}
    children: [{tag: em, children: [extra]}]
`
	want := `<ul><li id="0"><h4>one</h4></li><li id="1"><h4>two</h4><em>extra</em></li></ul>`
	assert.Equal(t, want, evalString(t, doc, reg))
	assert.Equal(t, []string{"Item"}, reg.Names())
}

func TestComponentSeesUnflattenedChildren(t *testing.T) {
	var seen []any
	reg := NewRegistry()
	reg.Register("Probe", func(p render.Props) any {
		seen = p.Children
		return nil
	})

	evalString(t, `{"tag": "Probe", "children": [[a, [b]], c]}`, reg)

	require.Len(t, seen, 2)
	inner, ok := seen[0].([]any)
	require.True(t, ok)
	assert.Equal(t, "a", inner[0])
	assert.Equal(t, "c", seen[1])
}

func TestUnknownComponent(t *testing.T) {
	node, err := Parse([]byte("tag: div\nchildren:\n  - tag: Missing\n"))
	require.NoError(t, err)

	_, err = node.Eval(render.NewRenderer(render.RendererConfig{}), NewRegistry())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownComponent)

	var docErr *DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, 3, docErr.Line)
	assert.Contains(t, docErr.Error(), `"Missing" is not registered`)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind error
	}{
		{name: "syntax", doc: `{"tag": "div"`, kind: ErrSyntax},
		{name: "unknown key", doc: `{"tag": "div", "kids": []}`, kind: ErrInvalidDocument},
		{name: "tag not scalar", doc: `{"tag": ["div"]}`, kind: ErrInvalidDocument},
		{name: "attrs not mapping", doc: `{"tag": "div", "attrs": ["a"]}`, kind: ErrInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestParseDepthLimit(t *testing.T) {
	doc := strings.Repeat("[", 20) + "x" + strings.Repeat("]", 20)

	_, err := Parse([]byte(doc), WithMaxDepth(8))
	require.Error(t, err)
	assert.ErrorIs(t, err, render.ErrRecursionLimitExceeded)

	node, err := Parse([]byte(doc))
	require.NoError(t, err)
	_, err = node.Eval(render.NewRenderer(render.RendererConfig{MaxDepth: 8}), nil)
	assert.ErrorIs(t, err, render.ErrRecursionLimitExceeded)
}

func TestParseAliases(t *testing.T) {
	doc := `
- &greet {tag: b, children: [hi]}
- *greet
- &pair [x, y]
- *pair
`
	assert.Equal(t, "<b>hi</b><b>hi</b>xyxy", evalString(t, doc, nil))
}

// aliasBomb builds a document where every level repeats the previous one
// ten times through aliases.
func aliasBomb(levels int) string {
	var b strings.Builder
	b.WriteString("- &a0 [x]\n")
	for i := 1; i <= levels; i++ {
		refs := make([]string, 10)
		for j := range refs {
			refs[j] = fmt.Sprintf("*a%d", i-1)
		}
		fmt.Fprintf(&b, "- &a%d [%s]\n", i, strings.Join(refs, ", "))
	}
	return b.String()
}

func TestParseAliasExpansionLimit(t *testing.T) {
	doc := aliasBomb(9)
	require.Less(t, len(doc), 1024)

	start := time.Now()
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, err.Error(), "through aliases")
	assert.Less(t, time.Since(start), 5*time.Second)

	// Two levels expand to 111 leaves, well inside the budget.
	node, err := Parse([]byte(aliasBomb(2)))
	require.NoError(t, err)
	html, err := node.Eval(render.NewRenderer(render.RendererConfig{}), nil)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", 111), string(html))
}

func TestParseSelfReferentialAlias(t *testing.T) {
	_, err := Parse([]byte("&loop [a, *loop]"))
	require.Error(t, err)
}

func TestDecode(t *testing.T) {
	node, err := Decode(strings.NewReader(`{"tag": "p", "children": ["a & b"]}`))
	require.NoError(t, err)
	assert.Equal(t, "p", node.Tag)
	assert.False(t, node.IsComponent())

	html, err := node.Eval(render.NewRenderer(render.RendererConfig{}), nil)
	require.NoError(t, err)
	assert.Equal(t, render.SafeHTML("<p>a &amp; b</p>"), html)
}
