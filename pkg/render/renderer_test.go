package render

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
)

func div(attrs Attrs, children ...any) SafeHTML { return H(El("div"), attrs, children...) }

func TestRenderProducesString(t *testing.T) {
	html := div(Attrs{{Key: "class", Value: "foo"}})
	if html != `<div class="foo"></div>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderNestedElements(t *testing.T) {
	html := div(Attrs{{Key: "class", Value: "foo"}}, H(El("h1"), nil, "Hi!"))
	want := `<div class="foo"><h1>Hi!</h1></div>`
	if string(html) != want {
		t.Errorf("got %q, want %q", html, want)
	}

	html = div(nil, div(nil, div(nil, H(El("p"), nil))))
	want = `<div><div><div><p></p></div></div></div>`
	if string(html) != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttributes(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attrs
		want  string
	}{
		{
			name:  "insertion order",
			attrs: Attrs{{Key: "data-b", Value: "1"}, {Key: "data-a", Value: "2"}, {Key: "id", Value: "x"}},
			want:  `<div data-b="1" data-a="2" id="x"></div>`,
		},
		{
			name:  "hardcoded values escaped",
			attrs: Attrs{{Key: "lol", Value: "&<>'"}},
			want:  `<div lol="&amp;&lt;&gt;&apos;"></div>`,
		},
		{
			name:  "dynamic values escaped",
			attrs: Attrs{{Key: "onclick", Value: `&<>"'`}},
			want:  `<div onclick="&amp;&lt;&gt;&quot;&apos;"></div>`,
		},
		{
			name:  "keys escaped",
			attrs: Attrs{{Key: `a"><script>`, Value: "x"}},
			want:  `<div a&quot;&gt;&lt;script&gt;="x"></div>`,
		},
		{
			name:  "special prop names",
			attrs: Attrs{{Key: "className", Value: "my-class"}, {Key: "htmlFor", Value: "id"}},
			want:  `<div class="my-class" for="id"></div>`,
		},
		{
			name:  "false and nil omitted",
			attrs: Attrs{{Key: "a", Value: false}, {Key: "b", Value: nil}, {Key: "c", Value: (*string)(nil)}},
			want:  `<div></div>`,
		},
		{
			name:  "true zero and empty rendered",
			attrs: Attrs{{Key: "hidden", Value: true}, {Key: "tabindex", Value: 0}, {Key: "title", Value: ""}},
			want:  `<div hidden="true" tabindex="0" title=""></div>`,
		},
		{
			name:  "numbers",
			attrs: Attrs{{Key: "r", Value: 48}, {Key: "y2", Value: -44}, {Key: "opacity", Value: 0.5}},
			want:  `<div r="48" y2="-44" opacity="0.5"></div>`,
		},
		{
			name:  "objects use placeholder",
			attrs: Attrs{{Key: "data", Value: map[string]string{}}},
			want:  `<div data="[object]"></div>`,
		},
		{
			name:  "inner html key never rendered",
			attrs: Attrs{{Key: InnerHTMLKey, Value: "not an InnerHTML value"}},
			want:  `<div></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := div(tt.attrs)
			if string(html) != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderEscapesChildren(t *testing.T) {
	html := div(nil, "<strong>blocked</strong>")
	want := `<div>&lt;strong&gt;blocked&lt;/strong&gt;</div>`
	if string(html) != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderSafeHTMLChildren(t *testing.T) {
	injectable := Raw("<span>injectable</span>")

	html := div(nil,
		H(El("p"), nil, "p"),
		injectable,
		"<p>sanitizeme</p>",
		H(El("footer"), nil, "feet"),
	)
	want := `<div><p>p</p><span>injectable</span>&lt;p&gt;sanitizeme&lt;/p&gt;<footer>feet</footer></div>`
	if string(html) != want {
		t.Errorf("got %q, want %q", html, want)
	}

	collection := []any{"a", injectable, "<p>sanitizeme</p>", "d"}
	html = div(nil, collection)
	want = `<div>a<span>injectable</span>&lt;p&gt;sanitizeme&lt;/p&gt;d</div>`
	if string(html) != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderNoDoubleEscaping(t *testing.T) {
	inner := H(El("p"), nil, "a & b")
	outer := div(nil, inner)
	twice := div(nil, outer)

	if outer != `<div><p>a &amp; b</p></div>` {
		t.Errorf("got %q", outer)
	}
	if twice != `<div><div><p>a &amp; b</p></div></div>` {
		t.Errorf("got %q", twice)
	}
}

func TestRenderNoCachedInjection(t *testing.T) {
	injectable := "<h1>test</h1>"

	a := div(nil, injectable)
	b := div(nil, H(El("h1"), nil, "test"))
	c := div(nil, injectable)

	if a != "<div>&lt;h1&gt;test&lt;/h1&gt;</div>" {
		t.Errorf("a = %q", a)
	}
	if b != "<div><h1>test</h1></div>" {
		t.Errorf("b = %q", b)
	}
	if c != a {
		t.Errorf("c = %q, want %q", c, a)
	}
}

func TestRenderFlattensChildren(t *testing.T) {
	tests := []struct {
		name     string
		children []any
		want     string
	}{
		{
			name:     "mixed nesting",
			children: []any{[]any{[]any{"a", "b"}}, "c", []any{"d", []any{"e"}}},
			want:     "<div>abcde</div>",
		},
		{
			name:     "elements between sequences",
			children: []any{[]any{[]any{"a", "b"}}, H(El("c"), nil, "d"), []any{"e", []any{"f"}, []any{[]any{"g"}}}},
			want:     "<div>ab<c>d</c>efg</div>",
		},
		{
			name:     "typed slices",
			children: []any{[]string{"a", "<b>"}, []SafeHTML{"<i></i>"}, []int{1, 2}},
			want:     "<div>a&lt;b&gt;<i></i>12</div>",
		},
		{
			name:     "arrays",
			children: []any{[2]string{"x", "y"}},
			want:     "<div>xy</div>",
		},
		{
			name:     "empty sequences",
			children: []any{[]any{}, []any{[]any{}}, "z"},
			want:     "<div>z</div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := div(nil, tt.children...)
			if string(html) != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderList(t *testing.T) {
	items := []string{"one", "two", "three"}

	lis := make([]any, 0, len(items))
	for _, item := range items {
		lis = append(lis, H(El("li"), nil, item))
	}

	html := div(Attrs{{Key: "class", Value: "foo"}},
		H(El("h1"), nil, "Hi!"),
		H(El("p"), nil, "Here is a list of ", len(items), " items:"),
		H(El("ul"), nil, lis),
	)
	want := `<div class="foo"><h1>Hi!</h1><p>Here is a list of 3 items:</p>` +
		`<ul><li>one</li><li>two</li><li>three</li></ul></div>`
	if string(html) != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderFalsyChildrenSkipped(t *testing.T) {
	var nilSlice []any
	var nilPtr *int

	html := div(nil, nil, false, "", 0, 0.0, math.NaN(), nilSlice, nilPtr, SafeHTML(""), "kept")
	if html != "<div>kept</div>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderLiterals(t *testing.T) {
	tests := []struct {
		name     string
		children []any
		want     string
	}{
		{name: "blank strings", children: []any{" ", " and also ", "\n\n\n   \t\t\t"}, want: "<div>  and also \n\n\n   \t\t\t</div>"},
		{name: "numbers", children: []any{63452, H(El("span"), nil, "num: ", 12385), H(El("p"), nil, -882, ", ", 942)}, want: "<div>63452<span>num: 12385</span><p>-882, 942</p></div>"},
		{name: "infinities", children: []any{math.Inf(1), "+", math.Inf(-1)}, want: "<div>Infinity+-Infinity</div>"},
		{name: "very big number", children: []any{5463454363452342352665745632523423423.0}, want: "<div>5.463454363452342e+36</div>"},
		{name: "true", children: []any{true, " love"}, want: "<div>true love</div>"},
		{name: "object", children: []any{"object? ", struct{}{}, " object"}, want: "<div>object? [object] object</div>"},
		{name: "stringer", children: []any{"instrument: ", instrument{}}, want: "<div>instrument: ukulele</div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := div(nil, tt.children...)
			if string(html) != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderVoidElements(t *testing.T) {
	var children []any
	for _, tag := range VoidElements() {
		children = append(children, H(El(tag), nil, "ignored", H(El("b"), nil)))
	}

	html := div(nil, children...)
	want := `<div><area><base><br><col><command><embed><hr><img><input><keygen>` +
		`<link><meta><param><source><track><wbr></div>`
	if string(html) != want {
		t.Errorf("got %q, want %q", html, want)
	}

	if got := H(El("br"), nil, "ignored"); got != "<br>" {
		t.Errorf("got %q, want %q", got, "<br>")
	}
	if got := H(El("img"), Attrs{{Key: "src", Value: "/a.png"}, DangerouslySetInnerHTML("<x>")}); got != `<img src="/a.png">` {
		t.Errorf("got %q", got)
	}
}

func TestRenderExpandsEmptyElements(t *testing.T) {
	html := div(nil, div(nil), H(El("span"), nil), H(El("p"), nil))
	if html != "<div><div></div><span></span><p></p></div>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderInnerHTML(t *testing.T) {
	html := div(Attrs{DangerouslySetInnerHTML("<span>Injected HTML</span>")}, "overwritten")
	if html != "<div><span>Injected HTML</span></div>" {
		t.Errorf("got %q", html)
	}

	html = div(Attrs{{Key: "id", Value: "a"}, {Key: InnerHTMLKey, Value: &InnerHTML{HTML: "<b>x</b>"}}}, "overwritten")
	if html != `<div id="a"><b>x</b></div>` {
		t.Errorf("got %q", html)
	}

	html = div(Attrs{{Key: InnerHTMLKey, Value: InnerHTML{}}}, "overwritten")
	if html != "<div></div>" {
		t.Errorf("empty inner html should still discard children, got %q", html)
	}
}

func TestRenderFragments(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
	}{
		{name: "zero tag", tag: Tag{}},
		{name: "fragment", tag: Fragment},
		{name: "empty element name", tag: El("")},
		{name: "nil component", tag: Func(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := H(tt.tag, nil, "foo", "bar", "baz"); got != "foobarbaz" {
				t.Errorf("got %q", got)
			}

			got := H(tt.tag, nil, H(El("p"), nil, "foo"), H(El("em"), nil, "bar"), div(Attrs{{Key: "class", Value: "qqqqqq"}}, "baz"))
			want := `<p>foo</p><em>bar</em><div class="qqqqqq">baz</div>`
			if got != SafeHTML(want) {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	line := func(class string, y2 int) any {
		return H(El("line"), Attrs{{Key: "class", Value: class}, {Key: "y2", Value: y2}})
	}

	html := H(El("svg"), Attrs{{Key: "viewBox", Value: "0 0 100 100"}},
		H(El("g"), Attrs{{Key: "transform", Value: "translate(50, 50)"}},
			H(El("circle"), Attrs{{Key: "class", Value: "clock-face"}, {Key: "r", Value: 48}}),
			line("millisecond", -44),
			line("hour", -22),
		),
	)
	want := `<svg viewBox="0 0 100 100"><g transform="translate(50, 50)">` +
		`<circle class="clock-face" r="48"></circle>` +
		`<line class="millisecond" y2="-44"></line><line class="hour" y2="-22"></line></g></svg>`
	if html != SafeHTML(want) {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderComponent(t *testing.T) {
	var got Props
	calls := 0
	Item := func(p Props) any {
		calls++
		got = p
		return H(El("li"), nil, p.Get("item"), p.Children)
	}

	attrs := Attrs{{Key: "item", Value: "1"}}
	html := H(Func(Item), attrs, "child-text")

	if calls != 1 {
		t.Fatalf("component called %d times, want 1", calls)
	}
	if html != "<li>1child-text</li>" {
		t.Errorf("got %q", html)
	}
	if v := got.Get("item"); v != "1" {
		t.Errorf("props item = %v", v)
	}
	if len(got.Children) != 1 || got.Children[0] != "child-text" {
		t.Errorf("props children = %#v", got.Children)
	}
	if !got.Has("item") || got.Has("children") {
		t.Errorf("unexpected props %#v", got.Attrs)
	}

	// The caller's attributes are copied, not shared.
	got.Attrs[0].Value = "changed"
	if attrs[0].Value != "1" {
		t.Errorf("component props alias caller attrs")
	}
}

func TestRenderComponentResultUnmodified(t *testing.T) {
	raw := Raw("<li>as-is & unescaped</li>")
	Item := func(Props) any { return raw }

	if got := H(Func(Item), nil); got != raw {
		t.Errorf("got %q, want %q", got, raw)
	}
}

func TestRenderComponentWithoutChildren(t *testing.T) {
	var got Props
	Item := func(p Props) any {
		got = p
		return nil
	}

	H(Func(Item), Attrs{{Key: "item", Value: "1"}})

	if got.Children == nil {
		t.Fatal("props children is nil, want an empty slice")
	}
	if len(got.Children) != 0 {
		t.Errorf("props children = %#v, want empty", got.Children)
	}
}

func TestRenderComponentChildrenNotFlattened(t *testing.T) {
	var children []any
	Item := func(p Props) any {
		children = p.Children
		return nil
	}

	nested := []any{"a", []any{"b"}}
	H(Func(Item), nil, nested, "c")

	if len(children) != 2 {
		t.Fatalf("children = %#v, want 2 entries", children)
	}
	if _, ok := children[0].([]any); !ok {
		t.Errorf("first child should still be a slice, got %#v", children[0])
	}
}

func TestRenderComponentReturningSequence(t *testing.T) {
	Pair := func(p Props) any {
		return []any{H(El("dt"), nil, p.Get("term")), H(El("dd"), nil, p.Children)}
	}

	html := H(El("dl"), nil, H(Func(Pair), Attrs{{Key: "term", Value: "<go>"}}, "a language"))
	want := "<dl><dt>&lt;go&gt;</dt><dd>a language</dd></dl>"
	if html != SafeHTML(want) {
		t.Errorf("got %q, want %q", html, want)
	}

	Plain := func(Props) any { return "<raw>" }
	if got := H(Func(Plain), nil); got != "&lt;raw&gt;" {
		t.Errorf("non-SafeHTML component result should be escaped, got %q", got)
	}
}

func TestRenderComponentReversingChildren(t *testing.T) {
	Item := func(p Props) any {
		reversed := make([]any, 0, len(p.Children))
		for i := len(p.Children) - 1; i >= 0; i-- {
			reversed = append(reversed, p.Children[i])
		}
		return H(El("li"), nil, H(El("h4"), nil), reversed)
	}

	var items []any
	for _, item := range []string{"one", "two"} {
		items = append(items, H(Func(Item), nil,
			div(nil),
			H(El("span"), nil, item, "!"),
			H(El("p"), nil),
		))
	}

	html := H(El("ul"), nil, items)
	want := `<ul><li><h4></h4><p></p><span>one!</span><div></div></li>` +
		`<li><h4></h4><p></p><span>two!</span><div></div></li></ul>`
	if html != SafeHTML(want) {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderDepthLimit(t *testing.T) {
	renderer := NewRenderer(RendererConfig{MaxDepth: 3})

	if _, err := renderer.Render(El("div"), nil, []any{[]any{[]any{"ok"}}}); err != nil {
		t.Fatalf("depth 3 should render, got %v", err)
	}

	_, err := renderer.Render(El("div"), nil, []any{[]any{[]any{[]any{"too deep"}}}})
	if !errors.Is(err, ErrRecursionLimitExceeded) {
		t.Fatalf("expected ErrRecursionLimitExceeded, got %v", err)
	}

	var depthErr *DepthError
	if !errors.As(err, &depthErr) {
		t.Fatalf("expected *DepthError, got %T", err)
	}
	if depthErr.Tag != "div" || depthErr.Limit != 3 {
		t.Errorf("unexpected error fields: %+v", depthErr)
	}
}

func TestRenderCyclicChildren(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	cycle := make([]any, 2)
	cycle[0] = "x"
	cycle[1] = cycle

	_, err := renderer.Render(Fragment, nil, cycle)
	if !errors.Is(err, ErrRecursionLimitExceeded) {
		t.Fatalf("expected ErrRecursionLimitExceeded, got %v", err)
	}
	if !strings.Contains(err.Error(), "<>") {
		t.Errorf("fragment should be named in the error, got %q", err)
	}
}

func TestHPanicsOnDepthLimit(t *testing.T) {
	cycle := make([]any, 1)
	cycle[0] = cycle

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrRecursionLimitExceeded) {
			t.Errorf("expected panic with ErrRecursionLimitExceeded, got %v", r)
		}
	}()
	H(El("div"), nil, cycle)
}

func TestRendererDefaults(t *testing.T) {
	if got := NewRenderer(RendererConfig{}).MaxDepth(); got != DefaultMaxDepth {
		t.Errorf("MaxDepth() = %d, want %d", got, DefaultMaxDepth)
	}
}

func TestRenderConcurrent(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	want := `<ul><li>&lt;a&gt;</li><li>b</li></ul>`

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				html, err := renderer.Render(El("ul"), nil, []any{H(El("li"), nil, "<a>"), H(El("li"), nil, "b")})
				if err != nil || string(html) != want {
					t.Errorf("got %q, %v", html, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestTagString(t *testing.T) {
	if El("div").String() != "div" || Fragment.String() != "<>" || Func(func(Props) any { return nil }).String() != "<component>" {
		t.Error("unexpected Tag.String output")
	}
	if KindElement.String() != "Element" || TagKind(9).String() != "Unknown" {
		t.Error("unexpected TagKind.String output")
	}
}
