package el

import "github.com/vango-dev/stringjsx/pkg/render"

// createElement splits args into attributes and children and renders tag.
// Arguments can be: nil, Attr, Attrs, []Attr, or any child value.
func createElement(tag string, args []any) SafeHTML {
	var attrs Attrs
	children := make([]any, 0, len(args))

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue
		case Attr:
			if v.Key != "" {
				attrs = append(attrs, v)
			}
		case Attrs:
			attrs = appendAttrs(attrs, v)
		case []Attr:
			attrs = appendAttrs(attrs, v)
		default:
			children = append(children, v)
		}
	}

	return render.H(render.El(tag), attrs, children...)
}

func appendAttrs(attrs Attrs, more []Attr) Attrs {
	for _, attr := range more {
		if attr.Key != "" {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// Element renders an arbitrary tag, e.g. custom elements.
func Element(tag string, args ...any) SafeHTML {
	return createElement(tag, args)
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return render.IsVoidElement(tag)
}

// Document

func Html(args ...any) SafeHTML     { return createElement("html", args) }
func Head(args ...any) SafeHTML     { return createElement("head", args) }
func Body(args ...any) SafeHTML     { return createElement("body", args) }
func Title(args ...any) SafeHTML    { return createElement("title", args) }
func Meta(args ...any) SafeHTML     { return createElement("meta", args) }
func LinkEl(args ...any) SafeHTML   { return createElement("link", args) }
func Base(args ...any) SafeHTML     { return createElement("base", args) }
func StyleEl(args ...any) SafeHTML  { return createElement("style", args) }
func Script(args ...any) SafeHTML   { return createElement("script", args) }
func Noscript(args ...any) SafeHTML { return createElement("noscript", args) }

// Sections

func Header(args ...any) SafeHTML  { return createElement("header", args) }
func Footer(args ...any) SafeHTML  { return createElement("footer", args) }
func Main(args ...any) SafeHTML    { return createElement("main", args) }
func Nav(args ...any) SafeHTML     { return createElement("nav", args) }
func Section(args ...any) SafeHTML { return createElement("section", args) }
func Article(args ...any) SafeHTML { return createElement("article", args) }
func Aside(args ...any) SafeHTML   { return createElement("aside", args) }
func Address(args ...any) SafeHTML { return createElement("address", args) }
func H1(args ...any) SafeHTML      { return createElement("h1", args) }
func H2(args ...any) SafeHTML      { return createElement("h2", args) }
func H3(args ...any) SafeHTML      { return createElement("h3", args) }
func H4(args ...any) SafeHTML      { return createElement("h4", args) }
func H5(args ...any) SafeHTML      { return createElement("h5", args) }
func H6(args ...any) SafeHTML      { return createElement("h6", args) }

// Grouping

func Div(args ...any) SafeHTML        { return createElement("div", args) }
func P(args ...any) SafeHTML          { return createElement("p", args) }
func Pre(args ...any) SafeHTML        { return createElement("pre", args) }
func Blockquote(args ...any) SafeHTML { return createElement("blockquote", args) }
func Hr(args ...any) SafeHTML         { return createElement("hr", args) }
func Ul(args ...any) SafeHTML         { return createElement("ul", args) }
func Ol(args ...any) SafeHTML         { return createElement("ol", args) }
func Li(args ...any) SafeHTML         { return createElement("li", args) }
func Dl(args ...any) SafeHTML         { return createElement("dl", args) }
func Dt(args ...any) SafeHTML         { return createElement("dt", args) }
func Dd(args ...any) SafeHTML         { return createElement("dd", args) }
func Figure(args ...any) SafeHTML     { return createElement("figure", args) }
func Figcaption(args ...any) SafeHTML { return createElement("figcaption", args) }

// Text

func A(args ...any) SafeHTML      { return createElement("a", args) }
func Span(args ...any) SafeHTML   { return createElement("span", args) }
func Em(args ...any) SafeHTML     { return createElement("em", args) }
func Strong(args ...any) SafeHTML { return createElement("strong", args) }
func Small(args ...any) SafeHTML  { return createElement("small", args) }
func Code(args ...any) SafeHTML   { return createElement("code", args) }
func Kbd(args ...any) SafeHTML    { return createElement("kbd", args) }
func Mark(args ...any) SafeHTML   { return createElement("mark", args) }
func B(args ...any) SafeHTML      { return createElement("b", args) }
func I(args ...any) SafeHTML      { return createElement("i", args) }
func U(args ...any) SafeHTML      { return createElement("u", args) }
func S(args ...any) SafeHTML      { return createElement("s", args) }
func Sub(args ...any) SafeHTML    { return createElement("sub", args) }
func Sup(args ...any) SafeHTML    { return createElement("sup", args) }
func Time(args ...any) SafeHTML   { return createElement("time", args) }
func Abbr(args ...any) SafeHTML   { return createElement("abbr", args) }
func Cite(args ...any) SafeHTML   { return createElement("cite", args) }
func Q(args ...any) SafeHTML      { return createElement("q", args) }
func Br(args ...any) SafeHTML     { return createElement("br", args) }
func Wbr(args ...any) SafeHTML    { return createElement("wbr", args) }

// Embedded

func Img(args ...any) SafeHTML     { return createElement("img", args) }
func Picture(args ...any) SafeHTML { return createElement("picture", args) }
func Source(args ...any) SafeHTML  { return createElement("source", args) }
func Video(args ...any) SafeHTML   { return createElement("video", args) }
func Audio(args ...any) SafeHTML   { return createElement("audio", args) }
func Track(args ...any) SafeHTML   { return createElement("track", args) }
func Iframe(args ...any) SafeHTML  { return createElement("iframe", args) }
func Embed(args ...any) SafeHTML   { return createElement("embed", args) }
func Object(args ...any) SafeHTML  { return createElement("object", args) }
func Param(args ...any) SafeHTML   { return createElement("param", args) }
func Canvas(args ...any) SafeHTML  { return createElement("canvas", args) }
func Area(args ...any) SafeHTML    { return createElement("area", args) }
func MapEl(args ...any) SafeHTML   { return createElement("map", args) }

// Tables

func Table(args ...any) SafeHTML    { return createElement("table", args) }
func Caption(args ...any) SafeHTML  { return createElement("caption", args) }
func Colgroup(args ...any) SafeHTML { return createElement("colgroup", args) }
func Col(args ...any) SafeHTML      { return createElement("col", args) }
func Thead(args ...any) SafeHTML    { return createElement("thead", args) }
func Tbody(args ...any) SafeHTML    { return createElement("tbody", args) }
func Tfoot(args ...any) SafeHTML    { return createElement("tfoot", args) }
func Tr(args ...any) SafeHTML       { return createElement("tr", args) }
func Th(args ...any) SafeHTML       { return createElement("th", args) }
func Td(args ...any) SafeHTML       { return createElement("td", args) }

// Forms

func Form(args ...any) SafeHTML     { return createElement("form", args) }
func Label(args ...any) SafeHTML    { return createElement("label", args) }
func Input(args ...any) SafeHTML    { return createElement("input", args) }
func Button(args ...any) SafeHTML   { return createElement("button", args) }
func Select(args ...any) SafeHTML   { return createElement("select", args) }
func Option(args ...any) SafeHTML   { return createElement("option", args) }
func Optgroup(args ...any) SafeHTML { return createElement("optgroup", args) }
func Textarea(args ...any) SafeHTML { return createElement("textarea", args) }
func Fieldset(args ...any) SafeHTML { return createElement("fieldset", args) }
func Legend(args ...any) SafeHTML   { return createElement("legend", args) }
func Output(args ...any) SafeHTML   { return createElement("output", args) }
func Progress(args ...any) SafeHTML { return createElement("progress", args) }
func Meter(args ...any) SafeHTML    { return createElement("meter", args) }
func Keygen(args ...any) SafeHTML   { return createElement("keygen", args) }
func Command(args ...any) SafeHTML  { return createElement("command", args) }

// Interactive

func Details(args ...any) SafeHTML  { return createElement("details", args) }
func Summary(args ...any) SafeHTML  { return createElement("summary", args) }
func Dialog(args ...any) SafeHTML   { return createElement("dialog", args) }
func Template(args ...any) SafeHTML { return createElement("template", args) }

// SVG

func Svg(args ...any) SafeHTML      { return createElement("svg", args) }
func G(args ...any) SafeHTML        { return createElement("g", args) }
func Path(args ...any) SafeHTML     { return createElement("path", args) }
func Circle(args ...any) SafeHTML   { return createElement("circle", args) }
func Rect(args ...any) SafeHTML     { return createElement("rect", args) }
func Line(args ...any) SafeHTML     { return createElement("line", args) }
func Polyline(args ...any) SafeHTML { return createElement("polyline", args) }
func Polygon(args ...any) SafeHTML  { return createElement("polygon", args) }
func TextEl(args ...any) SafeHTML   { return createElement("text", args) }
