package el

import (
	"strings"

	"github.com/vango-dev/stringjsx/pkg/render"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// AttrOf creates an arbitrary attribute.
func AttrOf(key string, value any) Attr { return attr(key, value) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// ClassName sets the class attribute through its DOM property name.
func ClassName(classes ...string) Attr { return attr("className", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with StyleEl).
func StyleAttr(style string) Attr { return attr("style", style) }

// TitleAttr sets the title attribute (named to avoid conflict with Title).
func TitleAttr(title string) Attr { return attr("title", title) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key string, value any) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// Link and media attributes

func Href(url string) Attr { return attr("href", url) }
func Src(url string) Attr  { return attr("src", url) }
func Alt(text string) Attr { return attr("alt", text) }
func Rel(rel string) Attr  { return attr("rel", rel) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Form attributes

func Name(name string) Attr        { return attr("name", name) }
func Type(t string) Attr           { return attr("type", t) }
func Value(v any) Attr             { return attr("value", v) }
func Placeholder(text string) Attr { return attr("placeholder", text) }
func For(id string) Attr           { return attr("htmlFor", id) }
func Action(url string) Attr       { return attr("action", url) }
func Method(method string) Attr    { return attr("method", method) }
func TabIndex(index int) Attr      { return attr("tabindex", index) }
func Charset(charset string) Attr  { return attr("charset", charset) }
func Content(content string) Attr  { return attr("content", content) }
func Lang(lang string) Attr        { return attr("lang", lang) }
func ViewBox(viewBox string) Attr  { return attr("viewBox", viewBox) }

// Boolean attributes render as name="true" when set and are omitted
// otherwise.

func Disabled(on bool) Attr { return attr("disabled", on) }
func Checked(on bool) Attr  { return attr("checked", on) }
func Hidden(on bool) Attr   { return attr("hidden", on) }
func Required(on bool) Attr { return attr("required", on) }
func Selected(on bool) Attr { return attr("selected", on) }

// DangerouslySetInnerHTML replaces the element body with unescaped markup.
func DangerouslySetInnerHTML(html string) Attr {
	return render.DangerouslySetInnerHTML(html)
}
