package render

// Doctype is prepended to every page rendered by RenderPage.
const Doctype = "<!DOCTYPE html>"

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the rendered page content.
	Body SafeHTML

	// Title is the page title.
	Title string

	// Meta contains meta tags for the page.
	Meta []MetaTag

	// Links contains link tags (stylesheets, favicon, etc.).
	Links []LinkTag

	// Scripts contains script tags appended to the body.
	Scripts []ScriptTag

	// Styles contains inline CSS, one <style> element each.
	Styles []string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Charset   string
	Name      string
	Property  string // OpenGraph
	HTTPEquiv string
	Content   string
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string
	Href        string
	Type        string
	Sizes       string
	CrossOrigin string
	Media       string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string
	Type   string
	Defer  bool
	Async  bool
	Inline string
}

// RenderPage renders a complete HTML document around page.Body.
// Styles and inline scripts are trusted and embedded unescaped.
func (r *Renderer) RenderPage(page PageData) (SafeHTML, error) {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	// node renders through r, keeping the first error.
	var err error
	node := func(tag string, attrs Attrs, children ...any) SafeHTML {
		if err != nil {
			return ""
		}
		var html SafeHTML
		html, err = r.Render(El(tag), attrs, children...)
		return html
	}

	head := []any{node("meta", Attrs{{Key: "charset", Value: "utf-8"}})}
	if page.Title != "" {
		head = append(head, node("title", nil, page.Title))
	}
	for _, meta := range page.Meta {
		head = append(head, node("meta", Attrs{
			{Key: "charset", Value: optional(meta.Charset)},
			{Key: "name", Value: optional(meta.Name)},
			{Key: "property", Value: optional(meta.Property)},
			{Key: "http-equiv", Value: optional(meta.HTTPEquiv)},
			{Key: "content", Value: optional(meta.Content)},
		}))
	}
	for _, link := range page.Links {
		head = append(head, node("link", Attrs{
			{Key: "rel", Value: optional(link.Rel)},
			{Key: "href", Value: optional(link.Href)},
			{Key: "type", Value: optional(link.Type)},
			{Key: "sizes", Value: optional(link.Sizes)},
			{Key: "crossorigin", Value: optional(link.CrossOrigin)},
			{Key: "media", Value: optional(link.Media)},
		}))
	}
	for _, css := range page.Styles {
		head = append(head, node("style", Attrs{DangerouslySetInnerHTML(css)}))
	}

	body := []any{page.Body}
	for _, script := range page.Scripts {
		attrs := Attrs{
			{Key: "src", Value: optional(script.Src)},
			{Key: "type", Value: optional(script.Type)},
			{Key: "defer", Value: script.Defer},
			{Key: "async", Value: script.Async},
		}
		if script.Inline != "" {
			attrs = append(attrs, DangerouslySetInnerHTML(script.Inline))
		}
		body = append(body, node("script", attrs))
	}

	html := node("html", Attrs{{Key: "lang", Value: lang}},
		node("head", nil, head...),
		node("body", nil, body...),
	)
	if err != nil {
		return "", err
	}
	return SafeHTML(Doctype) + html, nil
}

// optional turns an empty string into nil so the attribute is omitted.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
