package render

// voidElements never receive a body or a closing tag, whatever children
// are passed.
var voidElements = map[string]bool{
	"area":    true,
	"base":    true,
	"br":      true,
	"col":     true,
	"command": true,
	"embed":   true,
	"hr":      true,
	"img":     true,
	"input":   true,
	"keygen":  true,
	"link":    true,
	"meta":    true,
	"param":   true,
	"source":  true,
	"track":   true,
	"wbr":     true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// VoidElements returns the void tag names in alphabetical order.
func VoidElements() []string {
	return []string{
		"area", "base", "br", "col", "command", "embed", "hr", "img",
		"input", "keygen", "link", "meta", "param", "source", "track", "wbr",
	}
}

// attrNames maps DOM property names to the HTML attribute they render as.
var attrNames = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

// AttrName returns the HTML attribute name for a property key.
func AttrName(key string) (string, bool) {
	name, ok := attrNames[key]
	return name, ok
}
