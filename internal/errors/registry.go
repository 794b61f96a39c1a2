package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	DocURL     string
}

const docBase = "https://github.com/vango-dev/stringjsx/blob/main/docs/errors.md#"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Render errors (E200-E209)
	"E200": {
		Category: CategoryRender,
		Message:  "Render failed",
		Detail:   "The renderer could not produce markup for the input.",
		DocURL:   docBase + "e200",
	},
	"E201": {
		Category:   CategoryRender,
		Message:    "Recursion limit exceeded",
		Detail:     "Children nest deeper than the configured limit. Nested sequences count as one level each, so a sequence that contains itself never finishes.",
		Suggestion: "Flatten the children or raise render.maxDepth in stringjsx.yaml",
		DocURL:     docBase + "e201",
	},

	// Document errors (E210-E219)
	"E210": {
		Category:   CategoryDocument,
		Message:    "Document syntax error",
		Detail:     "The document is neither valid JSON nor valid YAML.",
		Suggestion: "Check for unbalanced brackets and mixed tabs in indentation",
		DocURL:     docBase + "e210",
	},
	"E211": {
		Category:   CategoryDocument,
		Message:    "Unknown component",
		Detail:     "Capitalized tags name components, and this one is not registered.",
		Suggestion: "Use a lower-case tag for a plain element or register the component",
		DocURL:     docBase + "e211",
	},
	"E212": {
		Category: CategoryDocument,
		Message:  "Invalid document",
		Detail:   "Elements are mappings with the keys tag, attrs and children. attrs must be a mapping and dangerouslySetInnerHTML must hold an __html key.",
		DocURL:   docBase + "e212",
	},
	"E213": {
		Category:   CategoryDocument,
		Message:    "Document too large",
		Detail:     "The request body is larger than server.maxBodyBytes.",
		Suggestion: "Split the document or raise server.maxBodyBytes",
		DocURL:     docBase + "e213",
	},

	// Config errors (E220-E229)
	"E220": {
		Category: CategoryConfig,
		Message:  "Config load failed",
		Detail:   "stringjsx.json or stringjsx.yaml could not be read or parsed.",
		DocURL:   docBase + "e220",
	},
	"E221": {
		Category: CategoryConfig,
		Message:  "Invalid config",
		Detail:   "A config value is out of range or a required field is missing.",
		DocURL:   docBase + "e221",
	},

	// Publish errors (E230-E239)
	"E230": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "The rendered page could not be written to the publish store.",
		DocURL:   docBase + "e230",
	},
	"E231": {
		Category:   CategoryPublish,
		Message:    "Invalid publish key",
		Detail:     "Keys are relative paths without '..' segments.",
		Suggestion: "Use a name such as blog/post.html",
		DocURL:     docBase + "e231",
	},

	// CLI errors (E240-E249)
	"E240": {
		Category: CategoryCLI,
		Message:  "Invalid input",
		Detail:   "The command could not read its input.",
		DocURL:   docBase + "e240",
	},
	"E241": {
		Category: CategoryCLI,
		Message:  "Output failed",
		Detail:   "The rendered markup could not be written.",
		DocURL:   docBase + "e241",
	},
}

// GetAllCodes returns all registered codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for a code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds or replaces a code. Call it from init only.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
