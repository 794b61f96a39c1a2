package el

import "github.com/vango-dev/stringjsx/pkg/render"

// Type aliases for the render primitives used by the DSL.
type (
	SafeHTML  = render.SafeHTML
	Attr      = render.Attr
	Attrs     = render.Attrs
	Props     = render.Props
	Component = render.Component
)
