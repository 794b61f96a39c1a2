package el

import (
	"fmt"

	"github.com/vango-dev/stringjsx/pkg/render"
)

// Text escapes content. Plain strings passed as children are escaped
// anyway; Text is for building SafeHTML values up front.
func Text(content any) SafeHTML {
	return render.Text(content)
}

// Textf formats and escapes text.
func Textf(format string, args ...any) SafeHTML {
	return render.Text(fmt.Sprintf(format, args...))
}

// Raw embeds trusted markup without escaping.
func Raw(html string) SafeHTML {
	return render.Raw(html)
}

// Fragment renders children without a wrapping element.
func Fragment(children ...any) SafeHTML {
	return render.H(render.Fragment, nil, children...)
}

// Comp calls a pseudo-component. Args are split like element arguments:
// attributes become props, the rest become props.Children.
func Comp(c Component, args ...any) SafeHTML {
	var attrs Attrs
	children := make([]any, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			attrs = append(attrs, v)
		case Attrs:
			attrs = appendAttrs(attrs, v)
		case []Attr:
			attrs = appendAttrs(attrs, v)
		default:
			children = append(children, v)
		}
	}
	return render.H(render.Func(c), attrs, children...)
}

// If returns node when condition is true, nil otherwise.
// nil children render nothing.
func If(condition bool, node any) any {
	if condition {
		return node
	}
	return nil
}

// IfElse returns ifTrue or ifFalse depending on condition.
func IfElse(condition bool, ifTrue, ifFalse any) any {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When calls fn only when condition is true.
func When(condition bool, fn func() any) any {
	if condition {
		return fn()
	}
	return nil
}

// Range maps items to children.
func Range[T any](items []T, fn func(item T, index int) any) []any {
	out := make([]any, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i))
	}
	return out
}

// Repeat calls fn n times and collects the results.
func Repeat(n int, fn func(i int) any) []any {
	if n <= 0 {
		return nil
	}
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fn(i))
	}
	return out
}
