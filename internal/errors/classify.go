package errors

import (
	stderrors "errors"

	"github.com/vango-dev/stringjsx/pkg/publish"
	"github.com/vango-dev/stringjsx/pkg/render"
	"github.com/vango-dev/stringjsx/pkg/tree"
)

// Classify maps a failure from parsing, rendering or publishing to a coded
// Error. file names the document for locations; it may be empty.
func Classify(err error, file string) *Error {
	if err == nil {
		return nil
	}

	var coded *Error
	if stderrors.As(err, &coded) {
		return coded
	}

	var docErr *tree.DocumentError
	if stderrors.As(err, &docErr) {
		e := New(documentCode(docErr.Kind)).Wrap(err)
		if docErr.Line > 0 {
			e.WithLocation(file, docErr.Line, docErr.Column)
		}
		return e
	}

	switch {
	case stderrors.Is(err, render.ErrRecursionLimitExceeded):
		return New("E201").Wrap(err)
	case stderrors.Is(err, publish.ErrInvalidKey):
		return New("E231").Wrap(err)
	case stderrors.Is(err, publish.ErrPublish), stderrors.Is(err, publish.ErrTooLarge):
		return New("E230").Wrap(err)
	}
	return New("E200").Wrap(err)
}

func documentCode(kind error) string {
	switch kind {
	case tree.ErrSyntax:
		return "E210"
	case tree.ErrUnknownComponent:
		return "E211"
	case render.ErrRecursionLimitExceeded:
		return "E201"
	default:
		return "E212"
	}
}
