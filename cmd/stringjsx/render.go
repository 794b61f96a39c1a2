package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/stringjsx/internal/errors"
	"github.com/vango-dev/stringjsx/pkg/render"
	"github.com/vango-dev/stringjsx/pkg/tree"
)

type renderOptions struct {
	out        string
	publishKey string
	page       bool
	title      string
	lang       string
}

func renderCmd(a *app) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a document to HTML",
		Long: `Render a JSON or YAML document to HTML.

The document is read from the named file, or from stdin when the
argument is "-" or missing. The markup goes to stdout unless --out
or --publish says otherwise.

Examples:
  stringjsx render page.yaml
  echo '{"tag": "p", "children": ["a < b"]}' | stringjsx render
  stringjsx render page.yaml --page --title Home --out index.html
  stringjsx render post.yaml --publish blog/post`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			return runRender(cmd, a, name, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the markup to a file")
	cmd.Flags().StringVarP(&opts.publishKey, "publish", "p", "", "Publish the markup under this key through the configured store")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Wrap the markup in a full HTML document")
	cmd.Flags().StringVar(&opts.title, "title", "", "Document title (with --page)")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "Document language (with --page, default en)")
	cmd.MarkFlagsMutuallyExclusive("out", "publish")

	return cmd
}

func runRender(cmd *cobra.Command, a *app, name string, opts renderOptions) error {
	data, err := readDocument(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}

	r := a.renderer()
	node, err := tree.Parse(data, tree.WithMaxDepth(r.MaxDepth()))
	if err != nil {
		return errors.Classify(err, name)
	}

	html, err := node.Eval(r, builtinComponents())
	if err != nil {
		return errors.Classify(err, name)
	}

	if opts.page {
		html, err = r.RenderPage(render.PageData{Body: html, Title: opts.title, Lang: opts.lang})
		if err != nil {
			return errors.Classify(err, name)
		}
	}

	switch {
	case opts.publishKey != "":
		store, _, err := a.openStore(cmd.Context())
		if err != nil {
			return err
		}
		location, err := store.Put(cmd.Context(), opts.publishKey, html)
		if err != nil {
			return errors.Classify(err, name)
		}
		a.logger.Info("published", "key", opts.publishKey, "location", location, "bytes", len(html))
		fmt.Fprintln(cmd.OutOrStdout(), location)

	case opts.out != "":
		if err := os.WriteFile(opts.out, []byte(html), 0644); err != nil {
			return errors.New("E241").Wrap(err)
		}
		a.logger.Debug("wrote", "path", opts.out, "bytes", len(html))

	default:
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), html); err != nil {
			return errors.New("E241").Wrap(err)
		}
	}
	return nil
}

// readDocument reads name, or stdin for "-".
func readDocument(stdin io.Reader, name string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, errors.New("E240").
			Wrap(err).
			WithDetail("Could not read the document " + name + ".")
	}
	return data, nil
}
