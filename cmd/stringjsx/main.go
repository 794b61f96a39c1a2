package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vango-dev/stringjsx/internal/config"
	"github.com/vango-dev/stringjsx/internal/errors"
	"github.com/vango-dev/stringjsx/internal/logging"
	"github.com/vango-dev/stringjsx/pkg/publish"
	"github.com/vango-dev/stringjsx/pkg/render"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what every command needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
	stderr io.Writer
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "stringjsx",
		Short: "Render JSX-style element trees to HTML strings",
		Long: `stringjsx renders element trees to escaped HTML.

Documents are JSON or YAML trees of {tag, attrs, children}. Text is
escaped, void elements are never closed, className and htmlFor become
class and for, and dangerouslySetInnerHTML embeds trusted markup.

  • render documents from files or stdin
  • publish pages to a directory or an S3 bucket
  • serve rendering over HTTP and WebSocket`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file (default: stringjsx.json or stringjsx.yaml in the working directory)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		renderCmd(a),
		serveCmd(a),
		benchCmd(a),
		initCmd(),
		versionCmd(),
	)

	return rootCmd
}

// setup loads config and builds the logger.
func (a *app) setup() error {
	if a.noColor || os.Getenv("NO_COLOR") != "" || !isTerminal(a.stderr) {
		errors.DisableColors()
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.New("E221").Wrap(err)
	}

	a.cfg = cfg
	a.logger = logging.NewWriter(a.stderr, level)
	return nil
}

// renderer builds a renderer from the loaded config.
func (a *app) renderer() *render.Renderer {
	return render.NewRenderer(render.RendererConfig{
		MaxDepth: a.cfg.Render.MaxDepth,
		Logger:   a.logger,
	})
}

// openStore opens the configured publish store. Disk stores resolve
// their directory against the config file.
func (a *app) openStore(ctx context.Context) (publish.Store, string, error) {
	pcfg := a.cfg.Publish
	if pcfg.Backend == "" {
		pcfg.Backend = publish.BackendDisk
	}
	if pcfg.Backend == publish.BackendDisk {
		pcfg.Dir = a.cfg.PublishDir()
	}
	store, err := publish.Open(ctx, pcfg)
	if err != nil {
		return nil, "", errors.New("E230").Wrap(err)
	}
	return store, pcfg.Backend, nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
