package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fwojciec/promptline"
	"github.com/fwojciec/promptline/directory"
	"github.com/fwojciec/promptline/git"
	"github.com/fwojciec/promptline/hostname"
	"github.com/fwojciec/promptline/lipgloss"
	"github.com/fwojciec/promptline/toml"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidKey is returned when a segment key is not of the form module.field.
var ErrInvalidKey = errors.New("key must be of the form module.field")

// ErrKeyNotFound is returned when a segment key is absent from the configuration.
var ErrKeyNotFound = errors.New("key not found in configuration")

// App encapsulates the application logic for testing.
type App struct {
	ConfigPath string
	Loader     promptline.ConfigLoader
	Renderer   promptline.Renderer
	Modules    promptline.Modules
	Stdout     io.Writer
	Logger     zerolog.Logger
}

// Prompt renders every module in order and writes the result to Stdout.
func (a *App) Prompt(ctx context.Context) error {
	cfg, err := a.Loader.Load(a.ConfigPath)
	if err != nil {
		return err
	}

	segs, err := a.segments(ctx, cfg)
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.Stdout, promptline.RenderAll(a.Renderer, segs))
	return err
}

// segments evaluates modules concurrently and returns their segments in module order.
func (a *App) segments(ctx context.Context, cfg promptline.Config) ([]promptline.Segment, error) {
	results := make([][]promptline.Segment, len(a.Modules))

	g, ctx := errgroup.WithContext(ctx)
	for i, m := range a.Modules {
		g.Go(func() error {
			segs, err := m.Segments(ctx, cfg.Module(m.Name()))
			if err != nil {
				return fmt.Errorf("module %s: %w", m.Name(), err)
			}
			if segs == nil {
				a.Logger.Debug().Str("module", m.Name()).Msg("module hidden")
			}
			results[i] = segs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []promptline.Segment
	for _, segs := range results {
		all = append(all, segs...)
	}
	return all, nil
}

// Check prints the normalized form of each style specification. Specifications
// that resolve to no style are reported as "none".
func (a *App) Check(specs []string) error {
	for _, spec := range specs {
		var normalized string
		switch style := promptline.ParseStyle(spec); {
		case style == nil:
			normalized = "none"
		case *style == (promptline.Style{}):
			normalized = "plain"
		default:
			normalized = style.String()
		}
		if _, err := fmt.Fprintf(a.Stdout, "%q => %s\n", spec, normalized); err != nil {
			return err
		}
	}
	return nil
}

// Segment decodes the segment configured at key, a dotted module.field path,
// and writes it rendered to Stdout.
func (a *App) Segment(key string) error {
	module, field, ok := cutLast(key, ".")
	if !ok || module == "" || field == "" {
		return fmt.Errorf("%q: %w", key, ErrInvalidKey)
	}
	if _, err := a.Modules.ByName(module); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	cfg, err := a.Loader.Load(a.ConfigPath)
	if err != nil {
		return err
	}

	seg, found, err := cfg.Module(module).Segment(field)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s: %w", key, ErrKeyNotFound)
	}
	if seg.Style == nil {
		a.Logger.Debug().Str("key", key).Msg("segment has no style")
	}
	_, err = fmt.Fprintln(a.Stdout, a.Renderer.Render(seg))
	return err
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}

// colorProfile maps the --color flag to a forced profile. It reports false for
// "auto", which leaves detection to the renderer.
func colorProfile(mode string) (termenv.Profile, bool, error) {
	switch mode {
	case "auto", "":
		return 0, false, nil
	case "always":
		return termenv.TrueColor, true, nil
	case "never":
		return termenv.Ascii, true, nil
	default:
		return 0, false, fmt.Errorf("invalid --color %q: want auto, always or never", mode)
	}
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger(), nil
}

type options struct {
	configPath string
	logLevel   string
	color      string
}

// newApp wires the production dependencies.
func newApp(opts options) (*App, error) {
	logger, err := newLogger(os.Stderr, opts.logLevel)
	if err != nil {
		return nil, err
	}

	var rendererOpts []lipgloss.RendererOption
	profile, forced, err := colorProfile(opts.color)
	if err != nil {
		return nil, err
	}
	if forced {
		rendererOpts = append(rendererOpts, lipgloss.WithProfile(profile))
	}

	return &App{
		ConfigPath: opts.configPath,
		Loader:     toml.NewLoader(logger.With().Str("component", "config").Logger()),
		Renderer:   lipgloss.NewRenderer(os.Stdout, rendererOpts...),
		Modules: promptline.Modules{
			hostname.NewModule(logger.With().Str("module", hostname.Name).Logger()),
			directory.NewModule(logger.With().Str("module", directory.Name).Logger()),
			git.NewModule(logger.With().Str("module", git.Name).Logger(), git.NewRunner()),
		},
		Stdout: os.Stdout,
		Logger: logger,
	}, nil
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "promptline",
		Short:         "Render a styled shell prompt",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", toml.DefaultPath(), "path to the configuration file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.color, "color", "auto", "color output: auto, always or never")

	root.AddCommand(&cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt for the current environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}
			return app.Prompt(cmd.Context())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "check STYLE...",
		Short: "Show how style specifications are interpreted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}
			return app.Check(args)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "segment MODULE.FIELD",
		Short: "Render a single configured segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}
			return app.Segment(args[0])
		},
	})

	return root
}

func main() {
	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
