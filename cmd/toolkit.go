package cmd

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/evgfitil/ucli/internal/config"
	"github.com/evgfitil/ucli/internal/field"
	"github.com/evgfitil/ucli/internal/logging"
	"github.com/evgfitil/ucli/internal/prompt"
	"github.com/evgfitil/ucli/internal/render"
	"github.com/evgfitil/ucli/internal/selection"
	"github.com/evgfitil/ucli/internal/session"
)

// Replaced in tests.
var (
	uiOut     io.Writer        = os.Stderr
	exitFunc  session.ExitFunc = os.Exit
	openInput                  = prompt.Open
	openEditor                 = prompt.OpenEditor
)

// toolkit wires the interactive components for one command run.
type toolkit struct {
	cfg      *config.Config
	log      zerolog.Logger
	out      *render.Renderer
	in       prompt.ReadCloser
	session  *session.Controller
	fields   *field.Collector
	edits    *field.Collector
	resolver *selection.Resolver
}

func newRenderer(cfg *config.Config, w io.Writer) *render.Renderer {
	out := render.New(w, cfg.Theme.ToTheme())
	if noColor {
		out.SetColorProfile(termenv.Ascii)
	}
	return out
}

func newToolkit() (*toolkit, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	log := logging.New(level, os.Stderr, logJSON)

	in, err := openInput(prompt.Options{
		Out:          uiOut,
		HistoryLimit: cfg.Prompt.HistoryLimit,
		Logger:       log,
	})
	if err != nil {
		return nil, err
	}

	out := newRenderer(cfg, uiOut)
	ctrl := session.New(in, out,
		session.WithLogger(log),
		session.WithExit(func(code int) {
			_ = in.Close()
			exitFunc(code)
		}),
	)

	// Editing a prefilled value uses the inline editor when a terminal is
	// reachable; otherwise it goes through the regular line reader.
	edits := field.New(in, out, log)
	if editor, err := openEditor(prompt.Options{Out: uiOut, Logger: log}); err == nil {
		edits = field.New(editor, out, log)
	} else {
		log.Debug().Err(err).Msg("inline editor unavailable")
	}

	return &toolkit{
		cfg:     cfg,
		log:     log,
		out:     out,
		in:      in,
		session: ctrl,
		fields:  field.New(in, out, log),
		edits:   edits,
		resolver: selection.NewResolver(in, out, ctrl,
			selection.WithDefaultMessage(cfg.Select.Message),
			selection.WithLogger(log),
		),
	}, nil
}

func (t *toolkit) Close() error {
	return t.in.Close()
}
