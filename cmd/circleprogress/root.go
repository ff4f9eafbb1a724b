package main

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/elizafairlady/circleprogress/internal/config"
	"github.com/elizafairlady/circleprogress/internal/logging"
	ui "github.com/elizafairlady/circleprogress/libui"
)

var (
	cfgFile string
	verbose bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "circleprogress",
	Short: "Show draggable circular progress bars",
	Long: `circleprogress opens a window with one or more circular progress bars.
Drag around a ring to set its value; the drag stops at 0% and 100%
instead of wrapping around.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file (default: four demo bars)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every drag sample")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "also write logs to this file, rotated")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	log := logging.New(cfg.Log, cmd.ErrOrStderr())

	m := newModel(cfg, log)
	log.Info("starting", "bars", len(m.Bars))

	app := ui.App{
		Model:  m,
		Reduce: translateAndReduce(log),
		Draw:   Draw,
		Quit:   func(model any) bool { return model.(Model).Quit },
		Log:    log,
	}
	if err := ui.Run(app); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

// translateAndReduce translates raw ui.Event into semantic events,
// then calls the reducer. This glue lives outside libui.
func translateAndReduce(log *slog.Logger) ui.Reducer {
	return func(model any, ev ui.Event) any {
		m := model.(Model)
		app, ok := translate(m, ev)
		if !ok {
			return m
		}
		next := Reduce(m, app).(Model)
		if _, drag := app.Data.(DragTo); drag && next.dragging() {
			log.Debug("drag", "bar", next.Active, "outcome", next.Last, "progress", next.Bars[next.Active].Progress())
		}
		return next
	}
}

// translate maps a raw event to an app event.
func translate(m Model, ev ui.Event) (ui.Event, bool) {
	var data any
	switch ev.Kind {
	case "key":
		switch ev.Data.(ui.Key).Rune {
		case '+', '=':
			data = Step{ID: m.Active, Delta: 1}
		case '-', '_':
			data = Step{ID: m.Active, Delta: -1}
		case '\t':
			data = NextBar{}
		case 0x7f: // DEL
			data = Quit{}
		}

	case "mouse":
		mouse := ev.Data.(ui.Mouse)
		p := image.Pt(mouse.X, mouse.Y)
		switch {
		case mouse.ScrollY != 0:
			// Wheel up raises the bar under the pointer.
			if id, ok := HitBar(m.Bars, p); ok {
				data = Step{ID: id, Delta: -mouse.ScrollY}
			}
		case mouse.Pressed(ui.Button1):
			if id, ok := HitBar(m.Bars, p); ok {
				data = PressBar{ID: id, At: p}
			}
		case mouse.Held(ui.Button1):
			data = DragTo{At: p}
		case mouse.Released(ui.Button1):
			data = Release{}
		}

	case "resize":
		r := ev.Data.(ui.Resize)
		data = Relayout{Width: r.Width, Height: r.Height}
	}

	if data == nil {
		return ui.Event{}, false
	}
	return ui.Event{Kind: "app", Data: data}, true
}
