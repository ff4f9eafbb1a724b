package main

import (
	"log/slog"

	"github.com/elizafairlady/circleprogress/internal/config"
	"github.com/elizafairlady/circleprogress/progress"
	"github.com/elizafairlady/circleprogress/widget"
)

// Model represents the application state.
type Model struct {
	Bars   []widget.CircleProgressBar
	Active int // bar receiving drags and keys
	Width  int // derived from resize
	Height int
	Last   progress.Outcome // outcome of the latest drag sample
	Quit   bool
}

// newModel builds the bars from cfg. Value changes are logged at debug.
func newModel(cfg *config.Config, log *slog.Logger) Model {
	m := Model{Bars: make([]widget.CircleProgressBar, len(cfg.Bars))}
	for i, bc := range cfg.Bars {
		m.Bars[i] = bc.Build()
		if bc.Progress != m.Bars[i].Progress() {
			log.Warn("progress clamped", "bar", i, "configured", bc.Progress, "max", m.Bars[i].Max())
		}
		m.Bars[i].OnChange(func(from, to int) {
			log.Debug("progress changed", "bar", i, "from", from, "to", to)
		})
	}
	return m
}
