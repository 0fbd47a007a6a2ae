package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/osse101/DropLuck_Go/internal/logger"
	"github.com/osse101/DropLuck_Go/internal/simulation"
)

// LogReporter writes coordinator events as log lines.
type LogReporter struct {
	log *slog.Logger
}

// NewLogReporter logs through log, or the context logger when nil.
func NewLogReporter(log *slog.Logger) *LogReporter {
	return &LogReporter{log: log}
}

// Report implements simulation.Reporter.
func (r *LogReporter) Report(ctx context.Context, ev simulation.Event) {
	log := r.log
	if log == nil {
		log = logger.FromContext(ctx)
	}

	switch ev.Kind {
	case simulation.EventStarted:
		log.Info(LogMsgStarted, "mode", ev.Mode, "workers", ev.Workers, "streams", ev.StreamCount)
	case simulation.EventProgress:
		log.Info(LogMsgProgress, progressAttrs(ev)...)
	case simulation.EventNewBest:
		log.Debug(LogMsgNewBest, "luck", FormatLuck(bestLuck(ev)))
	case simulation.EventCompleted:
		log.Info(LogMsgCompleted, progressAttrs(ev)...)
	case simulation.EventFailed:
		log.Warn(LogMsgFailed, "error", ev.Err, "simulated", humanize.Comma(ev.StreamsSimulated()))
	}
}

func progressAttrs(ev simulation.Event) []any {
	attrs := []any{
		"simulated", humanize.Comma(ev.StreamsSimulated()),
		"rate", humanize.FormatFloat("#,###.", ev.Rate()) + "/s",
		"elapsed", ev.Elapsed.Round(time.Second).String(),
	}
	if ev.Best != nil {
		attrs = append(attrs, "luckiest", FormatLuck(ev.Best.Luck))
	}
	if ev.TargetCycles > 0 {
		attrs = append(attrs,
			"complete", fmt.Sprintf("%.2f%%", ev.Fraction()*100),
			"eta", ev.Remaining().Round(time.Second).String(),
		)
	}
	if ev.Threshold > 0 {
		attrs = append(attrs, "threshold", FormatLuck(ev.Threshold))
	}
	return attrs
}

func bestLuck(ev simulation.Event) float64 {
	if ev.Best == nil {
		return 1
	}
	return ev.Best.Luck
}

// FormatLuck renders a luck value as "1 in N" alongside the raw number.
func FormatLuck(luck float64) string {
	if luck <= 0 {
		return "0"
	}
	return fmt.Sprintf("%.6g (1 in %s)", luck, humanize.CommafWithDigits(1/luck, 0))
}
