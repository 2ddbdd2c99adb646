package scenario

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"login-clean-starter/internal/pkg/clock"
	"login-clean-starter/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const stackLines = 12

type Result struct {
	Name     string
	Passed   bool
	Skipped  bool
	Messages []string
	Duration time.Duration
}

type Report struct {
	RunID   string
	Results []Result
}

func (r Report) Failed() bool {
	for _, res := range r.Results {
		if !res.Passed && !res.Skipped {
			return true
		}
	}
	return false
}

func (r Report) Count() (passed, failed, skipped int) {
	for _, res := range r.Results {
		switch {
		case res.Skipped:
			skipped++
		case res.Passed:
			passed++
		default:
			failed++
		}
	}
	return passed, failed, skipped
}

// Err returns nil when every scenario passed.
func (r Report) Err() error {
	var names []string
	for _, res := range r.Results {
		if !res.Passed && !res.Skipped {
			names = append(names, res.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return errs.Wrapf(errs.ErrScenarioFailed, "%s", strings.Join(names, ", "))
}

type Runner struct {
	scenarios     []Scenario
	setup         FixtureFactory
	out           io.Writer
	logger        *slog.Logger
	clock         clock.Clock
	stopOnFailure bool
}

type Option func(*Runner)

func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

func WithClock(c clock.Clock) Option {
	return func(r *Runner) { r.clock = c }
}

func WithStopOnFailure(stop bool) Option {
	return func(r *Runner) { r.stopOnFailure = stop }
}

func NewRunner(scenarios []Scenario, setup FixtureFactory, opts ...Option) *Runner {
	r := &Runner{
		scenarios: scenarios,
		setup:     setup,
		out:       os.Stdout,
		logger:    slog.Default(),
		clock:     clock.NewRealClock(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the scenarios in order, each against a fresh fixture, and
// writes a Running and a Passed/Failed line per scenario.
func (r *Runner) Run(ctx context.Context) Report {
	report := Report{RunID: uuid.NewString()}
	logger := r.logger.With(slog.String("run_id", report.RunID))

	stopped := false
	for _, sc := range r.scenarios {
		if stopped {
			logger.LogAttrs(ctx, slog.LevelDebug, "Scenario skipped", slog.String("scenario", sc.Name))
			report.Results = append(report.Results, Result{Name: sc.Name, Skipped: true})
			continue
		}

		res := r.runOne(ctx, sc)
		report.Results = append(report.Results, res)

		attrs := []slog.Attr{
			slog.String("scenario", sc.Name),
			slog.Bool("passed", res.Passed),
			slog.Duration("duration", res.Duration),
		}
		if res.Passed {
			logger.LogAttrs(ctx, slog.LevelDebug, "Scenario completed", attrs...)
			continue
		}

		attrs = append(attrs, slog.String("messages", strings.Join(res.Messages, "\n")))
		logger.LogAttrs(ctx, slog.LevelError, "Scenario failed", attrs...)
		if r.stopOnFailure {
			stopped = true
		}
	}

	passed, failed, skipped := report.Count()
	logger.Info("Scenario run finished", "passed", passed, "failed", failed, "skipped", skipped)

	return report
}

func (r *Runner) runOne(ctx context.Context, sc Scenario) Result {
	fmt.Fprintf(r.out, "### %s: Running...\n", sc.Name)

	start := r.clock.Now()
	rec := &recorder{}
	r.invoke(ctx, sc, rec)
	res := Result{
		Name:     sc.Name,
		Passed:   len(rec.messages) == 0,
		Messages: rec.messages,
		Duration: r.clock.Since(start),
	}

	if res.Passed {
		fmt.Fprintf(r.out, "### %s: Passed\n", sc.Name)
	} else {
		fmt.Fprintf(r.out, "### %s: Failed\n", sc.Name)
	}
	return res
}

func (r *Runner) invoke(ctx context.Context, sc Scenario, rec *recorder) {
	fixture := r.setup()
	defer fixture.release()

	defer func() {
		if p := recover(); p != nil {
			err := errs.Mark(errs.Newf("%v", p), errs.ErrScenarioPanicked)
			rec.messages = append(rec.messages, errs.ExtractStackLines(err, stackLines)...)
		}
	}()

	sc.Run(ctx, assert.New(rec), fixture)
}

// recorder collects assertion failures in place of a *testing.T.
type recorder struct {
	messages []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}
