package pipeline

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"SignalPipe/internal/calculator"
	"SignalPipe/internal/config"
	"SignalPipe/internal/dataset"
	"SignalPipe/internal/metrics"
	"SignalPipe/internal/output"
	"SignalPipe/internal/signal"
)

// fallbackVersion is reported in the error record when the failure happens
// before (or during) config loading. Once config.Load has succeeded the
// loaded version is used instead, even for later failures.
const fallbackVersion = "v1"

// Options holds the file paths for one pipeline run.
type Options struct {
	Input  string
	Config string
	Output string
}

// Pipeline sequences one batch run. All state is scoped to a single
// invocation; nothing outlives Run.
type Pipeline struct {
	opts Options
	log  zerolog.Logger

	// rng is seeded from the config immediately after it loads. No stage
	// draws from it today; it is reserved so any future randomized stage
	// stays deterministic per run.
	rng *rand.Rand
}

// New creates a Pipeline for the given paths.
func New(opts Options, log zerolog.Logger) *Pipeline {
	return &Pipeline{opts: opts, log: log}
}

// Run executes the batch pipeline end to end and returns the process exit
// code: 0 on success, 1 on any failure. Every failure is logged, converted
// into an error record at the output path, and is fatal to the run.
func (p *Pipeline) Run() int {
	version := fallbackVersion

	fail := func(err error) int {
		p.log.Error().Msgf("Pipeline failed: %s", err)
		if werr := output.Write(metrics.NewErrorRecord(version, err.Error()), p.opts.Output); werr != nil {
			p.log.Error().Msgf("Failed to write error output: %s", werr)
		}
		return 1
	}

	p.log.Info().Msg("Job started")
	start := time.Now()

	cfg, err := config.Load(p.opts.Config)
	if err != nil {
		return fail(err)
	}
	version = cfg.Version
	p.log.Info().Msgf("Config loaded: seed=%d, window=%d, version=%s",
		cfg.Seed, cfg.Window, cfg.Version)

	p.rng = rand.New(rand.NewSource(cfg.Seed))
	p.log.Info().Msgf("Random seed set to %d", cfg.Seed)

	table, err := dataset.Load(p.opts.Input)
	if err != nil {
		return fail(err)
	}
	p.log.Info().Msgf("Data loaded: %d rows", table.Len())

	rollingMean := calculator.RollingMean(table.Closes, cfg.Window)
	p.log.Info().Msgf("Rolling mean calculated (window=%d)", cfg.Window)

	signals := signal.Crossover(table.Closes, rollingMean)
	p.log.Info().Msgf("Signals generated: %d total", len(signals))

	elapsedMs := time.Since(start).Milliseconds()
	record := metrics.NewRecord(table.Len(), signals, version, cfg.Seed, elapsedMs)
	p.log.Info().Msgf("Metrics: rows_processed=%d, signal_rate=%.4f, latency_ms=%d",
		record.RowsProcessed, record.Value, record.LatencyMs)

	if err := output.Write(record, p.opts.Output); err != nil {
		return fail(err)
	}
	p.log.Info().Msg("Job completed successfully")
	return 0
}
