package core

import (
	"context"
	"errors"
	"time"

	"github.com/JonMunkholm/roster/internal/config"
	"github.com/JonMunkholm/roster/internal/logging"
	"github.com/JonMunkholm/roster/internal/metrics"
	"github.com/JonMunkholm/roster/internal/report"
)

// Summary describes the outcome of one run.
type Summary struct {
	RunID    string  `json:"run_id"`
	Source   string  `json:"source"`
	Output   string  `json:"output,omitempty"`
	Total    int     `json:"total"`
	InPerson int     `json:"in_person"`
	Remote   int     `json:"remote"`
	Dropped  int     `json:"dropped"`
	Replaced int     `json:"replaced"`
	Columns  Columns `json:"columns"`
}

// Service runs the attendee pipeline with one configuration.
// It holds no state between runs.
type Service struct {
	cfg     *config.Config
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics records run metrics on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a service for cfg.
func NewService(cfg *config.Config, opts ...Option) *Service {
	s := &Service{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the configuration the service runs with.
func (s *Service) Config() *config.Config {
	return s.cfg
}

// Build runs load, deduplicate, classify and sort, and returns the report
// ready to render. Nothing is written.
func (s *Service) Build(ctx context.Context) (report.Report, *Summary, error) {
	ctx, runID := logging.WithRunID(ctx)
	start := time.Now()
	defer s.metrics.ObserveRun(start)

	delim, err := s.cfg.Input.DelimiterRune()
	if err != nil {
		s.metrics.IncrementRun(metrics.ResultError)
		return report.Report{}, nil, err
	}

	ds, err := Load(ctx, s.cfg.Input.Path, LoadOptions{
		Encoding:  s.cfg.Input.Encoding,
		Delimiter: delim,
		Sheet:     s.cfg.Input.Sheet,
	})
	if err != nil {
		if errors.Is(err, ErrInputNotFound) {
			s.metrics.IncrementRun(metrics.ResultMissing)
		} else {
			s.metrics.IncrementRun(metrics.ResultError)
		}
		return report.Report{}, nil, err
	}

	reg, stats := BuildRegistry(ds.Records, ds.Columns)
	buckets := Partition(reg)

	now := s.now()
	if s.cfg.Report.UTC {
		now = now.UTC()
	}
	rep := report.New(s.cfg.Report.Title, toRows(buckets.InPerson), toRows(buckets.Remote), now)

	summary := &Summary{
		RunID:    runID,
		Source:   ds.Source,
		Total:    reg.Len(),
		InPerson: len(buckets.InPerson),
		Remote:   len(buckets.Remote),
		Dropped:  stats.Dropped,
		Replaced: stats.Replaced,
		Columns:  ds.Columns,
	}

	s.metrics.IncrementRun(metrics.ResultOK)
	s.metrics.SetListing(InPerson.String(), summary.InPerson)
	s.metrics.SetListing(Remote.String(), summary.Remote)
	s.metrics.SetDropped(summary.Dropped)

	logging.FromContext(ctx).Info("attendees classified",
		"total", summary.Total,
		"in_person", summary.InPerson,
		"remote", summary.Remote,
		"dropped", summary.Dropped,
		"replaced", summary.Replaced,
	)

	return rep, summary, nil
}

// Generate builds the report and writes it to the configured output path,
// overwriting any previous page.
func (s *Service) Generate(ctx context.Context) (*Summary, error) {
	ctx, _ = logging.WithRunID(ctx)

	rep, summary, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	if err := report.WriteFile(ctx, s.cfg.Output.Path, rep); err != nil {
		return nil, err
	}
	summary.Output = s.cfg.Output.Path

	logging.FromContext(ctx).Info("report written", "path", s.cfg.Output.Path)
	return summary, nil
}

func toRows(attendees []Attendee) []report.Row {
	rows := make([]report.Row, len(attendees))
	for i, a := range attendees {
		rows[i] = report.Row{Name: a.Name, Institution: a.Institution}
	}
	return rows
}
