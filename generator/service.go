package generator

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/viant/afs"
	"github.com/viant/camuuid/category"
	"github.com/viant/camuuid/internal/clock"
	"github.com/viant/camuuid/internal/idgen"
	"github.com/viant/camuuid/record"
	"github.com/viant/camuuid/tracing"
)

// ErrInvalidCount is returned when fewer than one identifier is requested.
var ErrInvalidCount = errors.New("generator: count must be a positive integer")

// Request describes a single run.
type Request struct {
	Count    int
	Category category.Category
	// Directory is a local path or afs URL holding the record files.
	Directory string
	// AllCategories checks collisions against every category's record files.
	AllCategories bool
}

// Result describes a successful run.
type Result struct {
	URL          string
	Identifiers  []string
	HistoryCount int
	Files        []string
}

// Service runs the generate, check and write pipeline.
type Service struct {
	fs        afs.Service
	now       clock.Func
	localTime bool
	newID     func() string
	listener  Listener
}

// Validate checks the request and the target directory without side effects.
func (s *Service) Validate(ctx context.Context, request *Request) error {
	if request == nil {
		return fmt.Errorf("request was nil")
	}
	if request.Count < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, request.Count)
	}
	if request.Category.IsZero() {
		return fmt.Errorf("%w: category was empty", category.ErrUnknown)
	}
	return record.CheckDirectory(ctx, s.fs, record.DirURL(request.Directory))
}

// Run issues request.Count new identifiers and stores them in a new record
// file. Nothing is written unless the batch is unique and disjoint from the
// identifiers already recorded.
func (s *Service) Run(ctx context.Context, request *Request) (result *Result, err error) {
	ctx, span := tracing.StartSpan(ctx, "generate_uuids")
	defer func() { tracing.EndSpan(span, err) }()

	if err = s.Validate(ctx, request); err != nil {
		return nil, err
	}
	span.WithAttributes(map[string]string{
		"category": request.Category.String(),
		"count":    strconv.Itoa(request.Count),
	})
	dirURL := record.DirURL(request.Directory)
	s.listener.Generating(request.Count, request.Category)

	_, generateSpan := tracing.StartSpan(ctx, "generate")
	batch := idgen.Batch(request.Count, s.newID)
	tracing.EndSpan(generateSpan, nil)

	if err = stage(ctx, "check.self", func(context.Context) error {
		return record.CheckBatch(batch)
	}); err != nil {
		return nil, err
	}

	categories := []category.Category{request.Category}
	if request.AllCategories {
		categories = category.All()
	}
	scanner := record.NewScanner(s.fs, s.listener)
	var history *record.History
	if err = stage(ctx, "scan", func(ctx context.Context) error {
		var scanErr error
		history, scanErr = scanner.Scan(ctx, dirURL, categories...)
		return scanErr
	}); err != nil {
		return nil, err
	}

	if err = stage(ctx, "check.collision", func(context.Context) error {
		return record.CheckCollisions(batch, history.Identifiers)
	}); err != nil {
		return nil, err
	}

	writer := record.NewWriter(s.fs, s.now, s.localTime)
	var fileURL string
	if err = stage(ctx, "write", func(ctx context.Context) error {
		var writeErr error
		fileURL, writeErr = writer.Write(ctx, dirURL, request.Category, batch)
		return writeErr
	}); err != nil {
		return nil, err
	}
	s.listener.Written(fileURL, len(batch))

	return &Result{
		URL:          fileURL,
		Identifiers:  batch,
		HistoryCount: len(history.Identifiers),
		Files:        history.Files,
	}, nil
}

func stage(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, span := tracing.StartSpan(ctx, name)
	err := fn(ctx)
	tracing.EndSpan(span, err)
	return err
}

// New creates a pipeline service.
func New(options ...Option) *Service {
	ret := &Service{}
	for _, opt := range options {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.newID == nil {
		ret.newID = idgen.New
	}
	if ret.listener == nil {
		ret.listener = NopListener
	}
	ret.now = clock.OrDefault(ret.now)
	return ret
}

// NewFromConfig creates a service honouring cfg. Options are applied after
// the configuration and take precedence.
func NewFromConfig(cfg *Config, options ...Option) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := append([]Option{WithLocalTime(cfg.LocalTime)}, options...)
	return New(opts...), nil
}
