package inventory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"inventory-viewer/feature/inventory/mapping"
	"inventory-viewer/feature/inventory/models"
	"inventory-viewer/feature/inventory/normalize"
	"inventory-viewer/feature/inventory/store"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ErrNoMappingSource is returned by LoadMapping when no provider is configured.
var ErrNoMappingSource = errors.New("no mapping source configured")

// File is one uploaded or watched file.
type File struct {
	Name string
	Data []byte
}

// FileReport is the outcome of one file of a batch.
type FileReport struct {
	Name     string          `json:"name"`
	Category models.Category `json:"category,omitempty"`
	Added    int             `json:"added"`
	Rescued  bool            `json:"rescued,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// IngestReport is the outcome of a batch.
type IngestReport struct {
	Files  []FileReport `json:"files"`
	Counts store.Counts `json:"counts"`
}

// MappingReport is the outcome of a mapping build.
type MappingReport struct {
	Source  string              `json:"source,omitempty"`
	Build   mapping.BuildReport `json:"build"`
	Failed  map[string]string   `json:"failed,omitempty"`
	Ignored []string            `json:"ignored,omitempty"`
}

// Snapshot is a copy of the store contents.
type Snapshot struct {
	Characters []models.Character `json:"characters"`
	Weapons    []models.Weapon    `json:"weapons"`
	Echoes     []models.Echo      `json:"echoes"`
	Items      []models.Item      `json:"items"`
	Counts     store.Counts       `json:"counts"`
}

// Service owns the store and the mapping registry.
// Every mutation and read of either goes through mu, so normalization of one batch never
// interleaves with another batch, a mapping build or a reset.
type Service struct {
	mu       sync.Mutex
	store    *store.Store
	registry *mapping.Registry
	provider mapping.Provider
	workers  int
	logger   *zap.Logger
	reloads  singleflight.Group
}

// NewService creates a new inventory service. provider may be nil.
func NewService(cfg Config, provider mapping.Provider, logger *zap.Logger) *Service {
	var opts []store.Option
	if cfg.Dedup {
		opts = append(opts, store.WithDedup())
	}
	return &Service{
		store:    store.New(opts...),
		registry: mapping.NewRegistry(),
		provider: provider,
		workers:  cfg.workers(),
		logger:   logger,
	}
}

// IngestFiles decodes files concurrently, then normalizes them in input order.
// A file that fails to decode is reported and skipped; the rest of the batch proceeds.
func (s *Service) IngestFiles(ctx context.Context, files []File) IngestReport {
	payloads, errs := s.decode(ctx, files)

	report := IngestReport{Files: make([]FileReport, len(files))}
	docs := make([]normalize.Document, 0, len(files))
	index := make([]int, 0, len(files))
	for i, f := range files {
		report.Files[i].Name = f.Name
		if errs[i] != nil {
			report.Files[i].Error = errs[i].Error()
			s.logger.Warn("Failed to parse file", zap.String("file", f.Name), zap.Error(errs[i]))
			continue
		}
		docs = append(docs, normalize.Document{Name: f.Name, Payload: payloads[i]})
		index = append(index, i)
	}

	s.mu.Lock()
	results := normalize.Ingest(s.store, s.registry, docs)
	report.Counts = s.store.Counts()
	s.mu.Unlock()

	for j, res := range results {
		fr := &report.Files[index[j]]
		fr.Category = res.Category
		fr.Added = res.Added
		fr.Rescued = res.Rescued
		if res.Category == models.Unknown {
			s.logger.Debug("Dropped unrecognized file", zap.String("file", res.Name))
			continue
		}
		s.logger.Info("Ingested file",
			zap.String("file", res.Name),
			zap.String("category", string(res.Category)),
			zap.Int("added", res.Added))
	}
	return report
}

// decode parses every file on a bounded pool. Errors are kept per file and never cancel siblings.
func (s *Service) decode(ctx context.Context, files []File) ([]any, []error) {
	payloads := make([]any, len(files))
	errs := make([]error, len(files))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			var v any
			if err := json.Unmarshal(f.Data, &v); err != nil {
				errs[i] = fmt.Errorf("parse %s: %w", f.Name, err)
				return nil
			}
			payloads[i] = v
			return nil
		})
	}
	_ = g.Wait()
	return payloads, errs
}

// BuildMapping merges already decoded mapping payloads into the registry.
func (s *Service) BuildMapping(raw mapping.RawSet) mapping.BuildReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	report := s.registry.Build(raw)
	s.logger.Info("Mapping built", zap.Any("added", report.Added), zap.Bool("ready", report.Ready))
	return report
}

// LoadMapping reads the configured provider and builds the registry.
// Concurrent calls share one load.
func (s *Service) LoadMapping(ctx context.Context) (*MappingReport, error) {
	if s.provider == nil {
		return nil, ErrNoMappingSource
	}
	v, err, shared := s.reloads.Do("mapping", func() (any, error) {
		loaded, err := s.provider.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load mapping from %s: %w", s.provider.Name(), err)
		}
		for name, reason := range loaded.Failed {
			s.logger.Warn("Mapping file skipped", zap.String("file", name), zap.String("reason", reason))
		}
		return &MappingReport{
			Source: s.provider.Name(),
			Build:  s.BuildMapping(loaded.Raw),
			Failed: loaded.Failed,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Mapping reload shared with a concurrent caller")
	}
	return v.(*MappingReport), nil
}

// UploadMapping classifies files by name, decodes them and builds the registry.
// Files that match no mapping source are listed as ignored.
func (s *Service) UploadMapping(ctx context.Context, files []File) *MappingReport {
	report := &MappingReport{Failed: map[string]string{}}

	var accepted []File
	var sources []mapping.Source
	for _, f := range files {
		src, ok := mapping.ClassifyFilename(f.Name)
		if !ok {
			report.Ignored = append(report.Ignored, f.Name)
			continue
		}
		accepted = append(accepted, f)
		sources = append(sources, src)
	}

	report.Build = mapping.BuildReport{Added: map[mapping.Source]int{}}
	raw := mapping.RawSet{}
	flush := func() {
		built := s.BuildMapping(raw)
		for src, n := range built.Added {
			report.Build.Added[src] += n
		}
		report.Build.Ready = built.Ready
		raw = mapping.RawSet{}
	}

	payloads, errs := s.decode(ctx, accepted)
	for i, f := range accepted {
		if errs[i] != nil {
			report.Failed[f.Name] = errs[i].Error()
			continue
		}
		// Several files for one source are merged one after the other.
		if _, dup := raw[sources[i]]; dup {
			flush()
		}
		raw[sources[i]] = payloads[i]
	}
	flush()
	return report
}

// Reset clears every collection.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Reset()
}

// ResetCategory clears one collection.
func (s *Service) ResetCategory(c models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ResetCategory(c)
}

// Snapshot returns copies of all collections.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Characters: s.store.Characters(),
		Weapons:    s.store.Weapons(),
		Echoes:     s.store.Echoes(),
		Items:      s.store.Items(),
		Counts:     s.store.Counts(),
	}
}

// Counts returns the collection sizes.
func (s *Service) Counts() store.Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Counts()
}

// MappingStatus reports registry readiness and dictionary sizes.
func (s *Service) MappingStatus() mapping.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Status()
}

// Records returns the records of one category whose name or id contains q (case-insensitive).
func (s *Service) Records(c models.Category, q string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q = strings.ToLower(strings.TrimSpace(q))
	switch c {
	case models.Characters:
		return search(s.store.Characters(), q, func(r models.Character) (models.ID, string) { return r.ID, r.Name }), nil
	case models.Weapons:
		return search(s.store.Weapons(), q, func(r models.Weapon) (models.ID, string) { return r.ID, r.Name }), nil
	case models.Echoes:
		return search(s.store.Echoes(), q, func(r models.Echo) (models.ID, string) { return r.ID, r.Name }), nil
	case models.Items, models.Resources:
		return search(s.store.Items(), q, func(r models.Item) (models.ID, string) { return r.ID, r.Name }), nil
	default:
		return nil, fmt.Errorf("unknown category: %s", c)
	}
}

func search[T any](recs []T, q string, key func(T) (models.ID, string)) []T {
	if q == "" {
		return recs
	}
	return slices.DeleteFunc(recs, func(r T) bool {
		id, name := key(r)
		return !strings.Contains(strings.ToLower(name), q) && !strings.Contains(string(id), q)
	})
}
