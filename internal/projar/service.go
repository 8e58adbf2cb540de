package projar

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"projarapi/internal/logger"
	"projarapi/internal/metrics"
)

// SearchResult is a filtered record list together with the filters that
// produced it.
type SearchResult struct {
	Records []Record `json:"records"`
	Filters Applied  `json:"filters"`
}

// Page is everything a listing screen shows: the results, the applied
// filters and the option lists for the filter controls.
type Page struct {
	SearchResult
	Options Options `json:"options"`
}

// Service provides catalog search over a Repository.
type Service struct {
	repo Repository
	log  *zap.Logger
}

// NewService creates a new catalog service. A nil logger discards output.
func NewService(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// Search compiles params and returns the matching records, newest id first.
func (s *Service) Search(ctx context.Context, params Params) (SearchResult, error) {
	f := Compile(params)
	s.trace(ctx, f)

	records, err := s.repo.Find(ctx, f.Query())
	if err != nil {
		return SearchResult{}, err
	}
	if records == nil {
		records = []Record{}
	}
	metrics.SearchResults.Observe(float64(len(records)))
	return SearchResult{Records: records, Filters: f.Applied}, nil
}

// Browse returns search results together with the filter option lists.
func (s *Service) Browse(ctx context.Context, params Params) (Page, error) {
	res, err := s.Search(ctx, params)
	if err != nil {
		return Page{}, err
	}
	opts, err := s.Options(ctx)
	if err != nil {
		return Page{}, err
	}
	return Page{SearchResult: res, Options: opts}, nil
}

// Options fetches every option list concurrently.
func (s *Service) Options(ctx context.Context) (Options, error) {
	var o Options
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { o.Locations, err = s.repo.Locations(gctx); return })
	g.Go(func() (err error) { o.Sectors, err = s.repo.Sectors(gctx); return })
	g.Go(func() (err error) { o.Subjects, err = s.repo.Subjects(gctx); return })
	g.Go(func() (err error) { o.Executors, err = s.repo.Executors(gctx); return })
	g.Go(func() (err error) { o.Authors, err = s.repo.Authors(gctx); return })
	g.Go(func() (err error) { o.Contents, err = s.repo.Contents(gctx); return })
	if err := g.Wait(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// Get returns a record by id. Ids outside the 32-bit range of the id
// columns are never stored and yield ErrNotFound.
func (s *Service) Get(ctx context.Context, id int) (Record, error) {
	if id < math.MinInt32 || id > math.MaxInt32 {
		return Record{}, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// Authors returns every author ordered by name.
func (s *Service) Authors(ctx context.Context) ([]Author, error) {
	return s.repo.Authors(ctx)
}

// Contents returns the distinct content descriptors in use.
func (s *Service) Contents(ctx context.Context) ([]string, error) {
	return s.repo.Contents(ctx)
}

// Total counts the catalog records. An unavailable store counts as an
// empty catalog.
func (s *Service) Total(ctx context.Context) int {
	n, err := s.repo.Count(ctx)
	if err != nil {
		logger.FromContext(ctx, s.log).Warn("count records failed", zap.Error(err))
		return 0
	}
	return n
}

func (s *Service) trace(ctx context.Context, f Filter) {
	keys := make([]string, 0, len(f.Applied))
	for k := range f.Applied {
		keys = append(keys, k)
		metrics.FiltersApplied.WithLabelValues(k).Inc()
	}
	sort.Strings(keys)

	l := logger.FromContext(ctx, s.log)
	if ce := l.Check(zap.DebugLevel, "catalog filter compiled"); ce != nil {
		ce.Write(
			zap.Strings("filters", keys),
			zap.Strings("patterns", patterns(f.Where)),
		)
	}
}

// patterns collects the word patterns of a predicate tree for tracing.
func patterns(p Predicate) []string {
	var out []string
	var walk func(Predicate)
	walk = func(p Predicate) {
		switch v := p.(type) {
		case And:
			for _, c := range v {
				walk(c)
			}
		case Linked:
			walk(v.Where)
		case Matches:
			out = append(out, string(v.Field)+"~*"+v.Pattern)
		case Contains:
			if v.Fold {
				out = append(out, string(v.Field)+" ilike "+v.Text)
			}
		}
	}
	walk(p)
	return out
}
