package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/ppiankov/legisearch/internal/extract"
	"github.com/ppiankov/legisearch/internal/model"
	"github.com/ppiankov/legisearch/internal/roster"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ErrEmptyRoster means the page was fetched but no member fragments matched
var ErrEmptyRoster = eris.New("empty roster")

// ProgressFunc observes extraction progress; it must not affect the result
type ProgressFunc func(done, total int)

// Skipped records a fragment that failed to parse
type Skipped struct {
	Index int // 0-based fragment position
	Err   error
}

// BuildResult is a fully built roster plus what was left out of it
type BuildResult struct {
	Roster    *roster.Roster
	Fragments int
	Skipped   []Skipped
	Source    *FetchResult
}

// Pipeline fetches the roster page and indexes its members
type Pipeline struct {
	fetcher   *Fetcher
	extractor *extract.RecordExtractor
	source    model.SourceConfig
	strict    bool
}

// NewPipeline creates a pipeline from configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	return &Pipeline{
		fetcher:   NewFetcher(cfg),
		extractor: extract.NewRecordExtractor(extract.DefaultRules(cfg.Source, cfg.Jurisdiction)),
		source:    cfg.Source,
		strict:    cfg.Extract.Strict,
	}
}

// BuildRoster fetches the configured page once and builds the roster.
// On any error no roster is returned.
func (p *Pipeline) BuildRoster(ctx context.Context, progress ProgressFunc) (*BuildResult, error) {
	page, err := p.fetcher.Fetch(ctx, p.source.URL)
	if err != nil {
		return nil, err
	}

	result, err := p.BuildFromHTML(bytes.NewReader(page.HTML), progress)
	if err != nil {
		return nil, err
	}
	result.Source = page
	return result, nil
}

// BuildFromHTML builds a roster from already-retrieved markup
func (p *Pipeline) BuildFromHTML(r io.Reader, progress ProgressFunc) (*BuildResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, eris.Wrap(err, "parse roster page")
	}

	items := doc.Find(p.source.Selector)
	total := items.Length()
	if total == 0 {
		return nil, eris.Wrapf(ErrEmptyRoster, "selector %q matched nothing on %s", p.source.Selector, p.source.URL)
	}

	result := &BuildResult{
		Roster:    roster.New(),
		Fragments: total,
	}

	for i := 0; i < total; i++ {
		leg, err := p.extractor.Extract(items.Eq(i))
		if err != nil {
			if p.strict {
				return nil, eris.Wrapf(err, "fragment %d", i+1)
			}
			zap.L().Warn("skipping unparseable roster fragment", fragmentFields(i, err)...)
			result.Skipped = append(result.Skipped, Skipped{Index: i, Err: err})
		} else {
			p.insert(result.Roster, leg)
		}

		if progress != nil {
			progress(i+1, total)
		}
	}

	return result, nil
}

func (p *Pipeline) insert(r *roster.Roster, leg *model.Legislator) {
	if prev := r.Insert(leg); prev != nil {
		zap.L().Info("seat listed twice, keeping the later entry",
			zap.String("chamber", string(leg.Chamber)),
			zap.String("district", leg.District),
			zap.String("replaced", prev.Name),
			zap.String("kept", leg.Name),
		)
	}

	for _, other := range r.SharedEmail(leg) {
		zap.L().Warn("synthesized email shared by two seats",
			zap.String("email", leg.Email),
			zap.String("name", leg.Name),
			zap.String("other_chamber", string(other.Chamber)),
			zap.String("other_district", other.District),
		)
	}
}

func fragmentFields(i int, err error) []zap.Field {
	fields := []zap.Field{zap.Int("fragment", i+1), zap.Error(err)}
	var perr *extract.RecordParseError
	if errors.As(err, &perr) {
		fields = append(fields, zap.String("field", perr.Field), zap.String("text", perr.Text))
	}
	return fields
}
