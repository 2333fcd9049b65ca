// Package workers holds the extraction batch pipeline: fetch postings
// per configured search, deduplicate, upsert, then enrich unseen
// company names through the registry.
package workers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/joblens/joblens/internal/models"
	"github.com/joblens/joblens/internal/providers/registry"
	"github.com/joblens/joblens/internal/providers/search"
	pgrepo "github.com/joblens/joblens/internal/repositories/postgres"
)

const pageDelay = time.Second

// ExtractWorker runs one extraction pass. No failure inside a unit of
// work (one query, one page, one company) aborts the run; everything
// is logged and the pass moves on.
type ExtractWorker struct {
	Configs   pgrepo.ConfigRepository
	Postings  pgrepo.PostingRepository
	Links     pgrepo.LinkRepository
	Companies pgrepo.CompanyRepository

	Search   search.Provider
	Registry registry.Provider

	Logger   *logrus.Logger
	MaxPages int
}

func (w *ExtractWorker) Run(ctx context.Context) error {
	if w.Logger == nil {
		w.Logger = logrus.New()
	}
	if w.MaxPages <= 0 {
		w.MaxPages = 8
	}

	w.fetchPostings(ctx)
	w.enrichCompanies(ctx)
	return ctx.Err()
}

func (w *ExtractWorker) fetchPostings(ctx context.Context) {
	existing, err := w.Postings.ExistingIDs(ctx)
	if err != nil {
		// Proceed with an empty set; the upsert stays idempotent.
		w.Logger.WithError(err).Warn("could not load existing job ids")
		existing = map[string]struct{}{}
	}
	w.Logger.WithField("known_jobs", len(existing)).Info("extraction started")

	configs, err := w.Configs.ListAll(ctx)
	if err != nil {
		w.Logger.WithError(err).Error("could not load user configs")
		return
	}

	var (
		newPostings []models.Posting
		links       []models.UserJobLink
	)
	now := time.Now().UTC()

	for _, cfg := range configs {
		var searches []models.SearchSpec
		if err := json.Unmarshal(cfg.Searches, &searches); err != nil {
			w.Logger.WithError(err).WithField("user_id", cfg.UserID).Warn("invalid searches config")
			continue
		}

		for _, spec := range searches {
			results := w.fetchAllPages(ctx, spec)
			fresh := 0
			for _, res := range results {
				// The link records every hit for this user's search,
				// new posting or not.
				links = append(links, models.UserJobLink{
					UserID:    cfg.UserID,
					JobID:     res.JobID,
					CreatedAt: now,
				})

				if _, seen := existing[res.JobID]; seen {
					continue
				}
				existing[res.JobID] = struct{}{}
				fresh++
				newPostings = append(newPostings, models.Posting{
					JobID:       res.JobID,
					Title:       res.Title,
					CompanyName: res.CompanyName,
					ApplyLink:   res.ApplyLink,
					Raw:         datatypes.JSON(res.Raw),
					CreatedAt:   now,
				})
			}
			w.Logger.WithFields(logrus.Fields{
				"query":   spec.Query,
				"fetched": len(results),
				"new":     fresh,
			}).Info("query done")
		}
	}

	if err := w.Postings.UpsertBatch(ctx, newPostings); err != nil {
		w.Logger.WithError(err).Error("posting upsert failed")
	}
	if err := w.Links.UpsertBatch(ctx, dedupeLinks(links)); err != nil {
		w.Logger.WithError(err).Error("link upsert failed")
	}
	w.Logger.WithFields(logrus.Fields{
		"new_postings": len(newPostings),
		"links":        len(links),
	}).Info("fetch phase done")
}

// fetchAllPages pages through one search until an empty page, a missing
// continuation token, or the page cap.
func (w *ExtractWorker) fetchAllPages(ctx context.Context, spec models.SearchSpec) []search.Result {
	var out []search.Result
	token := ""
	for page := 1; ; page++ {
		res, err := w.Search.FetchPage(ctx, spec.Query, spec.Location, token)
		if err != nil {
			w.Logger.WithError(err).WithFields(logrus.Fields{
				"query": spec.Query,
				"page":  page,
			}).Warn("search page failed")
			break
		}
		if len(res.Results) == 0 {
			break
		}
		out = append(out, res.Results...)
		if page >= w.MaxPages || res.NextToken == "" {
			break
		}
		token = res.NextToken

		select {
		case <-ctx.Done():
			return out
		case <-time.After(pageDelay):
		}
	}
	return out
}

func (w *ExtractWorker) enrichCompanies(ctx context.Context) {
	names, err := w.Postings.DistinctCompanyNames(ctx)
	if err != nil {
		w.Logger.WithError(err).Error("could not list company names")
		return
	}
	known, err := w.Companies.ExistingNames(ctx)
	if err != nil {
		w.Logger.WithError(err).Warn("could not load known companies, assuming all are new")
		known = map[string]struct{}{}
	}

	enriched := 0
	for _, name := range names {
		if _, ok := known[name]; ok {
			continue
		}
		select {
		case <-ctx.Done():
			return
		default:
		}

		rec := &models.CompanyRecord{CompanyName: name, CreatedAt: time.Now().UTC()}

		cleaned := registry.CleanName(name)
		candidates, err := w.Registry.Lookup(ctx, cleaned)
		if err != nil {
			// A failed lookup still writes the row, with null info.
			w.Logger.WithError(err).WithField("company", cleaned).Warn("registry lookup failed")
		} else if best := registry.PickBest(candidates); best != nil {
			rec.Info = datatypes.JSON(best.Raw)
		}

		if err := w.Companies.Upsert(ctx, rec); err != nil {
			w.Logger.WithError(err).WithField("company", name).Error("company upsert failed")
			continue
		}
		enriched++
	}
	w.Logger.WithField("companies", enriched).Info("enrichment phase done")
}

func dedupeLinks(links []models.UserJobLink) []models.UserJobLink {
	type key struct{ user, job string }
	seen := map[key]struct{}{}
	out := links[:0]
	for _, l := range links {
		k := key{l.UserID, l.JobID}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, l)
	}
	return out
}
