package intel

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"liftout/internal/config"
	"liftout/internal/domain/company"
	"liftout/internal/repository"
	"liftout/internal/ws"
)

// Refresher re-crawls the culture pages of companies that configured
// one, persisting the extracted text for the culture dimension builder.
type Refresher struct {
	companies repository.CompanyRepository
	cfg       config.IntelConfig
	logger    *log.Logger

	fetch         func(ctx context.Context, pageURL string) (string, error)
	fetchHeadless func(ctx context.Context, pageURL string) (string, error)
	now           func() time.Time
}

func NewRefresher(companies repository.CompanyRepository, cfg config.IntelConfig, logger *log.Logger) *Refresher {
	return &Refresher{
		companies:     companies,
		cfg:           cfg,
		logger:        logger,
		fetch:         fetchCultureText,
		fetchHeadless: fetchCultureTextHeadless,
		now:           time.Now,
	}
}

// Refresh crawls up to limit companies, stalest first. Per-company
// failures are logged and counted, never fatal for the run.
func (r *Refresher) Refresh(ctx context.Context, limit int) error {
	targets, err := r.companies.ListIntelTargets(ctx, limit)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		if r.logger != nil {
			r.logger.Printf("[Intel] No companies with culture pages configured")
		}
		return nil
	}

	workers := r.cfg.Workers
	if workers <= 0 {
		workers = 4
	}

	pool := NewWorkerPool(workers, workers*2)
	pool.SetRateLimit(r.cfg.RatePerSec)
	results := pool.Run(ctx)

	for _, target := range targets {
		target := target
		pool.Submit(func(ctx context.Context) error {
			return r.refreshOne(ctx, target)
		})
	}
	pool.Close()

	failed := 0
	for res := range results {
		if res.Err != nil {
			failed++
			if r.logger != nil {
				r.logger.Printf("[Intel] Refresh error: %v", res.Err)
			}
		}
	}

	if r.logger != nil {
		r.logger.Printf("[Intel] Refresh done | companies=%d failed=%d", len(targets), failed)
	}
	return nil
}

func (r *Refresher) refreshOne(ctx context.Context, c company.Company) error {
	pageURL := ""
	if c.CulturePageURL != nil {
		pageURL = strings.TrimSpace(*c.CulturePageURL)
	}
	if pageURL == "" {
		return fmt.Errorf("company %s: empty culture page url", c.ID)
	}

	text, err := r.fetch(ctx, pageURL)
	if err != nil && r.cfg.UseHeadless && r.fetchHeadless != nil {
		text, err = r.fetchHeadless(ctx, pageURL)
	}
	if err != nil {
		return fmt.Errorf("company %s: %w", c.ID, err)
	}

	if err := r.companies.UpdateCultureText(ctx, c.ID, text, r.now().UTC()); err != nil {
		return fmt.Errorf("company %s: persist culture text: %w", c.ID, err)
	}

	ws.NotifyCompanyIntelUpdated(c.ID, c.Name)
	if r.logger != nil {
		r.logger.Printf("[Intel] Culture text refreshed | company=%s chars=%d", c.ID, len(text))
	}
	return nil
}
