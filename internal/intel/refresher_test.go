package intel

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"liftout/internal/config"
	"liftout/internal/domain/company"

	"github.com/google/uuid"
)

type recordingCompanyRepo struct {
	mu      sync.Mutex
	targets []company.Company
	updated map[uuid.UUID]string
}

func (m *recordingCompanyRepo) GetByID(context.Context, uuid.UUID) (company.Company, error) {
	return company.Company{}, nil
}

func (m *recordingCompanyRepo) ListIntelTargets(context.Context, int) ([]company.Company, error) {
	return m.targets, nil
}

func (m *recordingCompanyRepo) UpdateCultureText(_ context.Context, companyID uuid.UUID, text string, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updated == nil {
		m.updated = make(map[uuid.UUID]string)
	}
	m.updated[companyID] = text
	return nil
}

func intelTarget(pageURL string) company.Company {
	return company.Company{ID: uuid.New(), Name: "Acme", CulturePageURL: &pageURL}
}

func TestRefresh_UpdatesCultureText(t *testing.T) {
	target := intelTarget("https://example.com/careers")
	repo := &recordingCompanyRepo{targets: []company.Company{target}}

	r := NewRefresher(repo, config.IntelConfig{Workers: 2}, nil)
	r.fetch = func(context.Context, string) (string, error) {
		return "we value transparency and innovation", nil
	}

	if err := r.Refresh(context.Background(), 10); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := repo.updated[target.ID]; got != "we value transparency and innovation" {
		t.Fatalf("culture text not persisted, got %q", got)
	}
}

func TestRefresh_HeadlessFallback(t *testing.T) {
	target := intelTarget("https://example.com/careers")
	repo := &recordingCompanyRepo{targets: []company.Company{target}}

	r := NewRefresher(repo, config.IntelConfig{Workers: 1, UseHeadless: true}, nil)
	r.fetch = func(context.Context, string) (string, error) {
		return "", errors.New("blocked")
	}
	r.fetchHeadless = func(context.Context, string) (string, error) {
		return "rendered culture copy", nil
	}

	if err := r.Refresh(context.Background(), 10); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := repo.updated[target.ID]; got != "rendered culture copy" {
		t.Fatalf("expected headless text persisted, got %q", got)
	}
}

func TestRefresh_FailuresDoNotAbortRun(t *testing.T) {
	bad := intelTarget("https://bad.example.com/careers")
	good := intelTarget("https://good.example.com/careers")
	repo := &recordingCompanyRepo{targets: []company.Company{bad, good}}

	r := NewRefresher(repo, config.IntelConfig{Workers: 1}, nil)
	r.fetch = func(_ context.Context, pageURL string) (string, error) {
		if pageURL == "https://bad.example.com/careers" {
			return "", errors.New("timeout")
		}
		return "people first, results always", nil
	}

	if err := r.Refresh(context.Background(), 10); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := repo.updated[bad.ID]; ok {
		t.Fatalf("failed fetch should not persist")
	}
	if _, ok := repo.updated[good.ID]; !ok {
		t.Fatalf("good fetch should persist despite sibling failure")
	}
}

func TestTruncate_CutsAtWordBoundary(t *testing.T) {
	s := "alpha beta gamma"
	got := truncate(s, 11)
	if got != "alpha beta" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if truncate(s, 100) != s {
		t.Fatalf("short strings should pass through")
	}
}
