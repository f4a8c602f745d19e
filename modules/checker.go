package modules

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"dealershield/pkg/cache"
)

// ErrInvalidCNPJ gates every check: no query is issued (and no cost incurred)
// for an identifier that fails validation.
var ErrInvalidCNPJ = errors.New("CNPJ inválido")

// Operation labels reported to cost tracking, one per check kind.
var operations = map[string]string{
	KindStatus:     "verify_cnpj_status",
	KindReputation: "check_dealer_reputation",
	KindLegal:      "check_legal_issues",
	KindImages:     "search_business_images",
}

// ConsolidatedResult is the unit returned by a comprehensive check.
type ConsolidatedResult struct {
	CNPJ            string            `json:"cnpj"`
	CompanyName     *string           `json:"company_name"`
	AnalysisDate    string            `json:"analysis_date"`
	ChecksPerformed map[string]Record `json:"checks_performed"`
	RiskAnalysis    RiskAnalysis      `json:"risk_analysis"`
}

// CheckerConfig tunes the orchestrator.
type CheckerConfig struct {
	CheckTimeout time.Duration // per-check budget in a comprehensive run
	CacheTTL     time.Duration // 0 disables response caching
}

// Checker orchestrates the four dealer checks against the query client.
type Checker struct {
	client       QueryClient
	cache        cache.ResponseCache
	checkTimeout time.Duration
	cacheTTL     time.Duration
}

func NewChecker(client QueryClient, responseCache cache.ResponseCache, cfg CheckerConfig) *Checker {
	if responseCache == nil {
		responseCache = cache.NoOpCache{}
	}
	if cfg.CheckTimeout == 0 {
		cfg.CheckTimeout = 90 * time.Second
	}
	return &Checker{
		client:       client,
		cache:        responseCache,
		checkTimeout: cfg.CheckTimeout,
		cacheTTL:     cfg.CacheTTL,
	}
}

// VerifyStatus checks the official registration situation of the CNPJ.
func (c *Checker) VerifyStatus(ctx context.Context, cnpj string) (Record, error) {
	return c.check(ctx, KindStatus, cnpj, "")
}

// CheckReputation checks consumer-facing reputation of the dealer.
func (c *Checker) CheckReputation(ctx context.Context, cnpj, companyName string) (Record, error) {
	return c.check(ctx, KindReputation, cnpj, companyName)
}

// CheckLegalIssues checks lawsuits, investigations and sanctions.
func (c *Checker) CheckLegalIssues(ctx context.Context, cnpj, companyName string) (Record, error) {
	return c.check(ctx, KindLegal, cnpj, companyName)
}

// SearchBusinessImages checks the dealer's visual and social presence.
func (c *Checker) SearchBusinessImages(ctx context.Context, cnpj, companyName string) (Record, error) {
	return c.check(ctx, KindImages, cnpj, companyName)
}

func (c *Checker) check(ctx context.Context, kind, cnpj, companyName string) (Record, error) {
	if !ValidateCNPJ(cnpj) {
		return nil, ErrInvalidCNPJ
	}
	return c.runCheck(ctx, kind, cnpj, companyName), nil
}

// runCheck is the uniform per-kind pipeline: prompt, query (cached), extract,
// normalize, degrade. It never returns an error; every failure mode maps to
// a record status.
func (c *Checker) runCheck(ctx context.Context, kind, cnpj, companyName string) Record {
	formatted := FormatCNPJ(cnpj)
	prompt := PromptFor(kind, formatted, companyName)

	raw, err := c.query(ctx, kind, cnpj, companyName, prompt)
	if err != nil {
		slog.Error("check query failed", "kind", kind, "cnpj", formatted, "error", err)
		return ErrorRecord(kind, formatted, err)
	}

	rec, err := ParseRecord(raw)
	if err != nil {
		slog.Warn("response not parseable as JSON, degrading", "kind", kind, "cnpj", formatted)
		if kind == KindImages {
			return ImagesPlaceholder(formatted, companyName, raw)
		}
		return TextRecord(kind, formatted, companyName, raw)
	}
	return Normalize(rec, kind)
}

func (c *Checker) query(ctx context.Context, kind, cnpj, companyName, prompt string) (string, error) {
	key := "check:" + kind + ":" + StripCNPJ(cnpj) + ":" + companyName
	if c.cacheTTL > 0 {
		if raw, err := c.cache.Get(ctx, key); err == nil {
			slog.Debug("cache hit", "kind", kind)
			return raw, nil
		} else if !errors.Is(err, cache.ErrCacheKeyNotFound) {
			slog.Warn("cache read failed", "kind", kind, "error", err)
		}
	}

	qctx, cancel := context.WithTimeout(ctx, c.checkTimeout)
	defer cancel()

	raw, err := c.client.Search(qctx, prompt, operations[kind])
	if err != nil {
		return "", err
	}
	if c.cacheTTL > 0 {
		if err := c.cache.Set(ctx, key, raw, c.cacheTTL); err != nil {
			slog.Warn("cache write failed", "kind", kind, "error", err)
		}
	}
	return raw, nil
}

// ComprehensiveCheck runs all four checks concurrently, waits for every one
// to settle, and consolidates them with the risk analysis. A failing check
// degrades to its error record without aborting the siblings.
func (c *Checker) ComprehensiveCheck(ctx context.Context, cnpj, companyName string) (*ConsolidatedResult, error) {
	if !ValidateCNPJ(cnpj) {
		return nil, ErrInvalidCNPJ
	}

	kinds := []string{KindStatus, KindReputation, KindLegal, KindImages}
	checks := make(map[string]Record, len(kinds))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, kind := range kinds {
		wg.Add(1)
		go func(kind string) {
			defer wg.Done()
			rec := c.runCheck(ctx, kind, cnpj, companyName)
			mu.Lock()
			checks[kind] = rec
			mu.Unlock()
		}(kind)
	}
	wg.Wait()

	var name *string
	if companyName != "" {
		name = &companyName
	}
	return &ConsolidatedResult{
		CNPJ:            FormatCNPJ(cnpj),
		CompanyName:     name,
		AnalysisDate:    nowISO(),
		ChecksPerformed: checks,
		RiskAnalysis:    AnalyzeRisk(checks),
	}, nil
}
