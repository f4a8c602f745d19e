package modules

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealershield/pkg/cache"
)

const validCNPJ = "11222333000181"

// stubClient serves canned responses (or errors) keyed by operation.
type stubClient struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	calls     []string
}

func (s *stubClient) Search(ctx context.Context, prompt, operation string) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, operation)
	s.mu.Unlock()
	if err := s.errs[operation]; err != nil {
		return "", err
	}
	if resp, ok := s.responses[operation]; ok {
		return resp, nil
	}
	return `{"status": "success"}`, nil
}

func (s *stubClient) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// blockingClient waits for the context to expire.
type blockingClient struct{}

func (blockingClient) Search(ctx context.Context, prompt, operation string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestCheckerRejectsInvalidCNPJ(t *testing.T) {
	client := &stubClient{}
	c := NewChecker(client, nil, CheckerConfig{})

	_, err := c.VerifyStatus(context.Background(), "11222333000180")
	assert.ErrorIs(t, err, ErrInvalidCNPJ)

	_, err = c.ComprehensiveCheck(context.Background(), "123", "")
	assert.ErrorIs(t, err, ErrInvalidCNPJ)

	assert.Zero(t, client.callCount(), "no query may be issued for an invalid CNPJ")
}

func TestCheckerNormalizesJSONResponse(t *testing.T) {
	client := &stubClient{responses: map[string]string{
		"verify_cnpj_status": `{"razao_social": "Auto Center ABC Ltda", "situacao_cadastral": "ATIVA", "socios": null}`,
	}}
	c := NewChecker(client, nil, CheckerConfig{})

	rec, err := c.VerifyStatus(context.Background(), validCNPJ)
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, rec["status"])
	assert.Equal(t, true, rec["cnpj_valid"])
	assert.Equal(t, "ATIVA", rec["situacao_cadastral"])
	assert.Equal(t, []any{}, rec["socios"])
	assert.NotEmpty(t, rec["query_date"])
}

func TestCheckerHandlesFencedJSON(t *testing.T) {
	client := &stubClient{responses: map[string]string{
		"check_dealer_reputation": "Segue a análise:\n```json\n{\"reputation_score\": \"72\"}\n```",
	}}
	c := NewChecker(client, nil, CheckerConfig{})

	rec, err := c.CheckReputation(context.Background(), validCNPJ, "Auto ABC")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, rec["status"])
	assert.Equal(t, "72", rec["reputation_score"])
}

func TestCheckerDegradesToTextRecord(t *testing.T) {
	client := &stubClient{responses: map[string]string{
		"check_legal_issues": "A empresa não possui processos conhecidos.",
	}}
	c := NewChecker(client, nil, CheckerConfig{})

	rec, err := c.CheckLegalIssues(context.Background(), validCNPJ, "")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccessText, rec["status"])
	assert.Equal(t, "A empresa não possui processos conhecidos.", rec["raw_response"])
}

func TestCheckerImagesDegradeToPlaceholder(t *testing.T) {
	client := &stubClient{responses: map[string]string{
		"search_business_images": "Não encontrei imagens para esta empresa.",
	}}
	c := NewChecker(client, nil, CheckerConfig{})

	rec, err := c.SearchBusinessImages(context.Background(), validCNPJ, "Auto ABC")
	require.NoError(t, err)
	assert.Equal(t, StatusPartial, rec["status"])
	_, ok := getMap(rec, "business_images")
	assert.True(t, ok)
}

func TestCheckerConvertsQueryFailure(t *testing.T) {
	client := &stubClient{errs: map[string]error{
		"verify_cnpj_status": errors.New("connection refused"),
	}}
	c := NewChecker(client, nil, CheckerConfig{})

	rec, err := c.VerifyStatus(context.Background(), validCNPJ)
	require.NoError(t, err)
	assert.Equal(t, StatusError, rec["status"])
	assert.Equal(t, "connection refused", rec["error"])
}

func TestCheckerTimeoutBecomesErrorRecord(t *testing.T) {
	c := NewChecker(blockingClient{}, nil, CheckerConfig{CheckTimeout: 20 * time.Millisecond})

	rec, err := c.VerifyStatus(context.Background(), validCNPJ)
	require.NoError(t, err)
	assert.Equal(t, StatusError, rec["status"])
}

func TestComprehensiveCheck(t *testing.T) {
	client := &stubClient{responses: map[string]string{
		"verify_cnpj_status":      `{"situacao_cadastral": "ATIVA"}`,
		"check_dealer_reputation": `{"reputation_score": "30"}`,
		"check_legal_issues":      `{"risk_level": "ALTO"}`,
		"search_business_images":  `{"image_analysis": {"total_images_found": 2}}`,
	}}
	c := NewChecker(client, nil, CheckerConfig{})

	name := "Auto Center ABC"
	res, err := c.ComprehensiveCheck(context.Background(), "11.222.333/0001-81", name)
	require.NoError(t, err)

	assert.Equal(t, "11.222.333/0001-81", res.CNPJ)
	require.NotNil(t, res.CompanyName)
	assert.Equal(t, name, *res.CompanyName)
	assert.NotEmpty(t, res.AnalysisDate)
	assert.Len(t, res.ChecksPerformed, 4)
	for _, kind := range []string{KindStatus, KindReputation, KindLegal, KindImages} {
		assert.Contains(t, res.ChecksPerformed, kind)
	}

	// reputation (30) + legal (40); the flat registration field never fires
	assert.Equal(t, 70, res.RiskAnalysis.RiskScore)
	assert.Equal(t, RiskHigh, res.RiskAnalysis.RiskLevel)
	assert.Equal(t, 4, client.callCount())
}

func TestComprehensiveCheckSurvivesOneFailure(t *testing.T) {
	client := &stubClient{
		responses: map[string]string{
			"verify_cnpj_status":     `{"situacao_cadastral": "ATIVA"}`,
			"check_legal_issues":     `{"risk_level": "BAIXO"}`,
			"search_business_images": `{"status": "success"}`,
		},
		errs: map[string]error{
			"check_dealer_reputation": errors.New("rate limited"),
		},
	}
	c := NewChecker(client, nil, CheckerConfig{})

	res, err := c.ComprehensiveCheck(context.Background(), validCNPJ, "")
	require.NoError(t, err)
	assert.Nil(t, res.CompanyName)

	assert.Equal(t, StatusError, res.ChecksPerformed[KindReputation]["status"])
	assert.Equal(t, StatusSuccess, res.ChecksPerformed[KindStatus]["status"])
	assert.Equal(t, StatusSuccess, res.ChecksPerformed[KindLegal]["status"])
	assert.Equal(t, StatusSuccess, res.ChecksPerformed[KindImages]["status"])
	assert.Equal(t, 0, res.RiskAnalysis.RiskScore)
}

func TestCheckerUsesResponseCache(t *testing.T) {
	sqlCache, err := cache.NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer sqlCache.Close()

	client := &stubClient{responses: map[string]string{
		"check_dealer_reputation": `{"reputation_score": "90"}`,
	}}
	c := NewChecker(client, sqlCache, CheckerConfig{CacheTTL: time.Hour})

	ctx := context.Background()
	first, err := c.CheckReputation(ctx, validCNPJ, "Auto ABC")
	require.NoError(t, err)
	second, err := c.CheckReputation(ctx, validCNPJ, "Auto ABC")
	require.NoError(t, err)

	assert.Equal(t, first["reputation_score"], second["reputation_score"])
	assert.Equal(t, 1, client.callCount(), "second lookup must be served from cache")
}

func TestCheckerCacheDisabledByDefault(t *testing.T) {
	client := &stubClient{responses: map[string]string{
		"check_dealer_reputation": `{"reputation_score": "90"}`,
	}}
	c := NewChecker(client, nil, CheckerConfig{})

	ctx := context.Background()
	_, err := c.CheckReputation(ctx, validCNPJ, "")
	require.NoError(t, err)
	_, err = c.CheckReputation(ctx, validCNPJ, "")
	require.NoError(t, err)

	assert.Equal(t, 2, client.callCount())
}
