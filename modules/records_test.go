package modules

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{"whole text object", `{"status": "ok"}`, `{"status": "ok"}`, false},
		{"whole text with padding", "  {\"a\": 1}\n", `{"a": 1}`, false},
		{"fenced block", "Aqui está o resultado:\n```json\n{\"a\": 1}\n```\nEspero que ajude.", `{"a": 1}`, false},
		{"fenced block wins over prose", "prefix ```json\n{\"b\": 2}\n``` suffix", `{"b": 2}`, false},
		{"plain prose", "A empresa parece legítima.", "", true},
		{"fenced but not json", "```json\nnot json\n```", "", true},
		{"top level array rejected", `[1, 2, 3]`, "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoJSON)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRecord(t *testing.T) {
	rec, err := ParseRecord("```json\n{\"cnpj\": \"11.222.333/0001-81\", \"socios\": [\"a\"]}\n```")
	require.NoError(t, err)
	assert.Equal(t, "11.222.333/0001-81", rec["cnpj"])

	_, err = ParseRecord("texto livre sem JSON")
	assert.Error(t, err)
}

func TestNormalizeForcesStandardFields(t *testing.T) {
	rec := Record{"razao_social": "Auto Center ABC Ltda"}
	got := Normalize(rec, KindStatus)

	assert.Equal(t, StatusSuccess, got["status"])
	assert.Equal(t, true, got["cnpj_valid"])
	date, ok := got["query_date"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, date)
}

func TestNormalizeKeepsExistingQueryDate(t *testing.T) {
	rec := Record{"query_date": "2025-01-02T03:04:05Z"}
	got := Normalize(rec, KindReputation)
	assert.Equal(t, "2025-01-02T03:04:05Z", got["query_date"])
}

func TestNormalizeNulls(t *testing.T) {
	rec := Record{
		"socios":        nil, // declared list field
		"capital_social": nil, // scalar
		"red_flags":     []any{"endereço inexistente"},
		"extra_field":   nil, // unknown, treated as scalar
	}
	got := Normalize(rec, KindStatus)

	assert.Equal(t, []any{}, got["socios"])
	assert.Equal(t, "N/A", got["capital_social"])
	assert.Equal(t, []any{"endereço inexistente"}, got["red_flags"])
	assert.Equal(t, "N/A", got["extra_field"])
}

func TestNormalizeListFieldsPerKind(t *testing.T) {
	rec := Record{"criminal_cases": nil, "legal_summary": nil}
	got := Normalize(rec, KindLegal)
	assert.Equal(t, []any{}, got["criminal_cases"])
	assert.Equal(t, "N/A", got["legal_summary"])

	// socios is a list field only for the status kind
	rec = Record{"socios": nil}
	got = Normalize(rec, KindReputation)
	assert.Equal(t, "N/A", got["socios"])
}

func TestNormalizeStampsValidityOnlyForStatus(t *testing.T) {
	got := Normalize(Record{}, KindLegal)
	_, ok := got["cnpj_valid"]
	assert.False(t, ok)
}

func TestErrorRecord(t *testing.T) {
	rec := ErrorRecord(KindReputation, "11.222.333/0001-81", errors.New("timeout"))
	assert.Equal(t, StatusError, rec["status"])
	assert.Equal(t, "timeout", rec["error"])
	assert.Equal(t, "11.222.333/0001-81", rec["cnpj"])
	assert.NotEmpty(t, rec["query_date"])
	_, ok := rec["cnpj_valid"]
	assert.False(t, ok)

	rec = ErrorRecord(KindStatus, "11.222.333/0001-81", errors.New("boom"))
	assert.Equal(t, true, rec["cnpj_valid"])
}

func TestTextRecord(t *testing.T) {
	rec := TextRecord(KindLegal, "11.222.333/0001-81", "Auto ABC", "resposta em texto livre")
	assert.Equal(t, StatusSuccessText, rec["status"])
	assert.Equal(t, "resposta em texto livre", rec["raw_response"])
	assert.Equal(t, "Auto ABC", rec["company_name"])
	assert.NotEmpty(t, rec["query_date"])

	rec = TextRecord(KindLegal, "11.222.333/0001-81", "", "texto")
	assert.Nil(t, rec["company_name"])

	rec = TextRecord(KindStatus, "11.222.333/0001-81", "", "texto")
	assert.Equal(t, true, rec["cnpj_valid"])
}

func TestImagesPlaceholder(t *testing.T) {
	rec := ImagesPlaceholder("11.222.333/0001-81", "", "sem estrutura")
	assert.Equal(t, StatusPartial, rec["status"])
	assert.Equal(t, "N/A", rec["company_name"])
	assert.Equal(t, "sem estrutura", rec["raw_response"])

	images, ok := getMap(rec, "business_images")
	require.True(t, ok)
	for _, slot := range []string{"facade", "logo", "interior", "staff", "vehicles", "location"} {
		img, ok := getMap(images, slot)
		require.True(t, ok, slot)
		assert.Equal(t, "N/A", img["url"])
		assert.Equal(t, false, img["verified"])
	}

	analysis, ok := getMap(rec, "image_analysis")
	require.True(t, ok)
	assert.Equal(t, 0, analysis["total_images_found"])
}

func TestImagesPlaceholderTruncatesRaw(t *testing.T) {
	raw := strings.Repeat("x", 600)
	rec := ImagesPlaceholder("11.222.333/0001-81", "Auto ABC", raw)
	got := rec["raw_response"].(string)
	assert.Len(t, got, 503)
	assert.True(t, strings.HasSuffix(got, "..."))
}
