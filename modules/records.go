package modules

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Record is the normalized result of one check. The model returns loosely
// structured JSON, so records stay map-shaped; unknown fields pass through
// untouched and normalization only touches the fields it knows about.
type Record map[string]any

// Check kinds, also the keys of checks_performed in the consolidated result.
const (
	KindStatus     = "cnpj_status"
	KindReputation = "reputation"
	KindLegal      = "legal_issues"
	KindImages     = "business_images"
)

// Record status markers.
const (
	StatusSuccess     = "success"
	StatusSuccessText = "success_text"
	StatusError       = "error"
	StatusPartial     = "partial_success"
)

var ErrNoJSON = errors.New("no JSON object found in response")

// Fields the per-kind prompt schemas declare as lists. A JSON null carries no
// type, so these sets decide whether a null normalizes to [] or "N/A".
var listFields = map[string]map[string]bool{
	KindStatus: {
		"socios":    true,
		"red_flags": true,
	},
	KindReputation: {
		"main_issues":     true,
		"red_flags":       true,
		"sources_checked": true,
	},
	KindLegal: {
		"criminal_cases":   true,
		"civil_cases":      true,
		"investigations":   true,
		"sanctions":        true,
		"fraud_indicators": true,
		"sources_found":    true,
	},
	KindImages: {},
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ExtractJSON returns the best JSON candidate within a model response:
// the whole text when it already parses as an object, otherwise the content
// of a ```json fenced block.
func ExtractJSON(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return trimmed, nil
	}
	if idx := strings.Index(trimmed, "```json"); idx >= 0 {
		rest := trimmed[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			candidate := strings.TrimSpace(rest[:end])
			if json.Valid([]byte(candidate)) && strings.HasPrefix(candidate, "{") {
				return candidate, nil
			}
		}
	}
	return "", ErrNoJSON
}

// ParseRecord extracts and decodes a JSON object from raw response text.
func ParseRecord(text string) (Record, error) {
	candidate, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal([]byte(candidate), &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Normalize stamps the standard fields on a freshly parsed record: forces
// status=success, fills query_date when absent, and rewrites nulls (empty
// list for declared list fields, "N/A" otherwise). The registration kind
// also carries an explicit validity flag; validation gated the query, so it
// is always true here.
func Normalize(rec Record, kind string) Record {
	rec["status"] = StatusSuccess
	if _, ok := rec["query_date"]; !ok {
		rec["query_date"] = nowISO()
	}
	lists := listFields[kind]
	for key, value := range rec {
		if value == nil {
			if lists[key] {
				rec[key] = []any{}
			} else {
				rec[key] = "N/A"
			}
		}
	}
	if kind == KindStatus {
		rec["cnpj_valid"] = true
	}
	return rec
}

// ErrorRecord captures a failed query for one check kind.
func ErrorRecord(kind, formattedCNPJ string, err error) Record {
	rec := Record{
		"cnpj":       formattedCNPJ,
		"error":      err.Error(),
		"status":     StatusError,
		"query_date": nowISO(),
	}
	if kind == KindStatus {
		rec["cnpj_valid"] = true
	}
	return rec
}

// TextRecord preserves an unparseable but still informative free-text answer.
func TextRecord(kind, formattedCNPJ, companyName, raw string) Record {
	rec := Record{
		"cnpj":         formattedCNPJ,
		"raw_response": raw,
		"status":       StatusSuccessText,
		"query_date":   nowISO(),
	}
	if kind == KindStatus {
		rec["cnpj_valid"] = true
	} else {
		if companyName == "" {
			rec["company_name"] = nil
		} else {
			rec["company_name"] = companyName
		}
	}
	return rec
}

func naImage() Record {
	return Record{"url": "N/A", "description": "N/A", "source": "N/A", "verified": false}
}

// ImagesPlaceholder is the degraded fallback for the visual-presence check:
// the full nested schema with every sub-field blanked out, so dashboard
// panels render uniformly even when no structure could be extracted.
func ImagesPlaceholder(formattedCNPJ, companyName, raw string) Record {
	if companyName == "" {
		companyName = "N/A"
	}
	if len(raw) > 500 {
		raw = raw[:500] + "..."
	}
	return Record{
		"status":       StatusPartial,
		"cnpj":         formattedCNPJ,
		"company_name": companyName,
		"business_images": Record{
			"facade":   naImage(),
			"logo":     naImage(),
			"interior": naImage(),
			"staff":    naImage(),
			"vehicles": naImage(),
			"location": naImage(),
		},
		"image_analysis": Record{
			"total_images_found":    0,
			"verified_images":       0,
			"legitimacy_indicators": []any{},
			"red_flags":             []any{"Não foi possível encontrar imagens"},
			"visual_consistency":    "N/A",
			"business_appearance":   "N/A",
		},
		"social_media_presence": Record{
			"instagram": Record{"url": "N/A", "followers": "N/A", "posts": "N/A", "recent_activity": "N/A"},
			"facebook":  Record{"url": "N/A", "likes": "N/A", "reviews": "N/A", "recent_activity": "N/A"},
		},
		"raw_response": raw,
		"query_date":   nowISO(),
	}
}

// getString returns rec[key] when it is a string.
func getString(rec Record, key string) (string, bool) {
	if rec == nil {
		return "", false
	}
	s, ok := rec[key].(string)
	return s, ok
}

// getMap returns rec[key] when it is a nested object. Records decoded from
// JSON nest as map[string]any; hand-built records nest as Record.
func getMap(rec Record, key string) (Record, bool) {
	if rec == nil {
		return nil, false
	}
	switch m := rec[key].(type) {
	case map[string]any:
		return Record(m), true
	case Record:
		return m, true
	}
	return nil, false
}
