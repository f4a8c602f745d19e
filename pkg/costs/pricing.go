package costs

// ModelPricing holds USD prices per 1K tokens, plus a flat per-search
// surcharge for search-capable models.
type ModelPricing struct {
	InputPer1K  float64
	OutputPer1K float64
	SearchCost  float64
}

// Pricing table, USD. Reviewed Jan 2025.
var Pricing = map[string]ModelPricing{
	"gpt-4o":                {InputPer1K: 0.003, OutputPer1K: 0.010},
	"gpt-4o-2024-08-06":     {InputPer1K: 0.0025, OutputPer1K: 0.010},
	"gpt-4o-search-preview": {InputPer1K: 0.003, OutputPer1K: 0.010, SearchCost: 0.02},
	"gpt-4o-mini":           {InputPer1K: 0.00015, OutputPer1K: 0.0006},
}

// Cost computes the USD cost of one request. Unknown models cost zero and
// report ok=false so callers can log the gap without failing the request.
func Cost(model string, inputTokens, outputTokens, searchCount int) (cost float64, ok bool) {
	p, ok := Pricing[model]
	if !ok {
		return 0, false
	}
	cost = float64(inputTokens)/1000*p.InputPer1K + float64(outputTokens)/1000*p.OutputPer1K
	cost += float64(searchCount) * p.SearchCost
	return cost, true
}
