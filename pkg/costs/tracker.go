package costs

import (
	"log/slog"
	"sync"
	"time"
)

// RequestInfo is one row of the cost history.
type RequestInfo struct {
	Timestamp    string  `json:"timestamp"`
	Model        string  `json:"model"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	TotalTokens  int     `json:"total_tokens"`
	CostUSD      float64 `json:"cost_usd"`
	Operation    string  `json:"operation"`
}

// ModelBreakdown aggregates cost per model.
type ModelBreakdown struct {
	Cost     float64 `json:"cost"`
	Requests int     `json:"requests"`
	Tokens   int     `json:"tokens"`
}

// OperationBreakdown aggregates cost per operation.
type OperationBreakdown struct {
	Cost     float64 `json:"cost"`
	Requests int     `json:"requests"`
}

// Summary is the full cost report.
type Summary struct {
	TotalCostUSD          float64                       `json:"total_cost_usd"`
	TotalRequests         int                           `json:"total_requests"`
	TotalTokens           int                           `json:"total_tokens"`
	CostByModel           map[string]ModelBreakdown     `json:"cost_by_model"`
	CostByOperation       map[string]OperationBreakdown `json:"cost_by_operation"`
	AverageCostPerRequest float64                       `json:"average_cost_per_request"`
	RequestsHistory       []RequestInfo                 `json:"requests_history,omitempty"`
}

// Tracker accumulates per-request token costs. The four concurrent checks of
// a comprehensive run all report here, so every mutation goes through one
// mutex. A nil *Store keeps tracking purely in memory.
type Tracker struct {
	mu      sync.Mutex
	total   float64
	history []RequestInfo
	store   *Store
}

func NewTracker(store *Store) *Tracker {
	return &Tracker{store: store}
}

// Track records one request and returns its cost. Unknown models are logged
// and tracked at zero cost.
func (t *Tracker) Track(model string, inputTokens, outputTokens, searchCount int, operation string) float64 {
	cost, known := Cost(model, inputTokens, outputTokens, searchCount)
	if !known {
		slog.Warn("model missing from pricing table", "model", model)
	}

	req := RequestInfo{
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Model:        model,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		TotalTokens:  inputTokens + outputTokens,
		CostUSD:      cost,
		Operation:    operation,
	}

	t.mu.Lock()
	t.history = append(t.history, req)
	t.total += cost
	total := t.total
	t.mu.Unlock()

	slog.Info("request cost tracked",
		"operation", operation, "model", model, "cost_usd", cost, "total_usd", total)

	if t.store != nil {
		if err := t.store.Insert(req); err != nil {
			slog.Warn("cost history persist failed", "error", err)
		}
	}
	return cost
}

// TotalCost returns the accumulated cost since the last reset.
func (t *Tracker) TotalCost() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Summary builds the cost report, including the last 10 requests.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Summary{
		TotalCostUSD:    t.total,
		TotalRequests:   len(t.history),
		CostByModel:     map[string]ModelBreakdown{},
		CostByOperation: map[string]OperationBreakdown{},
	}
	if len(t.history) == 0 {
		return s
	}

	for _, req := range t.history {
		m := s.CostByModel[req.Model]
		m.Cost += req.CostUSD
		m.Requests++
		m.Tokens += req.TotalTokens
		s.CostByModel[req.Model] = m

		op := s.CostByOperation[req.Operation]
		op.Cost += req.CostUSD
		op.Requests++
		s.CostByOperation[req.Operation] = op

		s.TotalTokens += req.TotalTokens
	}
	s.AverageCostPerRequest = s.TotalCostUSD / float64(s.TotalRequests)

	tail := t.history
	if len(tail) > 10 {
		tail = tail[len(tail)-10:]
	}
	s.RequestsHistory = append([]RequestInfo(nil), tail...)
	return s
}

// Reset clears the in-memory history and total. Persisted rows are kept.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.total = 0
	t.history = nil
	t.mu.Unlock()
	slog.Info("cost tracking reset")
}
