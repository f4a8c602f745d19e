package modules

import (
	"strconv"
	"strings"
)

// Risk tiers, ordered.
const (
	RiskLow      = "BAIXO"
	RiskMedium   = "MÉDIO"
	RiskHigh     = "ALTO"
	RiskCritical = "CRÍTICO"
)

// Signal weights and tier thresholds.
const (
	weightRegistration = 50
	weightReputation   = 30
	weightLegal        = 40

	thresholdCritical = 80
	thresholdHigh     = 50
	thresholdMedium   = 25

	maxRiskScore = 100
)

// RiskAnalysis is the consolidated verdict over the four checks.
type RiskAnalysis struct {
	RiskScore      int      `json:"risk_score"`
	RiskLevel      string   `json:"risk_level"`
	RiskFactors    []string `json:"risk_factors"`
	Recommendation string   `json:"recommendation"`
	NextSteps      []string `json:"next_steps"`
}

// AnalyzeRisk derives the risk verdict from the per-kind records. Signals are
// evaluated in fixed order (registration, reputation, legal) and their
// weights add up; missing or malformed fields are simply no signal, so the
// function cannot fail. The final score is clamped at 100.
func AnalyzeRisk(checks map[string]Record) RiskAnalysis {
	var factors []string
	score := 0

	// Registration: reads the nested company_data block. Normalized status
	// records carry situacao_cadastral at the top level instead, so this
	// only fires for responses that nest it; kept as-is deliberately.
	if companyData, ok := getMap(checks[KindStatus], "company_data"); ok {
		if situacao, _ := getString(companyData, "situacao_cadastral"); situacao != "ATIVA" {
			factors = append(factors, "Situação cadastral irregular")
			score += weightRegistration
		}
	}

	// Reputation: the prompt schema declares reputation_score as a string.
	if raw, ok := getString(checks[KindReputation], "reputation_score"); ok {
		if repScore, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && repScore < 50 {
			factors = append(factors, "Baixa reputação online")
			score += weightReputation
		}
	}

	// Legal: high or critical tier reported by the legal check.
	if level, _ := getString(checks[KindLegal], "risk_level"); level == RiskHigh || level == RiskCritical {
		factors = append(factors, "Problemas legais graves")
		score += weightLegal
	}

	if score > maxRiskScore {
		score = maxRiskScore
	}

	level, recommendation := classifyRisk(score)
	if factors == nil {
		factors = []string{}
	}
	return RiskAnalysis{
		RiskScore:      score,
		RiskLevel:      level,
		RiskFactors:    factors,
		Recommendation: recommendation,
		NextSteps:      nextSteps(level),
	}
}

func classifyRisk(score int) (level, recommendation string) {
	switch {
	case score >= thresholdCritical:
		return RiskCritical, "🚫 EVITAR - Não recomendamos fazer negócios com este lojista"
	case score >= thresholdHigh:
		return RiskHigh, "🚨 CUIDADO - Investigar mais profundamente antes de negociar"
	case score >= thresholdMedium:
		return RiskMedium, "⚠️ CAUTELA - Prosseguir com verificações adicionais"
	default:
		return RiskLow, "✅ APARENTEMENTE SEGURO - Prosseguir com cautela normal"
	}
}

// nextSteps is a static lookup keyed by tier; which factors fired does not
// change the list.
func nextSteps(level string) []string {
	switch level {
	case RiskCritical:
		return []string{
			"Evitar qualquer negociação",
			"Procurar outros lojistas",
			"Se já houve negociação, consultar advogado",
		}
	case RiskHigh:
		return []string{
			"Solicitar documentação adicional",
			"Verificar credenciamento em órgãos do setor",
			"Visitar fisicamente o estabelecimento",
			"Consultar outros clientes recentes",
		}
	case RiskMedium:
		return []string{
			"Verificar documentos do veículo cuidadosamente",
			"Pedir referências de outros clientes",
			"Fazer vistoria técnica independente",
			"Negociar garantias adicionais",
		}
	default:
		return []string{
			"Verificar documentação padrão",
			"Fazer test drive completo",
			"Confirmar procedência do veículo",
			"Manter cautela normal na compra",
		}
	}
}
