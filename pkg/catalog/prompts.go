package catalog

import "fmt"

// PromptArgument describes one argument of a prompt template.
type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// PromptTemplate is a ready-made investigation prompt.
type PromptTemplate struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Arguments   []PromptArgument `json:"arguments"`
}

var prompts = []PromptTemplate{
	{
		Name:        "investigate_dealer",
		Description: "Investigação completa de lojista suspeito de fraude",
		Arguments: []PromptArgument{
			{Name: "cnpj", Description: "CNPJ do lojista a ser investigado", Required: true},
			{Name: "company_name", Description: "Nome da empresa (opcional, melhora a busca)", Required: false},
			{Name: "concern", Description: "Motivo da suspeita ou preocupação específica", Required: false},
		},
	},
	{
		Name:        "pre_purchase_check",
		Description: "Verificação rápida antes de comprar veículo",
		Arguments: []PromptArgument{
			{Name: "cnpj", Description: "CNPJ do lojista", Required: true},
			{Name: "vehicle_info", Description: "Informações sobre o veículo (opcional)", Required: false},
		},
	},
}

// ListPrompts returns the prompt template catalog.
func ListPrompts() []PromptTemplate {
	out := make([]PromptTemplate, len(prompts))
	copy(out, prompts)
	return out
}

// RenderPrompt fills a template with its arguments.
func RenderPrompt(name string, args map[string]string) (string, error) {
	switch name {
	case "investigate_dealer":
		concern := args["concern"]
		if concern == "" {
			concern = "possível fraude"
		}
		companyName := args["company_name"]
		if companyName == "" {
			companyName = "A investigar"
		}
		return fmt.Sprintf(`Você é um especialista em detecção de fraude comercial no Brasil. Investigue completamente o lojista/concessionária com CNPJ %s devido a suspeita de %s.

ASPECTOS CRÍTICOS A VERIFICAR:
- Situação legal atual (CNPJ ativo, processos)
- Histórico de reclamações e fraudes
- Reputação online e offline
- Padrões suspeitos de comportamento
- Credibilidade comercial no setor

FORMATO DA RESPOSTA:
- **Resumo Executivo**: status geral do lojista
- **Red Flags Encontrados**: problemas identificados
- **Nível de Risco**: BAIXO/MÉDIO/ALTO/CRÍTICO
- **Recomendação**: ação específica recomendada
- **Próximos Passos**: o que fazer em seguida

Nome da empresa: %s

Seja rigoroso na análise e sempre priorize a proteção do consumidor.`, args["cnpj"], concern, companyName), nil

	case "pre_purchase_check":
		vehicleContext := " para compra de veículo"
		if info := args["vehicle_info"]; info != "" {
			vehicleContext = fmt.Sprintf(" para compra do veículo: %s", info)
		}
		return fmt.Sprintf(`Realize uma verificação rápida de segurança do lojista CNPJ %s%s.

VERIFICAÇÕES ESSENCIAIS:
1. Confirmar se a empresa está ativa na Receita Federal
2. Verificar reclamações básicas de consumidores
3. Identificar red flags críticos que impedem a compra

RESPONDA APENAS:
✅ PROSSEGUIR - se não há impedimentos críticos
⚠️ CAUTELA - se há alertas que requerem atenção
🚫 EVITAR - se há problemas graves

Inclua o motivo principal da recomendação, o principal alerta encontrado
(se houver) e uma ação imediata recomendada. Seja direto e prático.`, args["cnpj"], vehicleContext), nil
	}
	return "", fmt.Errorf("prompt não encontrado: %s", name)
}
