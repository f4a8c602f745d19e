package catalog

import "fmt"

// Resource is a static markdown document describing how the checker works.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MimeType    string `json:"mime_type"`
	content     string
}

var resources = []Resource{
	{
		URI:         "fraud://sources/search-strategy",
		Name:        "Estratégia de Busca",
		Description: "Como o sistema busca informações sobre lojistas suspeitos",
		MimeType:    "text/markdown",
		content:     searchStrategyDoc,
	},
	{
		URI:         "fraud://sources/indicators",
		Name:        "Indicadores de Fraude",
		Description: "Lista de red flags para identificar lojistas fraudulentos",
		MimeType:    "text/markdown",
		content:     indicatorsDoc,
	},
	{
		URI:         "fraud://guide/usage",
		Name:        "Guia de Uso",
		Description: "Como usar o sistema para verificar lojistas",
		MimeType:    "text/markdown",
		content:     usageGuideDoc,
	},
	{
		URI:         "fraud://legal/disclaimer",
		Name:        "Disclaimer Legal",
		Description: "Informações legais sobre o uso do sistema",
		MimeType:    "text/markdown",
		content:     disclaimerDoc,
	},
}

// ListResources returns the resource catalog, without content.
func ListResources() []Resource {
	out := make([]Resource, len(resources))
	copy(out, resources)
	return out
}

// ReadResource returns the markdown content for a resource URI.
func ReadResource(uri string) (string, error) {
	for _, r := range resources {
		if r.URI == uri {
			return r.content, nil
		}
	}
	return "", fmt.Errorf("recurso não encontrado: %s", uri)
}

const searchStrategyDoc = `# Estratégia de Busca para Lojistas

## Fontes Consultadas via Web Search

### Reputação Online
- **Reclame Aqui**: principal fonte de reclamações de consumidores
- **Google Reviews**: avaliações no Google Maps e Google Meu Negócio
- **Facebook/Instagram**: páginas oficiais e comentários

### Informações Oficiais
- **Receita Federal**: situação cadastral do CNPJ
- **Junta Comercial**: dados de registro empresarial
- **Prefeitura**: alvarás e licenças

### Questões Legais
- **JusBrasil**: processos cíveis, trabalhistas e criminais
- **Ministério Público**: investigações e TACs
- **Procon**: processos administrativos

## Metodologia

1. Busca por CNPJ para identificação precisa da empresa
2. Busca por nome para capturar variações e nomes fantasia
3. Busca contextual com termos do setor automotivo
4. Foco em informações recentes (último ano)

## Critérios de Análise

- Frequência e gravidade das menções negativas
- Recência dos problemas reportados
- Padrão de repetição de comportamentos
- Como a empresa responde às reclamações
`

const indicatorsDoc = `# Indicadores de Fraude em Lojistas

## Indicadores Críticos (evitar imediatamente)
- CNPJ cancelado, suspenso ou baixado
- Processos criminais por estelionato ou fraude
- Investigações do Ministério Público
- Venda de veículos roubados/furtados
- Desaparecimento após recebimento de valores

## Indicadores de Alto Risco
- Nota muito baixa no Reclame Aqui (< 5.0)
- Alto volume de reclamações não respondidas
- Múltiplos processos de consumidores
- Endereço inexistente ou desatualizado
- Preços muito abaixo do mercado

## Indicadores de Médio Risco
- Reclamações sobre atendimento e pós-venda
- Atrasos na entrega de documentação
- Mudanças frequentes de endereço
- Alterações constantes na razão social

## Indicadores Positivos
- Nota alta no Reclame Aqui (> 8.0)
- Responde rapidamente às reclamações
- Presença consolidada no mercado
- Documentação completa e organizada

## Score de Risco
- **0-24**: BAIXO - prosseguir com cautela normal
- **25-49**: MÉDIO - investigar mais antes de negociar
- **50-79**: ALTO - muito cuidado, verificações adicionais
- **80-100**: CRÍTICO - evitar negociação
`

const usageGuideDoc = `# Guia de Uso

## Comandos

1. **validate** — valida formato e dígitos verificadores do CNPJ
2. **status** — situação cadastral na Receita Federal
3. **reputation** — reclamações e avaliações online
4. **legal** — processos judiciais e investigações
5. **images** — fachada, logotipo e presença em redes sociais
6. **complete** — análise completa com score de risco consolidado

## Fluxo Recomendado

1. Validar o CNPJ do lojista
2. Verificar a situação cadastral
3. Rodar a análise completa se os primeiros passos forem OK
4. Ler o risk_level e a recommendation, seguir os next_steps

## Limitações

- Informações dependem do que está disponível online
- Dados podem estar desatualizados
- Não substitui visita presencial, vistoria técnica ou consulta a advogado
`

const disclaimerDoc = `# Disclaimer Legal

Este sistema tem caráter **exclusivamente informativo** e destina-se a
auxiliar na tomada de decisões comerciais.

- As informações são baseadas em dados públicos disponíveis online
- **Não constituem** aconselhamento jurídico
- **Não substituem** due diligence profissional
- **Não garantem** completude ou precisão absoluta

Todas as decisões de compra, venda ou negociação são de exclusiva
responsabilidade do usuário. Para decisões significativas, consulte
profissionais qualificados (advogados, contadores, auditores).

Conformidade: utilizamos apenas dados públicos, em acordo com a LGPD, o
Código de Defesa do Consumidor e o Marco Civil da Internet.
`
