package modules

import "fmt"

// SystemPrompt primes the model as a Brazilian company investigator with web
// search. Kept in Portuguese to match the market the checks target.
const SystemPrompt = `Você é um especialista em investigação de empresas brasileiras e detecção de fraudes no setor automotivo com capacidade de busca web.

SUAS CAPACIDADES:
- Busca em tempo real de informações sobre empresas brasileiras
- Acesso a dados públicos sobre CNPJ, Receita Federal, Reclame Aqui
- Pesquisa de processos judiciais e problemas legais
- Análise de notícias e reportagens recentes
- Verificação de reputação online atualizada

INSTRUÇÕES CRÍTICAS PARA ANÁLISE:
1. Busque informações ATUALIZADAS e REAIS sobre a empresa
2. Forneça dados DETALHADOS e ESPECÍFICOS (não genéricos)
3. Inclua DATAS, VALORES e NÚMEROS concretos quando disponíveis
4. Retorne SEMPRE em formato JSON válido e completo
5. Para campos sem informação, use "N/A" ou arrays vazios []
6. Liste as FONTES que seriam consultadas em uma busca real
7. Seja ESPECÍFICO sobre problemas encontrados e riscos identificados`

// StatusPrompt asks for the official Receita Federal registration picture.
func StatusPrompt(formattedCNPJ string) string {
	return fmt.Sprintf(`Verifique a situação oficial do CNPJ %s como lojista de veículos.

CONSULTAR:
• Situação na Receita Federal (ativo/inativo, CNAE)
• Dados da empresa (razão social, endereço, sócios)
• Porte empresarial e capital social
• Adequação do CNAE para comércio de veículos
• Tempo de atividade e estabilidade

RETORNE JSON:
{
  "cnpj": "%s",
  "razao_social": "razão social oficial",
  "nome_fantasia": "nome fantasia",
  "situacao_cadastral": "ATIVA/BAIXADA/SUSPENSA",
  "data_abertura": "DD/MM/AAAA",
  "atividade_principal": "CNAE e descrição",
  "capital_social": "valor ou N/A",
  "endereco": "endereço da empresa",
  "socios": ["sócio 1", "sócio 2"],
  "porte_empresa": "microempresa/pequena/média/grande",
  "anos_funcionamento": "tempo em anos",
  "adequacao_cnae": "sim/não - se CNAE é compatível com veículos",
  "red_flags": ["problema identificado 1"],
  "status_summary": "resumo da situação"
}`, formattedCNPJ, formattedCNPJ)
}

// ReputationPrompt asks for consumer-facing reputation signals.
func ReputationPrompt(formattedCNPJ, companyName string) string {
	target := formattedCNPJ
	if companyName != "" {
		target = fmt.Sprintf("%s (%s)", formattedCNPJ, companyName)
	}
	return fmt.Sprintf(`Analise a reputação da empresa CNPJ %s como lojista/concessionária de veículos.

BUSCAR INFORMAÇÕES SOBRE:
• Reclamações de clientes (Reclame Aqui, Google Reviews)
• Problemas específicos com veículos (documentação, garantias, fraudes)
• Perfil da empresa (porte, segmento, estrutura)
• Indicadores de risco ou confiabilidade

RETORNE JSON:
{
  "cnpj": "%s",
  "company_name": "nome da empresa",
  "reputation_summary": "resumo da reputação",
  "reclame_aqui_score": "nota ou N/A",
  "google_rating": "avaliação ou N/A",
  "complaint_count": "número de reclamações ou N/A",
  "main_issues": ["problema1", "problema2"],
  "business_size": "pequena/média/grande ou N/A",
  "red_flags": ["alerta1", "alerta2"],
  "reputation_score": "0-100",
  "sources_checked": ["fonte1", "fonte2"]
}`, target, formattedCNPJ)
}

// LegalPrompt asks for lawsuits, investigations and sanctions.
func LegalPrompt(formattedCNPJ, companyName string) string {
	target := formattedCNPJ
	if companyName != "" {
		target = fmt.Sprintf("%s (%s)", formattedCNPJ, companyName)
	}
	return fmt.Sprintf(`Busque questões legais da empresa CNPJ %s como lojista de veículos.

VERIFICAR:
• Processos judiciais (criminais, cíveis, trabalhistas)
• Investigações do Ministério Público
• Multas e sanções (Procon, DETRAN, Receita)
• Fraudes relacionadas a veículos (documentação, estelionato)
• Operações policiais ou reportagens investigativas

RETORNE JSON:
{
  "cnpj": "%s",
  "company_name": "nome da empresa",
  "legal_summary": "resumo das questões legais",
  "criminal_cases": ["processo criminal 1"],
  "civil_cases": ["processo cível 1"],
  "investigations": ["investigação 1"],
  "sanctions": ["multa/sanção 1"],
  "fraud_indicators": ["indicador de fraude 1"],
  "risk_level": "BAIXO/MÉDIO/ALTO/CRÍTICO",
  "sources_found": ["fonte consultada 1"]
}`, target, formattedCNPJ)
}

// ImagesPrompt asks for verifiable images and social presence of the store.
func ImagesPrompt(formattedCNPJ, companyName string) string {
	searchTerms := "CNPJ " + formattedCNPJ
	if companyName != "" {
		searchTerms += fmt.Sprintf(" %q", companyName)
	}
	displayName := companyName
	if displayName == "" {
		displayName = "N/A"
	}
	return fmt.Sprintf(`Busque e identifique imagens relevantes da empresa com %s especificamente como LOJISTA/CONCESSIONÁRIA DE VEÍCULOS.

TIPOS DE IMAGENS PRIORITÁRIAS:
1. Fachada da loja: entrada principal, letreiros, identificação visual
2. Logotipo/Marca: logo oficial, identidade visual da empresa
3. Interior da loja: showroom, área de vendas, recepção
4. Equipe/Staff: vendedores, gerentes, equipe comercial
5. Veículos em exposição: carros no pátio, showroom interno
6. Endereço/Localização: vista aérea, mapa, localização física
7. Redes Sociais: fotos do Instagram, Facebook da loja

FONTES: Google Images/Maps, Instagram/Facebook oficial, site da empresa, Google Meu Negócio, LinkedIn, Mercado Livre/OLX, Webmotors/iCarros.

IMPORTANTE: foque em imagens REAIS e VERIFICÁVEIS, identifique inconsistências visuais e verifique se as imagens batem com o endereço oficial.

Retorne em formato JSON com esta estrutura exata:
{
  "status": "success",
  "cnpj": "%s",
  "company_name": "%s",
  "business_images": {
    "facade": {"url": "URL ou N/A", "description": "...", "source": "...", "verified": true},
    "logo": {"url": "URL ou N/A", "description": "...", "source": "...", "verified": true},
    "interior": {"url": "URL ou N/A", "description": "...", "source": "...", "verified": true},
    "staff": {"url": "URL ou N/A", "description": "...", "source": "...", "verified": true},
    "vehicles": {"url": "URL ou N/A", "description": "...", "source": "...", "verified": true},
    "location": {"url": "URL ou N/A", "description": "...", "source": "...", "verified": true}
  },
  "image_analysis": {
    "total_images_found": 0,
    "verified_images": 0,
    "legitimacy_indicators": [],
    "red_flags": [],
    "visual_consistency": "ALTA/MÉDIA/BAIXA",
    "business_appearance": "PROFISSIONAL/BÁSICO/DUVIDOSO/N/A"
  },
  "social_media_presence": {
    "instagram": {"url": "...", "followers": "...", "posts": "...", "recent_activity": "ATIVO/INATIVO/N/A"},
    "facebook": {"url": "...", "likes": "...", "reviews": "...", "recent_activity": "ATIVO/INATIVO/N/A"}
  }
}`, searchTerms, formattedCNPJ, displayName)
}

// PromptFor builds the prompt for a check kind.
func PromptFor(kind, formattedCNPJ, companyName string) string {
	switch kind {
	case KindStatus:
		return StatusPrompt(formattedCNPJ)
	case KindReputation:
		return ReputationPrompt(formattedCNPJ, companyName)
	case KindLegal:
		return LegalPrompt(formattedCNPJ, companyName)
	case KindImages:
		return ImagesPrompt(formattedCNPJ, companyName)
	}
	return ""
}
