package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/TeneoProtocolAI/teneo-agent-sdk/pkg/agent"
	"github.com/spf13/cobra"

	"dealershield/modules"
)

const agentUsage = "Comandos disponíveis: validate <cnpj>, status <cnpj>, reputation <cnpj> [empresa], legal <cnpj> [empresa], images <cnpj> [empresa], complete <cnpj> [empresa], costs"

// dealerCheckAgent answers network tasks with the same checks the CLI runs.
type dealerCheckAgent struct {
	app *app
}

func (a *dealerCheckAgent) ProcessTask(ctx context.Context, task string) (string, error) {
	slog.Info("processing agent task", "task", task)

	task = strings.TrimSpace(task)
	task = strings.TrimPrefix(task, "/")
	parts := strings.Fields(task)
	if len(parts) == 0 {
		return agentUsage, nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	cnpj := ""
	empresa := ""
	if len(args) > 0 {
		cnpj = args[0]
		empresa = strings.Join(args[1:], " ")
	}

	switch cmd {
	case "validate":
		if cnpj == "" {
			return "Uso: validate <cnpj>", nil
		}
		valid := modules.ValidateCNPJ(cnpj)
		result := map[string]any{"cnpj": cnpj, "valid": valid}
		if valid {
			result["formatted"] = modules.FormatCNPJ(cnpj)
		}
		return taskJSON(result)
	case "status":
		if cnpj == "" {
			return "Uso: status <cnpj>", nil
		}
		return taskResult(a.app.checker.VerifyStatus(ctx, cnpj))
	case "reputation":
		if cnpj == "" {
			return "Uso: reputation <cnpj> [empresa]", nil
		}
		return taskResult(a.app.checker.CheckReputation(ctx, cnpj, empresa))
	case "legal":
		if cnpj == "" {
			return "Uso: legal <cnpj> [empresa]", nil
		}
		return taskResult(a.app.checker.CheckLegalIssues(ctx, cnpj, empresa))
	case "images":
		if cnpj == "" {
			return "Uso: images <cnpj> [empresa]", nil
		}
		return taskResult(a.app.checker.SearchBusinessImages(ctx, cnpj, empresa))
	case "complete":
		if cnpj == "" {
			return "Uso: complete <cnpj> [empresa]", nil
		}
		res, err := a.app.checker.ComprehensiveCheck(ctx, cnpj, empresa)
		if err != nil {
			return "", err
		}
		return taskJSON(res)
	case "costs":
		return taskJSON(a.app.tracker.Summary())
	default:
		return fmt.Sprintf("Comando desconhecido '%s'. %s", cmd, agentUsage), nil
	}
}

func taskResult(rec modules.Record, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return taskJSON(rec)
}

func taskJSON(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func newAgentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agent",
		Short: "Executa como agente na rede Teneo",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.Close()

			config := agent.DefaultConfig()
			config.Name = "DealerShield"
			config.Description = "DealerShield verifica lojistas de veículos brasileiros por CNPJ: situação cadastral, reputação, processos e risco de fraude."
			config.Capabilities = []string{
				"cnpj-validation",
				"registration-status-check",
				"reputation-analysis",
				"legal-issues-search",
				"business-image-search",
				"fraud-risk-scoring",
			}
			config.PrivateKey = os.Getenv("PRIVATE_KEY")
			config.NFTTokenID = os.Getenv("NFT_TOKEN_ID")
			config.OwnerAddress = os.Getenv("OWNER_ADDRESS")
			config.RateLimitPerMinute = envInt("RATE_LIMIT_PER_MINUTE", 0)

			enhancedAgent, err := agent.NewEnhancedAgent(&agent.EnhancedAgentConfig{
				Config:       config,
				AgentHandler: &dealerCheckAgent{app: a},
			})
			if err != nil {
				return fmt.Errorf("creating agent: %w", err)
			}

			slog.Info("starting agent", "name", config.Name)
			go enhancedAgent.Run()

			<-cmd.Context().Done()
			slog.Info("agent stopped")
			return nil
		},
	}
}
