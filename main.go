// DealerShield checks Brazilian vehicle dealers for fraud signals using
// web-search backed language model queries keyed by CNPJ.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"dealershield/modules"
	"dealershield/pkg/cache"
	"dealershield/pkg/costs"
	"dealershield/pkg/version"
)

// app holds the wired-up components shared by the check commands.
type app struct {
	checker *modules.Checker
	tracker *costs.Tracker
	store   *costs.Store
	cache   cache.ResponseCache
}

func (a *app) Close() {
	if a.cache != nil {
		a.cache.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
}

// buildApp wires the OpenAI client, cost tracking and the optional response
// cache from the environment.
func buildApp() (*app, error) {
	a := &app{}

	if path := os.Getenv("COSTS_DB_PATH"); path != "" {
		store, err := costs.OpenStore(path)
		if err != nil {
			return nil, fmt.Errorf("opening cost store: %w", err)
		}
		a.store = store
	}
	a.tracker = costs.NewTracker(a.store)

	client, err := modules.NewGPTClient(modules.GPTConfig{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		SearchModel: os.Getenv("OPENAI_SEARCH_MODEL"),
		Model:       os.Getenv("OPENAI_MODEL"),
		MaxTokens:   envInt("OPENAI_MAX_TOKENS", 0),
	}, a.tracker)
	if err != nil {
		a.Close()
		return nil, err
	}

	cfg := modules.CheckerConfig{
		CheckTimeout: time.Duration(envInt("CHECK_TIMEOUT_SECONDS", 0)) * time.Second,
	}
	if path := os.Getenv("CACHE_PATH"); path != "" {
		sqlCache, err := cache.NewSQLiteCache(path)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("opening response cache: %w", err)
		}
		a.cache = sqlCache
		cfg.CacheTTL = time.Duration(envInt("CACHE_TTL_SECONDS", 3600)) * time.Second
	}

	a.checker = modules.NewChecker(client, a.cache, cfg)
	return a, nil
}

func envInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
		slog.Warn("ignoring non-numeric env value", "key", key, "value", s)
	}
	return fallback
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// checkCommand builds one CLI subcommand around a single check kind.
func checkCommand(use, short string, run func(*app, *cobra.Command, string, string) (any, error)) *cobra.Command {
	var empresa string
	cmd := &cobra.Command{
		Use:   use + " CNPJ",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := run(a, cmd, args[0], empresa)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	cmd.Flags().StringVarP(&empresa, "empresa", "e", "", "nome da empresa (melhora a precisão da busca)")
	return cmd
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dealershield",
		Short:         "Verificação de fraude de lojistas de veículos por CNPJ",
		Version:       version.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "validate CNPJ",
		Short: "Valida formato e dígitos verificadores do CNPJ",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			valid := modules.ValidateCNPJ(args[0])
			result := map[string]any{"cnpj": args[0], "valid": valid}
			if valid {
				result["formatted"] = modules.FormatCNPJ(args[0])
			}
			return printJSON(result)
		},
	})

	root.AddCommand(checkCommand("status", "Verifica a situação cadastral na Receita Federal",
		func(a *app, cmd *cobra.Command, cnpj, _ string) (any, error) {
			return a.checker.VerifyStatus(cmd.Context(), cnpj)
		}))
	root.AddCommand(checkCommand("reputation", "Verifica reclamações e reputação online",
		func(a *app, cmd *cobra.Command, cnpj, empresa string) (any, error) {
			return a.checker.CheckReputation(cmd.Context(), cnpj, empresa)
		}))
	root.AddCommand(checkCommand("legal", "Verifica processos judiciais e investigações",
		func(a *app, cmd *cobra.Command, cnpj, empresa string) (any, error) {
			return a.checker.CheckLegalIssues(cmd.Context(), cnpj, empresa)
		}))
	root.AddCommand(checkCommand("images", "Busca imagens e presença visual do lojista",
		func(a *app, cmd *cobra.Command, cnpj, empresa string) (any, error) {
			return a.checker.SearchBusinessImages(cmd.Context(), cnpj, empresa)
		}))
	root.AddCommand(checkCommand("complete", "Análise completa com score de risco consolidado",
		func(a *app, cmd *cobra.Command, cnpj, empresa string) (any, error) {
			return a.checker.ComprehensiveCheck(cmd.Context(), cnpj, empresa)
		}))

	root.AddCommand(&cobra.Command{
		Use:   "costs",
		Short: "Mostra o custo acumulado das consultas",
		RunE: func(cmd *cobra.Command, args []string) error {
			result := map[string]any{}
			if path := os.Getenv("COSTS_DB_PATH"); path != "" {
				store, err := costs.OpenStore(path)
				if err != nil {
					return fmt.Errorf("opening cost store: %w", err)
				}
				defer store.Close()
				total, err := store.PersistedTotal()
				if err != nil {
					return err
				}
				result["persisted_total_usd"] = total
			} else {
				result["persisted_total_usd"] = 0.0
				result["note"] = "COSTS_DB_PATH não configurado; custos não são persistidos entre execuções"
			}
			return printJSON(result)
		},
	})

	root.AddCommand(newServeCmd())
	root.AddCommand(newAgentCmd())
	return root
}

func setupLogging() {
	level := slog.LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	_ = godotenv.Load()
	setupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Erro:", err)
		os.Exit(1)
	}
}
