// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the revision-engine CLI. The CLI
// wraps the quality-gated revision engine: assess scores a section,
// revise runs the full assess-suggest-revise cycle, and providers reports
// the configured backend chain.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/revision-engine/internal/secrets"
	"github.com/pdiddy/revision-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the revision-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "revision-engine",
	Short: "Quality-gated revision of academic text sections",
	Long: `revision-engine scores academic section text across weighted quality
dimensions (clarity, coherence, academic tone, completeness, citation
quality), turns low scores into revision directives, and drives a bounded
rewrite loop against a fallback chain of generation backends. The final
chain entry is always a deterministic rewriter, so a cycle completes even
with no API access.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./revision-engine.yaml or ~/.config/revision-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("revision-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "revision-engine"))
		}
	}

	viper.SetEnvPrefix("REVISION_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// providerChain builds the fallback chain from secrets and config. API
// backends join only when a key is available; the deterministic rewriter
// always anchors the chain.
func providerChain() []types.ProviderSettings {
	timeout := viper.GetDuration("provider_timeout")
	retries := viper.GetInt("provider_max_retries")

	var chain []types.ProviderSettings
	if key := secrets.Resolve(loadedSecrets, secrets.KeyAnthropic, secrets.EnvAnthropic); key != "" {
		chain = append(chain, types.ProviderSettings{
			ID:         types.ProviderAnthropic,
			Model:      viper.GetString("anthropic_model"),
			APIKey:     key,
			Timeout:    timeout,
			MaxRetries: retries,
		})
	}
	if key := secrets.Resolve(loadedSecrets, secrets.KeyOpenAI, secrets.EnvOpenAI); key != "" {
		chain = append(chain, types.ProviderSettings{
			ID:         types.ProviderOpenAI,
			Model:      viper.GetString("openai_model"),
			APIKey:     key,
			Timeout:    timeout,
			MaxRetries: retries,
		})
	}
	chain = append(chain, types.ProviderSettings{ID: types.ProviderDeterministic, Timeout: timeout})
	return chain
}

// engineConfig assembles the engine configuration from config file
// settings; per-command flags override the cycle thresholds.
func engineConfig() types.EngineConfig {
	cfg := types.EngineConfig{
		Orchestrator: types.OrchestratorConfig{
			Providers: providerChain(),
			Health: types.HealthConfig{
				FailureThreshold: viper.GetInt("health_failure_threshold"),
				Cooldown:         viper.GetDuration("health_cooldown"),
			},
		},
		Cycle: types.CycleConfig{
			AcceptanceThreshold:   viper.GetFloat64("acceptance_threshold"),
			MinDimensionThreshold: viper.GetFloat64("min_dimension_threshold"),
			MaxIterations:         viper.GetInt("max_iterations"),
			Epsilon:               viper.GetFloat64("epsilon"),
		},
		Assess: types.AssessConfig{
			Tolerance: viper.GetFloat64("completeness_tolerance"),
		},
		EventsDB: viper.GetString("events_db"),
	}
	cfg.Cycle.Normalize()
	cfg.Orchestrator.Health.Normalize()
	return cfg
}

// readInput returns the section text from path, or stdin when path is
// empty or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// parseSection validates the --section flag.
func parseSection(raw string) (types.SectionType, error) {
	section := types.SectionType(raw)
	if !section.Valid() {
		return "", fmt.Errorf("unknown section type %q (want one of %v)", raw, types.SectionTypes())
	}
	return section, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
