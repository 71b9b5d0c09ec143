package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sakha-ai/sakha-tui/internal/app"
	"github.com/sakha-ai/sakha-tui/internal/config"
	"github.com/sakha-ai/sakha-tui/internal/i18n"
)

var (
	serverURL    string
	languageFlag string
)

var rootCmd = &cobra.Command{
	Use:   "sakha",
	Short: "Terminal companion for the Sakha wellness assistant",
	Long: `Sakha is a terminal chat client for the Sakha wellness backend.
It supports multiple interaction modes, localized UI text and crisis
support signaling.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if serverURL != "" {
			cfg.ServerURL = serverURL
		}
		if languageFlag != "" {
			if !i18n.IsSupported(languageFlag) {
				return fmt.Errorf("unsupported language: %s", languageFlag)
			}
			// Session override only, not persisted
			cfg.Language = languageFlag
		}

		return app.NewApplication(cfg).Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "backend server URL (overrides config)")
	rootCmd.Flags().StringVar(&languageFlag, "language", "", "language code for this session (overrides config)")
}
