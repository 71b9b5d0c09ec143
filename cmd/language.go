package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/sakha-ai/sakha-tui/internal/config"
	"github.com/sakha-ai/sakha-tui/internal/i18n"
)

var languageCmd = &cobra.Command{
	Use:   "language",
	Short: "List the supported interface languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		current := cfg.PersistedLanguage()
		for _, lang := range i18n.SupportedLanguages() {
			marker := "  "
			if lang.Code == current {
				marker = "* "
			}
			fmt.Printf("%s%s %s (%s)\n", marker, lang.Flag, lang.Name, lang.Code)
		}
		return nil
	},
}

var languageSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Pick and persist the interface language",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		languages := i18n.SupportedLanguages()
		prompt := promptui.Select{
			Label: "Select language",
			Items: languages,
			Templates: &promptui.SelectTemplates{
				Label:    "{{ . }}",
				Active:   "▸ {{ .Flag }} {{ .Name | cyan }} ({{ .Code }})",
				Inactive: "  {{ .Flag }} {{ .Name }} ({{ .Code }})",
				Selected: "{{ .Flag }} {{ .Name | green }}",
			},
			Size: len(languages),
		}

		idx, _, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("selection cancelled: %w", err)
		}

		code := languages[idx].Code
		if err := cfg.SetLanguage(code); err != nil {
			return fmt.Errorf("failed to save language: %w", err)
		}

		fmt.Printf("Language set to %s\n", code)
		return nil
	},
}

func init() {
	languageCmd.AddCommand(languageSetCmd)
	rootCmd.AddCommand(languageCmd)
}
