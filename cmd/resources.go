package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sakha-ai/sakha-tui/internal/api"
	"github.com/sakha-ai/sakha-tui/internal/config"
	"github.com/sakha-ai/sakha-tui/internal/markup"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Show the backend's mental health support resources",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if serverURL != "" {
			cfg.ServerURL = serverURL
		}

		client := api.NewClient(cfg.ServerURL)
		resources, err := client.Resources(context.Background())
		if err != nil {
			return fmt.Errorf("failed to fetch resources: %w", err)
		}

		fmt.Println(markup.Render(markup.Format(resourcesText(resources)), 80))
		return nil
	},
}

// resourcesText flattens the resource document into the markup source
// dialect: one heading per section, one list item per entry.
func resourcesText(resources map[string]any) string {
	sections := make([]string, 0, len(resources))
	for name := range resources {
		sections = append(sections, name)
	}
	sort.Strings(sections)

	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("## " + sectionTitle(section) + "\n")

		switch value := resources[section].(type) {
		case []any:
			for _, entry := range value {
				b.WriteString("- " + entryText(entry) + "\n")
			}
		case string:
			b.WriteString(value + "\n")
		default:
			b.WriteString(fmt.Sprintf("%v\n", value))
		}
	}
	return b.String()
}

func sectionTitle(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func entryText(entry any) string {
	fields, ok := entry.(map[string]any)
	if !ok {
		return fmt.Sprintf("%v", entry)
	}

	var parts []string
	if name, ok := fields["name"].(string); ok {
		parts = append(parts, "**"+name+"**")
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		if key != "name" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%v", fields[key]))
	}

	return strings.Join(parts, ": ")
}

func init() {
	rootCmd.AddCommand(resourcesCmd)
}
