package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prometa-ai/messari-go/pkg/messari"
)

var flagPrefix string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered endpoints",
	Long: `List prints every endpoint key in the registry in registration
order, together with its HTTP method, path template and description.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagPrefix, "prefix", "", `endpoint key prefix filter (e.g. "assets.")`)
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	registry := messari.DefaultRegistry()

	keys := registry.Keys()
	if flagPrefix != "" {
		filtered := keys[:0]
		for _, k := range keys {
			if strings.HasPrefix(k, flagPrefix) {
				filtered = append(filtered, k)
			}
		}
		keys = filtered
	}

	if len(keys) == 0 {
		fmt.Println("No endpoints found (prefix filter may be too narrow).")
		return nil
	}

	fmt.Println("Available Messari endpoints:")
	for _, k := range keys {
		ep, err := registry.Get(k)
		if err != nil {
			return err
		}
		fmt.Printf(" - %s [%s %s]\n", ep.Key, ep.Method, ep.Path)
		if ep.Description != "" {
			fmt.Printf("   %s\n", ep.Description)
		}
	}
	return nil
}
