package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prometa-ai/messari-go/pkg/messari"
)

var describeCmd = &cobra.Command{
	Use:   "describe <key>",
	Short: "Show the schema of one endpoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ep, err := messari.DefaultRegistry().Describe(args[0])
		if err != nil {
			return err
		}
		printEndpoint(ep)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func printEndpoint(ep messari.Endpoint) {
	fmt.Printf("Endpoint: %s\n", ep.Key)
	fmt.Printf("Method : %s\n", ep.Method)
	fmt.Printf("Path   : %s\n", ep.Path)
	fmt.Println()

	if len(ep.PathParams) > 0 {
		fmt.Println("Path Params:")
		for _, p := range ep.PathParams {
			fmt.Printf("  - %s\n", p)
		}
	} else {
		fmt.Println("Path Params: (none)")
	}
	fmt.Println()

	if len(ep.QueryParams) > 0 {
		fmt.Println("Query Params:")
		for _, p := range ep.QueryParams {
			fmt.Printf("  - %s\n", p)
		}
	} else {
		fmt.Println("Query Params: (none)")
	}
	fmt.Println()

	if ep.Description != "" {
		fmt.Println("Description:")
		fmt.Printf("  %s\n", ep.Description)
	}
}
