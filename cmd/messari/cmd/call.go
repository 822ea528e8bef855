package cmd

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/prometa-ai/messari-go/pkg/messari"
)

var (
	flagPathJSON  string
	flagQueryJSON string
	flagBodyJSON  string
)

var callCmd = &cobra.Command{
	Use:   "call <key>",
	Short: "Call an endpoint and pretty-print the result",
	Long: `Call invokes the named endpoint. Path and query parameters are
passed as JSON objects:

  messari call exchanges.get --path '{"exchangeIdentifier": "binance"}'
  messari call assets.list --query '{"limit": 5, "search": "bit"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()
		return runCall(cmd.Context(), client, args[0])
	},
}

func init() {
	callCmd.Flags().StringVar(&flagPathJSON, "path", "", `path params JSON (e.g. '{"exchangeIdentifier": "binance"}')`)
	callCmd.Flags().StringVar(&flagQueryJSON, "query", "", `query params JSON (e.g. '{"limit": 5}')`)
	callCmd.Flags().StringVar(&flagBodyJSON, "body", "", "request body JSON for POST endpoints")
	rootCmd.AddCommand(callCmd)
}

func runCall(ctx context.Context, client *messari.Client, key string) error {
	pathParams, err := parseJSONObject("path", flagPathJSON)
	if err != nil {
		return err
	}
	queryParams, err := parseJSONObject("query", flagQueryJSON)
	if err != nil {
		return err
	}
	body, err := parseJSONObject("body", flagBodyJSON)
	if err != nil {
		return err
	}

	opts := []messari.CallOption{
		messari.WithPathParams(pathParams),
		messari.WithQueryParams(queryParams),
	}
	if len(body) > 0 {
		opts = append(opts, messari.WithBody(body))
	}

	data, err := client.Call(ctx, key, opts...)
	if err != nil {
		return err
	}

	fmt.Println(messari.Pretty(data))
	return nil
}

// parseJSONObject decodes a flag value into a map. An empty value yields an
// empty map; anything other than a JSON object is rejected.
func parseJSONObject(label, value string) (map[string]any, error) {
	if value == "" {
		return map[string]any{}, nil
	}
	var parsed map[string]any
	if err := sonic.Unmarshal([]byte(value), &parsed); err != nil {
		return nil, fmt.Errorf(`%s must be a JSON object (e.g. '{"key": "value"}'): %w`, label, err)
	}
	if parsed == nil {
		parsed = map[string]any{}
	}
	return parsed, nil
}
