package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/prometa-ai/messari-go/pkg/messari"
)

// runInteractive drives a read-eval loop over the list, describe and call
// operations. It exits on "0", EOF, or context cancellation.
func runInteractive(ctx context.Context, client *messari.Client) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Println("\n=== Messari Playground ===")
		fmt.Println("1) List endpoints")
		fmt.Println("2) Describe endpoint schema")
		fmt.Println("3) Call endpoint")
		fmt.Println("0) Exit")

		choice, ok := prompt(scanner, "Your choice (0-3): ")
		if !ok {
			return nil
		}

		switch choice {
		case "0":
			fmt.Println("Exiting...")
			return nil

		case "1":
			prefix, ok := prompt(scanner, "Optional prefix (e.g. 'assets.' / leave blank): ")
			if !ok {
				return nil
			}
			interactiveList(client.Registry(), prefix)

		case "2":
			key, ok := prompt(scanner, "Endpoint name (e.g. assets.list): ")
			if !ok {
				return nil
			}
			if key == "" {
				printMenuError("endpoint name cannot be empty")
				continue
			}
			ep, err := client.Registry().Describe(key)
			if err != nil {
				printMenuError(err.Error())
				continue
			}
			printEndpoint(ep)

		case "3":
			if !interactiveCall(ctx, client, scanner) {
				return nil
			}

		default:
			printMenuError("invalid choice")
		}
	}
}

func interactiveList(registry *messari.Registry, prefix string) {
	keys := registry.Keys()
	shown := 0
	fmt.Println("Available Messari endpoints:")
	for _, k := range keys {
		if prefix != "" && !strings.HasPrefix(k, prefix) {
			continue
		}
		ep, err := registry.Get(k)
		if err != nil {
			continue
		}
		fmt.Printf(" - %s [%s %s]\n", ep.Key, ep.Method, ep.Path)
		shown++
	}
	if shown == 0 {
		fmt.Println("No endpoints found (prefix filter may be too narrow).")
	}
}

// interactiveCall collects a key plus JSON parameters and performs the
// call. It returns false when stdin is exhausted.
func interactiveCall(ctx context.Context, client *messari.Client, scanner *bufio.Scanner) bool {
	key, ok := prompt(scanner, "Endpoint name (e.g. assets.list): ")
	if !ok {
		return false
	}
	if key == "" {
		printMenuError("endpoint name cannot be empty")
		return true
	}

	fmt.Println(`Enter JSON for path params (e.g. {"exchangeIdentifier": "binance"}) or leave blank:`)
	pathJSON, ok := prompt(scanner, "> ")
	if !ok {
		return false
	}
	fmt.Println(`Enter JSON for query params (e.g. {"limit": 5}) or leave blank:`)
	queryJSON, ok := prompt(scanner, "> ")
	if !ok {
		return false
	}
	fmt.Println("Enter JSON for body params (for POST endpoints) or leave blank:")
	bodyJSON, ok := prompt(scanner, "> ")
	if !ok {
		return false
	}

	pathParams, err := parseJSONObject("path", pathJSON)
	if err != nil {
		printMenuError(err.Error())
		return true
	}
	queryParams, err := parseJSONObject("query", queryJSON)
	if err != nil {
		printMenuError(err.Error())
		return true
	}
	body, err := parseJSONObject("body", bodyJSON)
	if err != nil {
		printMenuError(err.Error())
		return true
	}

	opts := []messari.CallOption{
		messari.WithPathParams(pathParams),
		messari.WithQueryParams(queryParams),
	}
	if len(body) > 0 {
		opts = append(opts, messari.WithBody(body))
	}

	fmt.Printf("[INFO] Calling %s...\n", key)
	data, err := client.Call(ctx, key, opts...)
	if err != nil {
		printMenuError(fmt.Sprintf("%s: %s", errorKind(err), err))
		return true
	}

	fmt.Println("[INFO] Response (pretty-printed, truncated):")
	fmt.Println(messari.Pretty(data))
	return true
}

// prompt prints a label and reads one trimmed line. ok is false on EOF.
func prompt(scanner *bufio.Scanner, label string) (line string, ok bool) {
	fmt.Print(label)
	if !scanner.Scan() {
		fmt.Println()
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func printMenuError(msg string) {
	fmt.Fprintf(os.Stderr, "[ERROR] %s\n", msg)
}
