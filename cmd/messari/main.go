// Command messari is an interactive playground for the Messari API client.
// It lists registered endpoints, describes their schemas, and calls them
// with JSON-encoded parameters.
package main

import "github.com/prometa-ai/messari-go/cmd/messari/cmd"

func main() {
	cmd.Execute()
}
