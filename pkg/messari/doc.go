// Package messari is a thin client for the Messari cryptocurrency data API.
// It pairs a declarative endpoint registry with a generic dispatcher:
//
//	client, err := messari.New(messari.DefaultConfig())
//	if err != nil {
//		// handle missing API key
//	}
//	defer client.Close()
//
//	data, err := client.Call(ctx, "assets.list",
//		messari.WithQueryParam("limit", 5),
//	)
//
// Responses are passed through as decoded JSON without schema validation.
// Failures surface as typed errors the caller can branch on with errors.As
// or the Is* helpers.
//
// Messari API documentation: https://docs.messari.io
package messari
