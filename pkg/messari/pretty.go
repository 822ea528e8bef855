package messari

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// prettyMaxLen caps Pretty output so huge payloads stay readable in a
// terminal.
const prettyMaxLen = 3000

var prettyAPI = sonic.Config{
	SortMapKeys: true,
}.Froze()

// Pretty renders a decoded payload as indented JSON with stable key
// ordering, truncated at 3000 characters. Display only; no behavioral
// contract beyond readability.
func Pretty(v any) string {
	return PrettyLimit(v, prettyMaxLen)
}

// PrettyLimit is Pretty with a caller-chosen truncation length. A maxLen of
// zero or less disables truncation.
func PrettyLimit(v any, maxLen int) string {
	data, err := prettyAPI.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("<unprintable: %v>", err)
	}
	text := string(data)
	if maxLen > 0 && len(text) > maxLen {
		return text[:maxLen] + "\n... (truncated)"
	}
	return text
}
