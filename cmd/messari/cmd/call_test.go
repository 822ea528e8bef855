package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prometa-ai/messari-go/pkg/messari"
)

func TestParseJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    map[string]any
		wantErr bool
	}{
		{"empty", "", map[string]any{}, false},
		{"object", `{"limit": 5}`, map[string]any{"limit": float64(5)}, false},
		{"null", "null", map[string]any{}, false},
		{"array", `[1, 2]`, nil, true},
		{"scalar", `"x"`, nil, true},
		{"garbage", `{nope`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseJSONObject("query", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "query")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config", &messari.ConfigError{Message: "no key"}, "CONFIG_ERROR"},
		{"unknown_endpoint", &messari.UnknownEndpointError{Key: "x"}, "UNKNOWN_ENDPOINT"},
		{"missing_path_param", &messari.MissingPathParamError{Endpoint: "a", Param: "b"}, "MISSING_PATH_PARAM"},
		{"auth", &messari.AuthError{APIError: messari.APIError{StatusCode: 401}}, "AUTH_ERROR"},
		{"rate_limit", &messari.RateLimitError{APIError: messari.APIError{StatusCode: 429}}, "RATE_LIMIT"},
		{"network", &messari.APIError{Kind: messari.KindNetwork}, "NETWORK_ERROR"},
		{"malformed", &messari.APIError{Kind: messari.KindMalformedResponse}, "MALFORMED_RESPONSE"},
		{"http", &messari.APIError{Kind: messari.KindHTTP, StatusCode: 500}, "HTTP_ERROR"},
		{"plain", errors.New("boom"), "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorKind(tt.err))
		})
	}
}
