package messari

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_Keys(t *testing.T) {
	r := DefaultRegistry()

	want := []string{
		"assets.list",
		"assets.details",
		"exchanges.list",
		"exchanges.get",
		"news.feed",
		"news.sources",
	}
	assert.Equal(t, want, r.Keys())

	// Same instance and same order on every call.
	assert.Same(t, r, DefaultRegistry())
	assert.Equal(t, want, DefaultRegistry().Keys())
}

func TestDefaultRegistry_PlaceholderInvariant(t *testing.T) {
	r := DefaultRegistry()

	for _, key := range r.Keys() {
		ep, err := r.Get(key)
		require.NoError(t, err)

		found := ep.placeholders()
		assert.ElementsMatch(t, ep.PathParams, found,
			"endpoint %s: path params must exactly match placeholders", key)
	}
}

func TestDefaultRegistry_Descriptors(t *testing.T) {
	r := DefaultRegistry()

	ep, err := r.Get("exchanges.get")
	require.NoError(t, err)
	assert.Equal(t, "GET", ep.Method)
	assert.Equal(t, "/metrics/v1/exchanges/{exchangeIdentifier}", ep.Path)
	assert.Equal(t, []string{"exchangeIdentifier"}, ep.PathParams)
	assert.Empty(t, ep.QueryParams)

	ep, err = r.Get("news.feed")
	require.NoError(t, err)
	assert.Equal(t, "/news/v1/news/feed", ep.Path)
	assert.True(t, ep.allowsQuery("assetIds"))
	assert.True(t, ep.allowsQuery("limit"))
	assert.False(t, ep.allowsQuery("bogus"))

	for _, key := range r.Keys() {
		ep, err := r.Get(key)
		require.NoError(t, err)
		assert.NotEmpty(t, ep.Description, "endpoint %s should be documented", key)
	}
}
