package messari

// Built-in endpoint table for the Messari API. Descriptors are grouped by
// resource; registration order is the order endpoints are listed here, and
// Registry.Keys preserves it.
var messariEndpoints = []Endpoint{
	// Assets: high-level market information for digital assets, including
	// price data, metadata, supply figures and coverage indicators.
	{
		Key:        "assets.list",
		Method:     "GET",
		Path:       "/metrics/v2/assets",
		PathParams: []string{},
		QueryParams: []string{
			"category",        // filter by asset category (e.g. "Cryptocurrency", "Networks")
			"sector",          // filter by sector classification (e.g. "Smart Contract Platform")
			"search",          // full-text search on symbol, name or slug
			"limit",           // page size, default 10
			"page",            // page index, 1-based
			"hasDiligence",    // restrict to assets with diligence coverage
			"hasIntel",        // restrict to assets with intel/events coverage
			"hasMarketData",   // restrict to assets with market data
			"hasNews",         // restrict to assets with tagged news
			"hasProposals",    // restrict to assets with governance proposals
			"hasResearch",     // restrict to assets with research reports
			"hasTokenUnlocks", // restrict to assets with token-unlock data
			"hasFundraising",  // restrict to assets with fundraising data
		},
		Description: "Returns a paginated collection of assets with optional filters for " +
			"category, sector, keyword search and data-coverage flags. Useful for " +
			"discovery lists, scanners and filters.",
	},
	{
		Key:        "assets.details",
		Method:     "GET",
		Path:       "/metrics/v2/assets/details",
		PathParams: []string{},
		QueryParams: []string{
			"assetIDs", // comma-separated list of slugs or UUIDs, max 20
		},
		Description: "Retrieves detailed information for one or more assets (max 20), " +
			"including pricing, metadata, supply figures, returns and other headline " +
			"market metrics.",
	},

	// Exchanges: spot and derivatives exchange metadata with normalized
	// activity metrics.
	{
		Key:        "exchanges.list",
		Method:     "GET",
		Path:       "/metrics/v1/exchanges",
		PathParams: []string{},
		QueryParams: []string{
			"limit",          // page size, default 10
			"pageSize",       // legacy page size parameter, prefer "limit"
			"page",           // page index, 1-based
			"type",           // exchange type, "centralized" or "decentralized"
			"typeRankCutoff", // upper bound for 30-day ranking/score
		},
		Description: "Returns a paginated list of exchanges, with optional filters for " +
			"exchange type and ranking. Provides high-level metadata with recent " +
			"activity indicators.",
	},
	{
		Key:    "exchanges.get",
		Method: "GET",
		Path:   "/metrics/v1/exchanges/{exchangeIdentifier}",
		PathParams: []string{
			"exchangeIdentifier", // exchange slug or unique identifier
		},
		QueryParams: []string{},
		Description: "Fetches a single exchange by its identifier, returning metadata " +
			"and recent volume metrics.",
	},

	// News: aggregated crypto-focused news feed and source directory.
	{
		Key:        "news.feed",
		Method:     "GET",
		Path:       "/news/v1/news/feed",
		PathParams: []string{},
		QueryParams: []string{
			"publishedBefore", // upper bound of publish window, RFC3339 or unix ms
			"publishedAfter",  // lower bound of publish window, RFC3339 or unix ms
			"sourceTypes",     // source type filter ("News", "Blog", "Forum")
			"sourceIds",       // one or more source identifiers
			"assetIds",        // limit to articles tagged with specific assets
			"sort",            // sort by publish time, 1=ASC 2=DESC
			"limit",           // page size, default 10
			"page",            // page index, 0-based
		},
		Description: "Returns a paginated crypto news feed with optional filters for " +
			"time range, source type, source IDs and tagged assets. Ideal for " +
			"dashboards or asset-specific news views.",
	},
	{
		Key:        "news.sources",
		Method:     "GET",
		Path:       "/news/v1/news/sources",
		PathParams: []string{},
		QueryParams: []string{
			"sourceName",  // substring filter on human-readable source name
			"sourceTypes", // source type filter ("News", "Blog", "Forum")
			"limit",       // page size, default 10
			"page",        // page index, 0-based
		},
		Description: "Lists news sources available in the Messari news system, with " +
			"filters for name and type. Useful for building source pickers or " +
			"diagnostics.",
	},
}

var defaultRegistry = func() *Registry {
	r, err := NewRegistry(messariEndpoints...)
	if err != nil {
		panic("messari: invalid built-in endpoint table: " + err.Error())
	}
	return r
}()

// DefaultRegistry returns the built-in Messari endpoint registry. The
// registry is constructed once at package init and shared; it is immutable
// and safe for concurrent use.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
