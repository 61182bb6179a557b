package domain

// SearchMode determines how the free-text name query is matched.
type SearchMode string

const (
	// SearchModeExact matches name by case-sensitive equality.
	SearchModeExact SearchMode = "exact"

	// SearchModeSubstring matches name by case-insensitive contains.
	// Backward-compatible default.
	SearchModeSubstring SearchMode = "substring"

	// SearchModeFullText ranks entries by relevance against the
	// precomputed text index over name, tags and structured fields.
	SearchModeFullText SearchMode = "fulltext"
)

// ParseSearchMode maps a user-supplied mode string to a SearchMode,
// defaulting to substring for unknown or empty values.
func ParseSearchMode(s string) SearchMode {
	switch SearchMode(s) {
	case SearchModeExact, SearchModeSubstring, SearchModeFullText:
		return SearchMode(s)
	default:
		return SearchModeSubstring
	}
}

// Description returns a human-readable description of the mode.
func (m SearchMode) Description() string {
	switch m {
	case SearchModeExact:
		return "exact name match"
	case SearchModeFullText:
		return "ranked full-text search"
	default:
		return "case-insensitive substring match"
	}
}

// DefaultSearchLimit caps results when callers do not specify a limit.
const DefaultSearchLimit = 20

// SearchQuery describes one search against a tenant-scoped set of
// collections. CollectionIDs must come from the access resolver;
// the store never sees caller-supplied identifiers directly.
type SearchQuery struct {
	// CollectionIDs is the tenant-filtered candidate set. Empty means
	// nothing is accessible and short-circuits to an empty result.
	CollectionIDs []string

	// NameQuery is the optional free-text query against entry names
	// (and, in full-text mode, the whole text index).
	NameQuery string

	// Tags filters to entries whose tag set intersects this list.
	Tags []string

	// Filters maps entry_data field names to requested values.
	Filters map[string]string

	// Mode selects the query-construction strategy.
	Mode SearchMode

	// Limit truncates results after ordering. Zero means default.
	Limit int
}

// EffectiveLimit returns the result cap to apply.
func (q SearchQuery) EffectiveLimit() int {
	if q.Limit <= 0 {
		return DefaultSearchLimit
	}
	return q.Limit
}

// ScoredEntry is a search hit with its relevance score. Score is only
// meaningful in full-text mode; exact and substring modes leave it zero
// and return store-native order.
type ScoredEntry struct {
	Entry Entry
	Score float64
}

// QueryStatus classifies a tool-facing query outcome.
type QueryStatus string

const (
	// QueryStatusOK means matches were found.
	QueryStatusOK QueryStatus = "ok"

	// QueryStatusNotAccessible means none of the requested collection
	// names resolve for the tenant.
	QueryStatusNotAccessible QueryStatus = "not_accessible"

	// QueryStatusNoEntries means collections resolved but nothing matched.
	QueryStatusNoEntries QueryStatus = "no_entries"
)

// QueryRequest is the single tool-facing call: collection names plus an
// optional free-text query, tags and named structured filters.
type QueryRequest struct {
	Collections []string
	NameQuery   string
	Tags        []string
	Filters     map[string]string
	Mode        SearchMode
	Limit       int
}

// QueryResponse is a bounded, formatted result list or an explicit
// sentinel; never a raw store error.
type QueryResponse struct {
	Status  QueryStatus
	Message string
	Results []ScoredEntry
}
