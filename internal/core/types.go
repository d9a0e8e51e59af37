package core

import "time"

// CheckSource identifies which external source produced a result.
type CheckSource string

const (
	SourceTrademark CheckSource = "trademark"
	SourceHandle    CheckSource = "handle"
)

// TrademarkStatus is the outcome of a registry search.
type TrademarkStatus string

const (
	TrademarkAvailable   TrademarkStatus = "available"
	TrademarkUnavailable TrademarkStatus = "unavailable"
	TrademarkError       TrademarkStatus = "error"
)

// HandleStatus is the outcome of a profile lookup. HandleMultiple marks a
// result that carries one nested entry per derived variation.
type HandleStatus string

const (
	HandleAvailable   HandleStatus = "available"
	HandleUnavailable HandleStatus = "unavailable"
	HandleAmbiguous   HandleStatus = "unknown"
	HandleMultiple    HandleStatus = "multiple"
)

// TrademarkRecord is one registry process extracted from a results table.
// ProcessNumber is only ever populated from a cell whose digits form a
// sequence of at least eight characters; rows without one are discarded.
type TrademarkRecord struct {
	BrandName     string `json:"brand_name"`
	ProcessNumber string `json:"process_number"`
	Situation     string `json:"situation"`
}

// TrademarkResult reports the registry side of a check.
// Records is non-empty only when Status is TrademarkUnavailable; an error
// status carries a human-readable cause in Details and never records.
type TrademarkResult struct {
	Status  TrademarkStatus   `json:"status"`
	Details string            `json:"details,omitempty"`
	Records []TrademarkRecord `json:"records,omitempty"`
	Link    string            `json:"link,omitempty"`
}

// ProfileSummary is the minimal display data for a found (or placeholder)
// profile. Present only when a profile was actually located or when the
// profile page is a banned/broken placeholder.
type ProfileSummary struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Details  string `json:"details,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// HandleResult reports the profile side of a check. Status discriminates the
// shape: HandleMultiple carries Variations (one single-variant result each),
// every other status describes the single variant in Variant/Message/Profile.
type HandleResult struct {
	Status     HandleStatus    `json:"status"`
	Variant    string          `json:"variant,omitempty"`
	Message    string          `json:"message,omitempty"`
	Link       string          `json:"link,omitempty"`
	Profile    *ProfileSummary `json:"profile,omitempty"`
	Variations []HandleResult  `json:"variations,omitempty"`
}

// Provenance captures metadata about how a check was resolved.
type Provenance struct {
	CheckID     string    `json:"check_id"`
	RequestedAt time.Time `json:"requested_at"`
	ResolvedAt  time.Time `json:"resolved_at"`
	ToolVersion string    `json:"tool_version,omitempty"`
}

// AvailabilityResult merges both pipelines for one candidate name. It is
// created fresh per check, never cached, and never mutated after return.
type AvailabilityResult struct {
	Name       string           `json:"name"`
	NclClass   *int             `json:"ncl_class,omitempty"`
	Trademark  *TrademarkResult `json:"trademark"`
	Handle     *HandleResult    `json:"handle"`
	Provenance Provenance       `json:"provenance"`
}

// MaxNameLength caps candidate names in bytes. Longer inputs are rejected
// before any browser work starts.
const MaxNameLength = 100

// NclClassValid reports whether class is inside the 1-45 registry range.
func NclClassValid(class int) bool {
	return class >= 1 && class <= 45
}
