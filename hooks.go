package rescache

// Reject reasons passed to Hooks.AddRejected.
const (
	ReasonKeysUnset   = "keys_unset"   // Add before key funcs were configured
	ReasonNoOwnership = "no_ownership" // Add before an ownership policy was resolved
)

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The cache calls them on hot paths.
type Hooks interface {
	// An Add call was rejected before an entry was created.
	// reason ∈ {"keys_unset", "no_ownership"}
	AddRejected(cache, reason string)

	// A configuration setter was called after the first Add sealed it.
	// field ∈ {"keys", "ownership"}
	ConfigSealed(cache, field string)

	// Invalidate found an entry whose age was already 0.
	InvalidateUnderflow(cache string)

	// A collection sweep finished. kept is the live entry count afterwards.
	Collected(cache string, evicted, kept int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) AddRejected(string, string)  {}
func (NopHooks) ConfigSealed(string, string) {}
func (NopHooks) InvalidateUnderflow(string)  {}
func (NopHooks) Collected(string, int, int)  {}
