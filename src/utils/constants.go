package utils

const (
	// ShortDashDateLayout is the wire format for trade dates in query
	// params and request bodies.
	ShortDashDateLayout = "2006-01-02"

	// DefaultPageSize bounds report listings when the caller does not pass
	// an explicit page size.
	DefaultPageSize = 50
	MaxPageSize     = 500
)
