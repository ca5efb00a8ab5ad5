package t212

// NotAvailable is the sentinel the exporter writes for figures it could not
// obtain. It is a valid data state, distinct from zero, and must survive
// parsing, sorting and formatting unchanged.
const NotAvailable = "N/A"

// Metric is a numeric figure that may be explicitly not available. The
// zero value is Unavailable, so a Metric can never silently read as a
// known 0.
type Metric struct {
	Known bool    `json:"known"`
	Value float64 `json:"value"`
}

// KnownMetric wraps a known numeric value.
func KnownMetric(v float64) Metric {
	return Metric{Known: true, Value: v}
}

// UnavailableMetric returns the explicit not-available state.
func UnavailableMetric() Metric {
	return Metric{}
}

// ParseMetric decodes a token that is either a number or the "N/A"
// sentinel. The sentinel passes through as Unavailable rather than being
// coerced to zero by the numeric rule.
func ParseMetric(token string) Metric {
	if CleanText(token) == NotAvailable {
		return UnavailableMetric()
	}
	return KnownMetric(ParseNumber(token))
}
