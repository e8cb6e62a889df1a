package tooltip

import (
	"fmt"
	"strconv"
)

// The formatter capabilities are independent pure functions over the
// datum; each is overridable at construction or through its setter
// without touching the others.
type (
	// HeaderFormatter renders the datum's header value.
	HeaderFormatter func(v any) string

	// FooterFormatter renders the datum's footer value.
	FooterFormatter func(v any) string

	// KeyFormatter renders a series entry's key label.
	KeyFormatter func(key string) string

	// ValueFormatter renders a series entry's primary value.
	ValueFormatter func(v float64) string

	// RefFormatter renders the trend cell comparing value against its
	// reference.
	RefFormatter func(value, ref float64) string

	// AlertFunc decides whether a series entry's opaque data warrants an
	// alert marker on its row.
	AlertFunc func(data any) bool
)

// DefaultHeaderFormatter renders the header value with fmt.Sprint;
// nil produces an empty string.
func DefaultHeaderFormatter(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// DefaultFooterFormatter renders the footer value with fmt.Sprint;
// nil produces an empty string.
func DefaultFooterFormatter(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// DefaultKeyFormatter returns the key unchanged.
func DefaultKeyFormatter(key string) string { return key }

// DefaultValueFormatter renders values with two decimal places.
func DefaultValueFormatter(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// DefaultRefFormatter renders the relative change from ref to value as a
// percentage with one decimal place. A zero reference produces an empty
// string rather than a division by zero.
func DefaultRefFormatter(value, ref float64) string {
	if ref == 0 {
		return ""
	}
	return strconv.FormatFloat((value-ref)/ref*100, 'f', 1, 64) + "%"
}
