package deepexpect

import (
	"encoding/json"
	"strconv"
)

// Mismatch defines the taxonomy of discrepancies a comparison can report
type Mismatch string

const (
	// MismatchType means the two values have different shapes, including
	// null-vs-non-null
	MismatchType = Mismatch("type")
	// MismatchValue means two primitives of the same kind hold different values
	MismatchValue = Mismatch("value")
	// MismatchLength means two arrays have different lengths
	MismatchLength = Mismatch("length")
	// MismatchMissingKey means a key present in expected is absent from actual
	MismatchMissingKey = Mismatch("missing key")
	// MismatchExtraKey means a key present in actual is absent from expected
	MismatchExtraKey = Mismatch("extra key")
)

// Addr is a path segment leading toward a discrepancy: an array index or a
// record key
type Addr interface {
	// segment rendering. record keys render bare, array indices render
	// wrapped in brackets
	String() string
}

// StringAddr is a record-key path segment
type StringAddr string

// String renders the bare key
func (a StringAddr) String() string { return string(a) }

// IndexAddr is an array-index path segment
type IndexAddr int

// String renders the index wrapped in brackets
func (a IndexAddr) String() string { return "[" + strconv.Itoa(int(a)) + "]" }

// Discrepancy describes the first structural difference found between two
// values. It is constructed once per failed comparison & never mutated after
// Compare returns
type Discrepancy struct {
	// which rule in the taxonomy tripped
	Kind Mismatch
	// path from the root of the compared values to the mismatch site. for a
	// missing or extra key the final segment names the offending key
	Path []Addr
	// the value snapshots at the mismatch site. Actual is nil for a missing
	// key, Expected is nil for an extra key
	Expected interface{}
	Actual   interface{}
	// the fully-composed human-readable message, eg:
	//   propB.propA[1].propB "b" but found "c"
	// message text is a stable contract: callers assert against it verbatim
	Message string
}

// wrap prefixes a path segment onto a discrepancy bubbling up out of a child
// comparison. child is the kind of the expected-side child the segment
// addresses, it picks the divider between segment & message: nothing before
// an array child, a space before a primitive child, a dot otherwise
func (d *Discrepancy) wrap(addr Addr, child Kind) *Discrepancy {
	d.Path = append([]Addr{addr}, d.Path...)
	d.Message = addr.String() + divider(child) + d.Message
	return d
}

func divider(child Kind) string {
	switch {
	case child == KindArray:
		return ""
	case child.scalar():
		return " "
	default:
		return "."
	}
}

// MarshalJSON implements a custom JSON marshaller so the path renders as an
// ordered list of segment strings
func (d *Discrepancy) MarshalJSON() ([]byte, error) {
	segs := make([]string, len(d.Path))
	for i, addr := range d.Path {
		segs[i] = addr.String()
	}
	return json.Marshal(struct {
		Kind     Mismatch    `json:"kind"`
		Path     []string    `json:"path"`
		Expected interface{} `json:"expected,omitempty"`
		Actual   interface{} `json:"actual,omitempty"`
		Message  string      `json:"message"`
	}{d.Kind, segs, d.Expected, d.Actual, d.Message})
}
