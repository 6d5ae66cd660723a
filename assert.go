package deepexpect

// AssertionError is the failure Assert surfaces when a comparison finds a
// discrepancy. It keeps the structured discrepancy reachable for callers that
// want to branch on the taxonomy rather than scrape the message
type AssertionError struct {
	// the caller-supplied context label
	Label string
	// the discrepancy that tripped the assertion
	Diff *Discrepancy
}

// Error composes the final failure report: "<label> Expected <message>"
func (e *AssertionError) Error() string {
	return e.Label + " Expected " + e.Diff.Message
}

// Assert compares expected against actual & returns nil when they are deeply
// equal. On mismatch it returns an *AssertionError decorating the discrepancy
// message with label
func Assert(label string, expected, actual interface{}) error {
	if d := Compare(expected, actual); d != nil {
		return &AssertionError{Label: label, Diff: d}
	}
	return nil
}

// RunTest is a batch-friendly form of Assert: instead of returning the
// failure it appends the failure message to failures & keeps going, letting a
// suite of assertions run to completion and report everything at once
func RunTest(label string, failures *[]string, expected, actual interface{}) {
	if err := Assert(label, expected, actual); err != nil {
		*failures = append(*failures, err.Error())
	}
}
