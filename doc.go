// Package deepexpect is a structural equality checker built for test
// assertions. Given an expected & actual value it determines whether the two
// are deeply equal, and when they aren't, reports the first discrepancy found
// as a single path-qualified message like:
//
//	propB.propA[1].propB "b" but found "c"
//
// Instead of operating on JSON directly, deepexpect operates on document trees
// consisting of the go types created by unmarshaling from JSON, which are two
// complex types:
//
//	map[string]interface{}
//	[]interface{}
//
// and five scalar types:
//
//	string, int, float64, bool, nil
//
// by operating on native go types deepexpect can compare documents encoded in
// different formats, for example decoded YAML or CBOR.
//
// Comparison is depth-first and stops at the first mismatch on each level, so
// each call yields at most one discrepancy. Arrays are ordered &
// order-sensitive. Record keys are visited in lexicographic order, which makes
// the reported discrepancy deterministic for any pair of inputs. Cyclic values
// are out of contract: Compare is only guaranteed to terminate on acyclic
// input.
//
// The package also ships a thin assertion wrapper (Assert, RunTest) that
// prefixes discrepancy messages with a caller-supplied label, suitable for
// collecting a batch of assertion failures & reporting them together.
package deepexpect
