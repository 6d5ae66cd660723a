package deepexpect

import (
	"strconv"
)

// Compare reports the first structural difference between an expected &
// actual value, or nil when the two are deeply equal. Traversal is
// depth-first, left-to-right for arrays and lexicographic for record keys,
// stopping at the first mismatch on each level, so at most one discrepancy is
// ever reported per call.
//
// Compare never mutates its inputs & keeps no state between calls, so it's
// safe to call concurrently from multiple goroutines
func Compare(expected, actual interface{}, opts ...Option) *Discrepancy {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if st := cfg.Stats; st != nil {
		st.LeftNodes, st.LeftWeight = countNodes(expected)
		st.RightNodes, st.RightWeight = countNodes(actual)
	}

	return compare(expected, actual)
}

// Config are any possible configuration parameters for a comparison
type Config struct {
	// Provide a non-nil stats pointer & Compare will populate it with data
	// about the compared trees
	Stats *Stats
}

// Option is a function that adjusts a config, zero or more Options can be
// passed to Compare
type Option func(cfg *Config)

// OptionSetStats will set the passed-in stats pointer when Compare is called
func OptionSetStats(st *Stats) Option {
	return func(cfg *Config) {
		cfg.Stats = st
	}
}

// compare evaluates one pair of sub-values as an ordered sequence of checks,
// first matching rule wins:
//
//  1. primitives of the same kind that are equal short-circuit to nil
//  2. differing shapes fail as a type mismatch, this covers
//     null-vs-non-null rather than swallowing it as equal
//  3. primitives of the same kind with different values fail as a value
//     mismatch
//  4. arrays fail on length first, then on the first differing index
//  5. records fail on the first expected key that's missing or differing,
//     and only once every expected key matched, on the first surplus key in
//     actual
//  6. anything left (both null) is equal
//
// a discrepancy returned by a recursive call is wrapped with the path segment
// of the child it came from & propagated immediately, no sibling past the
// first failure is examined
func compare(expected, actual interface{}) *Discrepancy {
	ek, ak := KindOf(expected), KindOf(actual)

	if ek == ak && ek.scalar() && scalarEqual(ek, expected, actual) {
		return nil
	}

	if ek != ak {
		return &Discrepancy{
			Kind:     MismatchType,
			Expected: expected,
			Actual:   actual,
			Message:  "type " + ek.String() + " but found type " + ak.String(),
		}
	}

	switch ek {
	case KindString, KindNumber, KindBool:
		// equal primitives were caught above
		return &Discrepancy{
			Kind:     MismatchValue,
			Expected: expected,
			Actual:   actual,
			Message:  `"` + formatScalar(expected) + `" but found "` + formatScalar(actual) + `"`,
		}

	case KindArray:
		exp := expected.([]interface{})
		act := actual.([]interface{})

		if len(exp) != len(act) {
			return &Discrepancy{
				Kind:     MismatchLength,
				Expected: expected,
				Actual:   actual,
				Message:  "Array length " + strconv.Itoa(len(exp)) + " but found " + strconv.Itoa(len(act)),
			}
		}
		for i := range exp {
			if d := compare(exp[i], act[i]); d != nil {
				return d.wrap(IndexAddr(i), KindOf(exp[i]))
			}
		}
		return nil

	case KindObject:
		exp := expected.(map[string]interface{})
		act := actual.(map[string]interface{})

		for _, key := range sortedKeys(exp) {
			child, ok := act[key]
			if !ok {
				return &Discrepancy{
					Kind:     MismatchMissingKey,
					Path:     []Addr{StringAddr(key)},
					Expected: exp[key],
					Message:  key + " but was not found",
				}
			}
			if d := compare(exp[key], child); d != nil {
				return d.wrap(StringAddr(key), KindOf(exp[key]))
			}
		}

		// every expected key matched, scan for surplus keys
		for _, key := range sortedKeys(act) {
			if _, ok := exp[key]; !ok {
				return &Discrepancy{
					Kind:    MismatchExtraKey,
					Path:    []Addr{StringAddr(key)},
					Actual:  act[key],
					Message: key + " to be missing but was found",
				}
			}
		}
		return nil
	}

	// both null
	return nil
}

// scalarEqual compares two primitives of the same kind. numbers compare
// numerically so an int decoded from YAML equals the float64 the json
// package produces
func scalarEqual(k Kind, a, b interface{}) bool {
	if k == KindNumber {
		return asFloat(a) == asFloat(b)
	}
	return a == b
}
