package deepexpect

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind defines all of the atoms in our universe, the closed set of value
// shapes the checker can encounter
type Kind uint8

const (
	// KindInvalid is a shape outside our universe, should never be encountered
	KindInvalid Kind = iota
	// KindNull is the nil value
	KindNull
	// KindString is a string scalar
	KindString
	// KindNumber is a numeric scalar (int, int64, or float64)
	KindNumber
	// KindBool is a boolean scalar
	KindBool
	// KindArray is an ordered sequence of values
	KindArray
	// KindObject is a dictionary of key / value pairs
	KindObject
)

// String returns the name a Kind carries in discrepancy messages. null is
// reported as the literal lowercase name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindBool:
		return "Boolean"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// scalar reports whether values of this kind are primitive
func (k Kind) scalar() bool {
	return k == KindString || k == KindNumber || k == KindBool
}

// KindOf classifies a value into one of the supported shapes. values outside
// the contract (functions, structs, typed maps...) panic, callers are
// expected to hand us trees produced by a generic decoder
func KindOf(v interface{}) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case int, int64, float64:
		return KindNumber
	case bool:
		return KindBool
	case []interface{}:
		return KindArray
	case map[string]interface{}:
		return KindObject
	default:
		panic(fmt.Sprintf("deepexpect: unexpected type: %T", v))
	}
}

// asFloat normalizes the three accepted numeric representations so numbers
// decoded from different formats compare numerically
func asFloat(v interface{}) float64 {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	}
	panic(fmt.Sprintf("deepexpect: not a number: %T", v))
}

// formatScalar renders a primitive the way it appears inside a quoted
// discrepancy message. floats drop trailing zeroes so 1.0 prints as 1
func formatScalar(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	}
	panic(fmt.Sprintf("deepexpect: not a scalar: %T", v))
}

// sortedKeys returns a record's keys in lexicographic order. gotta sort keys
// for deterministic traversal
func sortedKeys(rec map[string]interface{}) []string {
	keys := make([]string, 0, len(rec))
	for key := range rec {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// countNodes tallies the node count & weight of a tree. weight follows the
// same byte-ish model the stats report uses: scalars weigh the length of
// their string form, null weighs 1, compound values weigh 1 + their children
func countNodes(v interface{}) (nodes, weight int) {
	switch x := v.(type) {
	case nil:
		return 1, 1
	case []interface{}:
		nodes, weight = 1, 1
		for _, el := range x {
			n, w := countNodes(el)
			nodes += n
			weight += w
		}
		return nodes, weight
	case map[string]interface{}:
		nodes, weight = 1, 1
		for _, el := range x {
			n, w := countNodes(el)
			nodes += n
			weight += w
		}
		return nodes, weight
	default:
		return 1, len(formatScalar(x))
	}
}
