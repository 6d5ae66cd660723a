package deepexpect

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type TestCase struct {
	description      string // description of what test is checking
	expected, actual string // express test cases as json strings
	want             string // expected discrepancy message, empty means equal
}

func RunTestCases(t *testing.T, cases []TestCase) {
	t.Helper()

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			var expected, actual interface{}
			if err := json.Unmarshal([]byte(c.expected), &expected); err != nil {
				t.Fatal(err)
			}
			if err := json.Unmarshal([]byte(c.actual), &actual); err != nil {
				t.Fatal(err)
			}

			got := ""
			if d := Compare(expected, actual); d != nil {
				got = d.Message
			}

			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("discrepancy message mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

const obj1 = `{
	"propA": 1,
	"propB": {
		"propA": [1, {"propA": "a", "propB": "b"}, 3],
		"propB": 1,
		"propC": 2
	}
}`

func TestCompareScalars(t *testing.T) {
	cases := []TestCase{
		{"equal strings", `"abc"`, `"abc"`, ""},
		{"different strings", `"abcdef"`, `"abc"`, `"abcdef" but found "abc"`},
		{"equal numbers", `1`, `1`, ""},
		{"different numbers", `1`, `2`, `"1" but found "2"`},
		{"float renders without trailing zeroes", `1.5`, `2.25`, `"1.5" but found "2.25"`},
		{"different booleans", `true`, `false`, `"true" but found "false"`},
		{"both null", `null`, `null`, ""},
	}

	RunTestCases(t, cases)
}

func TestCompareTypeMismatch(t *testing.T) {
	cases := []TestCase{
		{"array vs object", `["a"]`, `{"0": "a"}`, "type Array but found type Object"},
		{"null vs object", `null`, `{}`, "type null but found type Object"},
		{"object vs null", `{}`, `null`, "type Object but found type null"},
		// shape mismatch wins over value-level checks even when the values
		// would print identically
		{"number vs string", `1`, `"1"`, "type Number but found type String"},
		{"string vs boolean", `"true"`, `true`, "type String but found type Boolean"},
		{"null child under a key", `{"a": null}`, `{"a": 1}`, "a.type null but found type Number"},
	}

	RunTestCases(t, cases)
}

func TestCompareArrays(t *testing.T) {
	cases := []TestCase{
		{"equal arrays", `["a","b","c"]`, `["a","b","c"]`, ""},
		{"length mismatch", `["a","b"]`, `["a","b","c"]`, "Array length 2 but found 3"},
		{"length wins over elements", `["a","b"]`, `["x","b","c"]`, "Array length 2 but found 3"},
		{"scalar element", `["a","b","c"]`, `["a","x","c"]`, `[1] "b" but found "x"`},
		{"nested arrays glue indices", `[["a"]]`, `[["b"]]`, `[0][0] "a" but found "b"`},
		{"record element takes a dot", `[{"a": "x"}]`, `[{"a": "y"}]`, `[0].a "x" but found "y"`},
		// an array child's message glues onto its segment, even when that
		// message is a length report rather than an indexed path
		{"nested length mismatch", `{"b": [1, 2]}`, `{"b": []}`, "bArray length 2 but found 0"},
		// first failing index only, index 4 is never examined
		{"first failure wins", `["a","b","c","d","e"]`, `["a","b","x","d","y"]`, `[2] "c" but found "x"`},
	}

	RunTestCases(t, cases)
}

func TestCompareRecords(t *testing.T) {
	obj1Copy := `{
		"propB": {
			"propC": 2,
			"propB": 1,
			"propA": [1, {"propB": "b", "propA": "a"}, 3]
		},
		"propA": 1
	}`
	obj1NestedChange := `{
		"propA": 1,
		"propB": {
			"propA": [1, {"propA": "a", "propB": "c"}, 3],
			"propB": 1,
			"propC": 2
		}
	}`
	obj1MissingPropC := `{
		"propA": 1,
		"propB": {
			"propA": [1, {"propA": "a", "propB": "b"}, 3],
			"propB": 1
		}
	}`

	cases := []TestCase{
		{"identical records, key order irrelevant", obj1, obj1Copy, ""},
		{"nested scalar change", obj1, obj1NestedChange, `propB.propA[1].propB "b" but found "c"`},
		{"missing nested key", obj1, obj1MissingPropC, "propB.propC but was not found"},
		{"missing top-level key", `{"a": 1}`, `{}`, "a but was not found"},
		{"extra top-level key", `{"a": 1}`, `{"a": 1, "b": 2}`, "b to be missing but was found"},
		{"extra nested key", `{"a": {"b": 1}}`, `{"a": {"b": 1, "c": 2}}`, "a.c to be missing but was found"},
		// a missing expected key is reported before any surplus keys are
		// considered
		{"missing wins over extra", `{"a": 1}`, `{"b": 1}`, "a but was not found"},
		// keys are visited in lexicographic order, so "a" is reported even
		// though "b" differs too
		{"lexicographic first failure", `{"b": 1, "a": 1}`, `{"b": 2, "a": 2}`, `a "1" but found "2"`},
	}

	RunTestCases(t, cases)
}

func TestCompareReflexive(t *testing.T) {
	docs := []string{
		`"abc"`,
		`42`,
		`true`,
		`null`,
		`[]`,
		`{}`,
		`[1, ["a", null], {"x": [true, {"y": "z"}]}]`,
		obj1,
	}

	for _, doc := range docs {
		var v interface{}
		if err := json.Unmarshal([]byte(doc), &v); err != nil {
			t.Fatal(err)
		}
		if d := Compare(v, v); d != nil {
			t.Errorf("Compare(v, v) for %s reported a discrepancy: %s", doc, d.Message)
		}
	}
}

func TestCompareStructured(t *testing.T) {
	var expected, actual interface{}
	if err := json.Unmarshal([]byte(obj1), &expected); err != nil {
		t.Fatal(err)
	}
	changed := `{
		"propA": 1,
		"propB": {
			"propA": [1, {"propA": "a", "propB": "c"}, 3],
			"propB": 1,
			"propC": 2
		}
	}`
	if err := json.Unmarshal([]byte(changed), &actual); err != nil {
		t.Fatal(err)
	}

	got := Compare(expected, actual)
	want := &Discrepancy{
		Kind:     MismatchValue,
		Path:     []Addr{StringAddr("propB"), StringAddr("propA"), IndexAddr(1), StringAddr("propB")},
		Expected: "b",
		Actual:   "c",
		Message:  `propB.propA[1].propB "b" but found "c"`,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("discrepancy mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareMixedNumericTypes(t *testing.T) {
	// yaml decoding yields ints where json yields float64s, the two must
	// compare numerically
	expected := map[string]interface{}{"count": int(3), "ratio": 1.0}
	actual := map[string]interface{}{"count": float64(3), "ratio": int64(1)}

	if d := Compare(expected, actual); d != nil {
		t.Errorf("expected numeric equality across representations, got: %s", d.Message)
	}

	if d := Compare(int(3), float64(4)); d == nil {
		t.Error("expected a discrepancy")
	} else if d.Message != `"3" but found "4"` {
		t.Errorf("unexpected message: %s", d.Message)
	}
}

func TestCompareStats(t *testing.T) {
	leftData := map[string]interface{}{
		"a": "apple",
		"b": []interface{}{
			[]interface{}{"one", "two", "three"},
			[]interface{}{"four", "five", "six"},
		},
	}
	rightData := map[string]interface{}{
		"a": "apple",
		"b": []interface{}{},
	}

	stat := &Stats{}
	d := Compare(leftData, rightData, OptionSetStats(stat))
	if d == nil {
		t.Fatal("expected a discrepancy")
	}
	if d.Message != "bArray length 2 but found 0" {
		t.Errorf("unexpected message: %s", d.Message)
	}

	expectStat := &Stats{
		LeftNodes:   11,
		RightNodes:  3,
		LeftWeight:  31,
		RightWeight: 7,
	}
	if diff := cmp.Diff(expectStat, stat); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}
