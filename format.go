package deepexpect

import (
	"bytes"
	"fmt"
	"io"
)

// FormatPrettyString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func FormatPrettyString(d *Discrepancy, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, d, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a one-line text report of a discrepancy to w. if
// colorTTY is true it will color the line by mismatch kind:
// red for type & value mismatches
// blue for length mismatches
// yellow for missing & extra keys
// a nil discrepancy writes nothing
func FormatPretty(w io.Writer, d *Discrepancy, colorTTY bool) error {
	if d == nil {
		return nil
	}

	var colorMap map[Mismatch]string
	if colorTTY {
		colorMap = map[Mismatch]string{
			Mismatch("close"): "\x1b[0m", // end color tag

			MismatchType:       "\x1b[31m", // red
			MismatchValue:      "\x1b[31m", // red
			MismatchLength:     "\x1b[34m", // blue
			MismatchMissingKey: "\x1b[33m", // yellow
			MismatchExtraKey:   "\x1b[33m", // yellow
		}
	}

	_, err := fmt.Fprintf(w, "%s%s: %s%s\n", colorMap[d.Kind], d.Kind, d.Message, colorMap[Mismatch("close")])
	return err
}

// FormatPrettyStats prints a string of stats info
func FormatPrettyStats(st *Stats) string {
	return formatStats(st, false)
}

// FormatPrettyStatsColor prints a string of stats info with ANSI colors
func FormatPrettyStatsColor(st *Stats) string {
	return formatStats(st, true)
}

func formatStats(st *Stats, color bool) string {
	var neutralColor, countColor, closeColor string

	if st == nil {
		return ""
	}

	if color {
		neutralColor = "\x1b[37m"
		countColor = "\x1b[36m"
		closeColor = "\x1b[0m"
	}

	buf := &bytes.Buffer{}

	nodesWord := "nodes"
	if st.LeftNodes == 1 {
		nodesWord = "node"
	}
	buf.WriteString(fmt.Sprintf("%sexpected: %s%s%d %s (%dB)%s.",
		neutralColor, closeColor,
		countColor, st.LeftNodes, nodesWord, st.LeftWeight, closeColor,
	))

	nodesWord = "nodes"
	if st.RightNodes == 1 {
		nodesWord = "node"
	}
	buf.WriteString(fmt.Sprintf(" %sactual: %s%s%d %s (%dB)%s.",
		neutralColor, closeColor,
		countColor, st.RightNodes, nodesWord, st.RightWeight, closeColor,
	))

	buf.WriteRune('\n')

	return buf.String()
}
