package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/qri-io/deepexpect"
	"github.com/urfave/cli/v3"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", version)
		fmt.Fprintln(cmd.Writer, "Commit:", commit)
		fmt.Fprintln(cmd.Writer, "Date:", date)
	}

	app := &cli.Command{
		Name:      "deepexpect",
		Usage:     "Check two structured documents for deep equality",
		ArgsUsage: "EXPECTED ACTUAL",
		Description: `deepexpect loads two JSON or YAML documents, checks them for deep
structural equality, and reports the first discrepancy found as a
path-qualified message. The exit code is 0 when the documents are equal and
1 when they differ.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "label",
				Aliases: []string{"l"},
				Usage:   "context label prefixed to the failure message",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "emit the discrepancy as JSON instead of text",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "colorize text output",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print node counts for both documents",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return cli.Exit("expected exactly two document paths", 2)
			}
			return runCheck(cmd, cmd.Args().Get(0), cmd.Args().Get(1))
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// runCheck loads & compares the two documents, rendering any discrepancy to
// the command's writer
func runCheck(cmd *cli.Command, expectedPath, actualPath string) error {
	expected, err := loadDocument(expectedPath)
	if err != nil {
		return err
	}
	actual, err := loadDocument(actualPath)
	if err != nil {
		return err
	}

	var (
		opts []deepexpect.Option
		st   deepexpect.Stats
	)
	if cmd.Bool("stats") {
		opts = append(opts, deepexpect.OptionSetStats(&st))
	}

	d := deepexpect.Compare(expected, actual, opts...)

	if cmd.Bool("stats") {
		if cmd.Bool("color") {
			fmt.Fprint(cmd.Writer, deepexpect.FormatPrettyStatsColor(&st))
		} else {
			fmt.Fprint(cmd.Writer, deepexpect.FormatPrettyStats(&st))
		}
	}

	if d == nil {
		fmt.Fprintln(cmd.Writer, "documents are equal")
		return nil
	}

	switch {
	case cmd.Bool("json"):
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.Writer, string(data))
	case cmd.String("label") != "":
		failure := &deepexpect.AssertionError{Label: cmd.String("label"), Diff: d}
		fmt.Fprintln(cmd.Writer, failure.Error())
	default:
		if err := deepexpect.FormatPretty(cmd.Writer, d, cmd.Bool("color")); err != nil {
			return err
		}
	}

	return cli.Exit("", 1)
}
