package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/glasslab/internal/password"
)

type assessReport struct {
	Length    int      `yaml:"length"`
	Pool      int      `yaml:"pool"`
	RawBits   float64  `yaml:"raw_bits"`
	Bits      float64  `yaml:"bits"`
	Tier      string   `yaml:"tier"`
	CrackTime string   `yaml:"crack_time"`
	Issues    []string `yaml:"issues"`
}

func newAssessReport(a password.Assessment) assessReport {
	issues := a.Issues()
	if issues == nil {
		issues = []string{}
	}
	return assessReport{
		Length:    a.Length,
		Pool:      a.Pool,
		RawBits:   a.RawBits,
		Bits:      a.Bits,
		Tier:      a.Tier.String(),
		CrackTime: password.FormatCrackTime(a.CrackSeconds),
		Issues:    issues,
	}
}

func newAssessCmd(app *appContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "assess [password]",
		Short: "Estimate the strength of a password",
		Long:  `Estimate the strength of the given password, or of each line read from stdin when no argument is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			settings, err := app.loadSettings()
			if err != nil {
				return err
			}
			log, err := app.commandLogger(cmd, settings, "assess")
			if err != nil {
				return err
			}
			app.logSettings(log, settings)

			inputs := args
			if len(inputs) == 0 {
				inputs, err = readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}
			log.WithFields(map[string]any{"count": len(inputs)}).Debug("assessing")

			results := make([]password.Assessment, len(inputs))
			for i, in := range inputs {
				results[i] = password.Assess(in)
			}

			if format == formatYAML {
				return writeYAML(cmd.OutOrStdout(), results)
			}
			writeText(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text or yaml")

	return cmd
}

// maxLineBytes lifts the scanner's 64 KiB default so a long line is still assessed.
const maxLineBytes = math.MaxInt32

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

func writeText(w io.Writer, results []password.Assessment) {
	for i, a := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		r := password.Render(a)
		fmt.Fprintln(w, r.Status)
		fmt.Fprintf(w, "entropy: %s\n", r.Entropy)
		fmt.Fprintf(w, "pool: %s\n", r.Pool)
		fmt.Fprintf(w, "crack time: %s\n", r.CrackTime)
		if len(r.Issues) == 0 {
			fmt.Fprintln(w, r.Summary)
			continue
		}
		for _, issue := range r.Issues {
			fmt.Fprintf(w, "- %s\n", issue)
		}
	}
}

func writeYAML(w io.Writer, results []password.Assessment) error {
	var doc any
	if len(results) == 1 {
		doc = newAssessReport(results[0])
	} else {
		reports := make([]assessReport, len(results))
		for i, a := range results {
			reports[i] = newAssessReport(a)
		}
		doc = reports
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
