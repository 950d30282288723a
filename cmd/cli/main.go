package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"seqsense/adapters/excel"
	"seqsense/adapters/pattern/engine"
	"seqsense/app"
	"seqsense/domain/sequence"
	"seqsense/internal/format"
	"seqsense/internal/inputparse"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seqsense",
		Short: "Classify numeric sequences and predict their next values",
	}

	rootCmd.AddCommand(
		newPredictCmd(),
		newBatchCmd(),
		newFamiliesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newService() (*app.PredictionService, *engine.Engine) {
	eng := engine.New()
	return app.NewPredictionService(eng, 50), eng
}

func newPredictCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "predict [numbers...]",
		Short: "Predict the next three values of a sequence",
		Long: `Classify a sequence against the pattern catalog and print its next
three values with the matched rule and confidence.

Reads numbers from the arguments, or from stdin when none are given.

Example: seqsense predict 2 4 6 8 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text == "" {
				scanner := bufio.NewScanner(os.Stdin)
				var lines []string
				for scanner.Scan() {
					lines = append(lines, scanner.Text())
				}
				text = strings.Join(lines, " ")
			}
			seq, err := inputparse.New().Parse(text)
			if err != nil {
				return err
			}
			service, _ := newService()
			p := service.Predict(seq)
			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(p)
			}
			printPrediction(p)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	return cmd
}

func newBatchCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "batch <file.xlsx|file.csv>",
		Short: "Predict every row of a spreadsheet or CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rows, err := excel.NewSequenceReader(args[0]).ReadSequences(ctx)
			if err != nil {
				return err
			}
			service, _ := newService()
			var seqs []sequence.Sequence
			var valid []int
			for i, row := range rows {
				if row.Err != nil {
					fmt.Fprintf(os.Stderr, "row %d: %v\n", row.Line, row.Err)
					continue
				}
				seqs = append(seqs, row.Sequence)
				valid = append(valid, i)
			}
			results, err := service.PredictBatch(ctx, seqs)
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(results)
			}
			for i, p := range results {
				fmt.Printf("row %d: ", rows[valid[i]].Line)
				printPrediction(p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full results as JSON")
	return cmd
}

func newFamiliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List the pattern catalog in evaluation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, eng := newService()
			for i, name := range eng.DetectorNames() {
				fmt.Printf("%2d. %s\n", i+1, name)
			}
			return nil
		},
	}
}

func printPrediction(p app.Prediction) {
	r := p.Record.Result
	fmt.Printf("%s → %s\n", format.Numbers(p.Record.Input, ", "),
		format.Numbers(r.NextElements, ", "))
	fmt.Printf("  rule: %s (%.0f%% confidence)\n", r.RuleType, r.Confidence*100)
	fmt.Printf("  %s\n", r.RuleDescription)
	fmt.Printf("  formula: %s\n", r.Formula)
}
