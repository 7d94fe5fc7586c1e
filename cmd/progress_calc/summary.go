package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/2beens/gymprogress/internal/progress"
)

func newSummaryCmd() *cobra.Command {
	var (
		filePath  string
		today     string
		tolerance int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the progress summary for the workout sets in a JSON file",
		Long: "Reads workout sets from --file (a JSON array, or an object with a \"records\" array; " +
			"use - for stdin) and prints streak, XP, level, achievements and stats as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecords(cmd.InOrStdin(), filePath)
			if err != nil {
				return err
			}

			engine := progress.NewEngine(tolerance)
			if today != "" {
				day, err := time.Parse(progress.DateLayout, today)
				if err != nil {
					return fmt.Errorf("invalid --today %q, use YYYY-MM-DD", today)
				}
				engine.Now = func() time.Time { return day }
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(engine.Summary(records))
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "path to the workout sets JSON file, - for stdin")
	cmd.Flags().StringVar(&today, "today", "", "evaluate as of this date (YYYY-MM-DD), defaults to now")
	cmd.Flags().IntVar(&tolerance, "tolerance", progress.DefaultStreakToleranceDays, "max days between workouts that keep a streak alive")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readRecords(stdin io.Reader, filePath string) ([]progress.WorkoutSetRecord, error) {
	var (
		raw []byte
		err error
	)
	if filePath == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var records []progress.WorkoutSetRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("decode records: %w", err)
		}
		return records, nil
	}

	var req progress.EvaluateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return req.Records, nil
}
