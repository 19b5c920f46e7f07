// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/vocab-checker/internal/anki"
	"github.com/pdiddy/vocab-checker/internal/report"
	"github.com/pdiddy/vocab-checker/internal/vocab"
	"github.com/pdiddy/vocab-checker/pkg/types"
)

const stdinPath = "-"

var checkCmd = &cobra.Command{
	Use:   "check [collection.anki2]",
	Short: "Report Duolingo words missing from an Anki collection",
	Long: `Check reads the Duolingo word list (one "word<TAB>type<TAB>last practiced<TAB>"
line per word) from --input or standard input, collects every field of every
note in the Anki collection, and prints each word that no field matches
exactly, followed by the number of such words.

A single malformed line rejects the whole word list; no partial report is
printed.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := checkConfig(args)
	if err != nil {
		return err
	}

	records, err := readWordList(cmd.InOrStdin(), cfg.InputPath)
	if err != nil {
		return err
	}
	logger.Info("parsed word list",
		zap.String("input", inputName(cfg.InputPath)),
		zap.Int("records", len(records)),
	)

	coll, err := anki.Open(cfg.CollectionPath)
	if err != nil {
		return err
	}
	defer coll.Close()

	known, err := anki.LoadKnownWords(cmd.Context(), coll, anki.IndexOptions{
		SkipEmpty:      cfg.SkipEmptyFields,
		MaxFieldLength: cfg.MaxFieldLength,
	})
	if err != nil {
		return fmt.Errorf("reading %s: %w", coll.Path(), err)
	}
	logger.Info("indexed collection",
		zap.String("collection", coll.Path()),
		zap.Int("known", known.Len()),
	)
	if known.Len() == 0 {
		logger.Warn("collection has no note fields; every word will be reported")
	}

	selected := report.Filter(records, cfg.PartsOfSpeech)
	if len(cfg.PartsOfSpeech) > 0 {
		logger.Debug("filtered by part of speech",
			zap.Strings("pos", cfg.PartsOfSpeech),
			zap.Int("kept", len(selected)),
		)
	}

	rep := report.Diff(selected, known)
	if err := report.Write(cmd.OutOrStdout(), rep, cfg.Format); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	printSummary(cmd.ErrOrStderr(), rep)
	return nil
}

func checkConfig(args []string) (types.CheckerConfig, error) {
	cfg := types.CheckerConfig{
		CollectionPath:  viper.GetString("collection"),
		InputPath:       viper.GetString("input"),
		SkipEmptyFields: viper.GetBool("skip_empty"),
		MaxFieldLength:  viper.GetInt("max_field_length"),
	}
	for _, pos := range viper.GetStringSlice("pos") {
		if pos = strings.TrimSpace(pos); pos != "" {
			cfg.PartsOfSpeech = append(cfg.PartsOfSpeech, pos)
		}
	}
	if len(args) > 0 {
		cfg.CollectionPath = args[0]
	}
	if cfg.CollectionPath == "" {
		return cfg, fmt.Errorf("collection required: pass the path to collection.anki2 or set collection in the config file")
	}
	if cfg.MaxFieldLength < 0 {
		return cfg, fmt.Errorf("max-field-length must not be negative, got %d", cfg.MaxFieldLength)
	}

	format, err := types.ParseReportFormat(viper.GetString("format"))
	if err != nil {
		return cfg, err
	}
	cfg.Format = format

	return cfg, nil
}

// readWordList parses the word list at path, or stdin when path is empty or "-".
func readWordList(stdin io.Reader, path string) ([]types.WordRecord, error) {
	if path == "" || path == stdinPath {
		records, err := vocab.Parse(stdin)
		if err != nil {
			return nil, fmt.Errorf("parsing standard input: %w", err)
		}
		return records, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	records, err := vocab.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}

func inputName(path string) string {
	if path == "" || path == stdinPath {
		return "stdin"
	}
	return path
}

func printSummary(w io.Writer, rep report.Report) {
	c := color.New(color.FgGreen, color.Bold)
	if rep.Count > 0 {
		c = color.New(color.FgYellow, color.Bold)
	}
	c.Fprintf(w, "%d of %d words missing from the collection\n", rep.Count, rep.Total)
}

func init() {
	checkCmd.Flags().StringP("input", "i", "", `Duolingo word list file ("-" or empty reads standard input)`)
	checkCmd.Flags().String("format", "text", "report format: text, json, or yaml")
	checkCmd.Flags().StringSlice("pos", nil, "only report these parts of speech (repeatable, e.g. --pos Noun --pos Verb)")
	checkCmd.Flags().Bool("skip-empty", false, "ignore empty note fields when indexing the collection")
	checkCmd.Flags().Int("max-field-length", 0, "ignore note fields longer than this many characters (0 = no limit)")

	bindFlags(checkCmd, map[string]string{
		"input":            "input",
		"format":           "format",
		"pos":              "pos",
		"skip_empty":       "skip-empty",
		"max_field_length": "max-field-length",
	}, false)

	rootCmd.AddCommand(checkCmd)
}
