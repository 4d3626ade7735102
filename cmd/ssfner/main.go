package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gubarz/ssfner/internal/batch"
	"github.com/gubarz/ssfner/internal/config"
	"github.com/gubarz/ssfner/internal/parser"
	"github.com/gubarz/ssfner/internal/stats"
	"github.com/gubarz/ssfner/internal/ui"
)

var version = "0.1.0"

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "ssfner --input <path> --output <path> [--merge <path>]",
	Short: "Convert SSF named-entity annotations to CoNLL",
	Long: `Reads corpus files in Shakti Standard Format (SSF) and writes one
token<TAB>tag line per token with BIO named-entity tags, sentences
separated by a blank line.

The input may be a single file or a directory. For a directory one output
file per input file is written into the output directory, and --merge
additionally writes everything into one combined file.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: initLogger,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runConvert,
}

var statsCmd = &cobra.Command{
	Use:   "stats --input <path>",
	Short: "Print sentence, token and entity counts for an SSF corpus",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(statsCmd)

	rootCmd.PersistentFlags().StringP("input", "i", "", "SSF input file or directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringP("output", "o", "", "CoNLL output file, or directory when input is a directory")
	rootCmd.Flags().StringP("merge", "m", "", "Also write all sentences into this combined file")
	rootCmd.Flags().IntP("jobs", "j", 1, "Number of files converted at once")
	rootCmd.Flags().BoolP("progress", "p", false, "Show a progress bar for directory input")
	statsCmd.Flags().Bool("plain", false, "Print the summary without colors or border")

	cobra.CheckErr(bindFlags(rootCmd.PersistentFlags(), "input", "verbose"))
	cobra.CheckErr(bindFlags(rootCmd.Flags(), "output", "merge", "jobs", "progress"))
}

// bindFlags binds each named flag to the viper key of the same name
func bindFlags(flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func initLogger(cmd *cobra.Command, args []string) error {
	cfg := zap.NewProductionConfig()
	if config.GetVerbose() {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

func newParser() *parser.Parser {
	opts := []parser.Option{
		parser.WithLogger(logger),
		parser.WithAppendOrphans(config.GetAppendOrphans()),
	}
	if !config.GetSkipHidden() {
		opts = append(opts, parser.WithHiddenFiles())
	}
	return parser.NewParser(opts...)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := config.GetInput()
	output := config.GetOutput()
	if input == "" {
		return errors.New("--input is required")
	}
	if output == "" {
		return errors.New("--output is required")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	runner := batch.NewRunner(newParser(), logger)
	opts := batch.Options{
		Input:  input,
		Output: output,
		Merge:  config.GetMerge(),
		Jobs:   config.GetJobs(),
	}

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input error: %w", err)
	}

	var res *batch.Result
	if config.GetProgress() && info.IsDir() {
		total, err := runner.Count(input)
		if err != nil {
			return fmt.Errorf("input error: %w", err)
		}
		err = ui.RunProgress(ctx, total, func(ctx context.Context, report func(ui.Report)) error {
			opts.OnFile = func(fr batch.FileResult) {
				report(fileReport(fr))
			}
			var err error
			res, err = runner.Run(ctx, opts)
			return err
		})
		if err != nil {
			return err
		}
	} else {
		res, err = runner.Run(ctx, opts)
		if err != nil {
			return err
		}
	}

	logger.Info("conversion finished",
		zap.Int("files", len(res.Documents)),
		zap.String("merged", res.Merged),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func fileReport(fr batch.FileResult) ui.Report {
	r := ui.Report{Name: fr.Doc.Name(), Sentences: len(fr.Doc.Sentences)}
	for _, s := range fr.Doc.Sentences {
		r.Tokens += len(s.Tokens)
	}
	return r
}

func runStats(cmd *cobra.Command, args []string) error {
	input := config.GetInput()
	if input == "" {
		return errors.New("--input is required")
	}

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input error: %w", err)
	}

	p := newParser()
	var index *parser.CorpusIndex
	if info.IsDir() {
		index, err = p.ParseDirectory(input)
	} else {
		index, err = p.ParseSingleFile(input)
	}
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	summary := stats.Aggregate(index)
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSummaryPlain(summary))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSummary(summary))
	}
	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
