// Package batch drives the conversion of one SSF file or a directory of
// SSF files into CoNLL output.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gubarz/ssfner/internal/conll"
	"github.com/gubarz/ssfner/internal/parser"
)

var (
	// ErrNoOutput is returned when no output path was given
	ErrNoOutput = errors.New("no output path")

	// ErrOutputIsFile is returned when a directory input points at an
	// existing regular file as output
	ErrOutputIsFile = errors.New("output must be a directory when input is a directory")
)

// Options describes one conversion run
type Options struct {
	Input  string // SSF file or directory
	Output string // CoNLL file, or directory when Input is a directory
	Merge  string // optional combined output file
	Jobs   int    // files converted at once, values below 1 mean 1

	// OnFile is called after each file has been written. With Jobs > 1 it
	// may be called from several goroutines at once.
	OnFile func(FileResult)
}

// FileResult reports one converted file
type FileResult struct {
	Input  string
	Output string
	Doc    *parser.Document
}

// Result summarizes a finished run
type Result struct {
	Documents []*parser.Document
	Outputs   []string
	Merged    string // path of the merged file, empty if none was written
}

// Runner converts files using a shared parser
type Runner struct {
	parser *parser.Parser
	logger *zap.Logger
}

// NewRunner creates a runner
func NewRunner(p *parser.Parser, logger *zap.Logger) *Runner {
	if p == nil {
		p = parser.NewParser(parser.WithLogger(logger))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{parser: p, logger: logger}
}

// Count returns how many files a run over input would convert
func (r *Runner) Count(input string) (int, error) {
	info, err := os.Stat(input)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return 1, nil
	}
	paths, err := r.parser.ListDirectory(input)
	if err != nil {
		return 0, err
	}
	return len(paths), nil
}

// Run converts opts.Input. Any read or write error aborts the run; files
// written before the failure are left in place.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Input == "" {
		return nil, parser.ErrNoInput
	}
	if opts.Output == "" {
		return nil, ErrNoOutput
	}

	info, err := os.Stat(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	var res *Result
	if info.IsDir() {
		res, err = r.runDirectory(ctx, opts)
	} else {
		res, err = r.runFile(opts)
	}
	if err != nil {
		return nil, err
	}

	if opts.Merge != "" {
		if err := conll.WriteFile(opts.Merge, conll.FormatMerged(res.Documents)); err != nil {
			return nil, err
		}
		res.Merged = opts.Merge
		r.logger.Info("wrote merged output",
			zap.String("path", opts.Merge),
			zap.Int("files", len(res.Documents)))
	}

	return res, nil
}

func (r *Runner) runFile(opts Options) (*Result, error) {
	fr, err := r.convert(opts.Input, opts.Output)
	if err != nil {
		return nil, err
	}
	if opts.OnFile != nil {
		opts.OnFile(fr)
	}
	return &Result{
		Documents: []*parser.Document{fr.Doc},
		Outputs:   []string{fr.Output},
	}, nil
}

func (r *Runner) runDirectory(ctx context.Context, opts Options) (*Result, error) {
	if info, err := os.Stat(opts.Output); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", opts.Output, ErrOutputIsFile)
	}
	if err := os.MkdirAll(opts.Output, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	paths, err := r.parser.ListDirectory(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", opts.Input, err)
	}

	results := make([]FileResult, len(paths))

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := filepath.Join(opts.Output, filepath.Base(path))
			fr, err := r.convert(path, out)
			if err != nil {
				return err
			}
			results[i] = fr
			if opts.OnFile != nil {
				opts.OnFile(fr)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		Documents: make([]*parser.Document, 0, len(results)),
		Outputs:   make([]string, 0, len(results)),
	}
	for _, fr := range results {
		res.Documents = append(res.Documents, fr.Doc)
		res.Outputs = append(res.Outputs, fr.Output)
	}
	return res, nil
}

func (r *Runner) convert(input, output string) (FileResult, error) {
	doc, err := r.parser.ParseFile(input)
	if err != nil {
		return FileResult{}, err
	}
	if err := conll.WriteFile(output, conll.FormatDocument(doc)); err != nil {
		return FileResult{}, err
	}
	r.logger.Info("converted file",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("sentences", len(doc.Sentences)))
	return FileResult{Input: input, Output: output, Doc: doc}, nil
}
