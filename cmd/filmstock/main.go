package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/photonextdoor75-art/filter"
)

var (
	inPath    = pflag.StringP("in", "i", "", "input image (jpeg/png/gif/webp/bmp)")
	outPath   = pflag.StringP("out", "o", "", "output jpeg path (directory in --all mode)")
	stockName = pflag.StringP("stock", "s", "", "film stock to apply")
	seed      = pflag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	all       = pflag.Bool("all", false, "render every stock into the --out directory")
	batchPath = pflag.String("batch", "", "yaml batch job file")
	threads   = pflag.Int("threads", 4, "parallel jobs in --all/--batch mode")
	list      = pflag.Bool("list", false, "print the available stocks and exit")
)

func main() {
	pflag.Parse()
	if err := run(context.Background()); err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	switch {
	case *list:
		for _, id := range filter.Stocks() {
			fmt.Printf("%-16s %s\n", id, filter.Name(id))
		}
		return nil
	case *batchPath != "":
		return runBatch(ctx, *batchPath)
	case *all:
		return runAll(ctx)
	default:
		if *inPath == "" || *outPath == "" || *stockName == "" {
			pflag.Usage()
			return fmt.Errorf("need --in, --out and --stock")
		}
		return applyOne(*inPath, *outPath, filter.ID(*stockName), *seed)
	}
}

func applyOne(in, out string, id filter.ID, seed int64) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read %q: %w", in, err)
	}
	encoded, err := filter.Apply(data, id, filter.WithSeed(seed))
	if err != nil {
		return fmt.Errorf("apply %q to %q: %w", id, in, err)
	}
	if err := os.WriteFile(out, encoded, 0666); err != nil {
		return fmt.Errorf("write %q: %w", out, err)
	}
	fmt.Printf("Wrote %q (%s).\n", out, filter.Name(id))
	return nil
}

// runAll renders the input through every stock, one output file per stock.
func runAll(ctx context.Context) error {
	if *inPath == "" || *outPath == "" {
		return fmt.Errorf("--all needs --in and --out (a directory)")
	}
	if err := os.MkdirAll(*outPath, 0777); err != nil {
		return fmt.Errorf("create output directory %q: %w", *outPath, err)
	}

	base := strings.TrimSuffix(filepath.Base(*inPath), filepath.Ext(*inPath))
	fmt.Printf("Rendering %d stocks...\n", len(filter.Stocks()))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(*threads)
	for _, id := range filter.Stocks() {
		out := filepath.Join(*outPath, fmt.Sprintf("%s_%s.jpg", base, id))
		g.Go(func() error { return applyOne(*inPath, out, id, *seed) })
	}
	return g.Wait()
}

type batchFile struct {
	Jobs []batchJob `yaml:"jobs"`
}

type batchJob struct {
	In    string `yaml:"in"`
	Out   string `yaml:"out"`
	Stock string `yaml:"stock"`
	Seed  int64  `yaml:"seed"`
}

func runBatch(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read batch file %q: %w", path, err)
	}
	var jobs batchFile
	if err := yaml.Unmarshal(raw, &jobs); err != nil {
		return fmt.Errorf("parse batch file %q: %w", path, err)
	}
	if len(jobs.Jobs) == 0 {
		return fmt.Errorf("batch file %q has no jobs", path)
	}

	fmt.Printf("Running %d jobs...\n", len(jobs.Jobs))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(*threads)
	for _, job := range jobs.Jobs {
		g.Go(func() error {
			return applyOne(job.In, job.Out, filter.ID(job.Stock), job.Seed)
		})
	}
	return g.Wait()
}
