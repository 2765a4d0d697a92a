package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/felixbrock/qap/internal/pricing"
)

// generate writes a synthetic price and cross-elasticity dataset for the
// optimizer: qap generate -products 10 -out data/synthetic_data.
func generate(args []string, stdout, stderr io.Writer) error {
	opts := pricing.DefaultOptions()
	var (
		weights string
		dir     string
		prefix  string
		seed    int64
	)

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.Products, "products", opts.Products, "number of products")
	fs.IntVar(&opts.MinPrices, "min-prices", opts.MinPrices, "fewest candidate prices per product")
	fs.IntVar(&opts.MaxPrices, "max-prices", opts.MaxPrices, "most candidate prices per product")
	fs.IntVar(&opts.MinMargin, "min-margin", opts.MinMargin, "lowest margin of sales")
	fs.IntVar(&opts.MaxMargin, "max-margin", opts.MaxMargin, "highest margin of sales")
	fs.StringVar(&weights, "margin-weights", "", "comma separated weights of equal margin bands, e.g. 0.5,0.3,0.2")
	fs.Float64Var(&opts.Density, "density", opts.Density, "chance of a cross elasticity between two products of a group")
	fs.IntVar(&opts.Groups, "groups", opts.Groups, "number of disjoint product groups")
	fs.StringVar(&dir, "out", "data/synthetic_data", "output directory")
	fs.StringVar(&prefix, "prefix", "synthetic", "output file name prefix")
	fs.Int64Var(&seed, "seed", 0, "random seed for reproducibility (0 = random)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	w, err := parseWeights(weights)
	if err != nil {
		return err
	}
	opts.MarginWeights = w

	rng, seed := pricing.NewRand(seed)
	d, err := pricing.Generate(rng, opts)
	if err != nil {
		return err
	}
	prices, elasticities, err := pricing.SaveDataset(dir, prefix, d)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "Data generated: %s and %s (seed %d)\n", prices, elasticities, seed)
	return err
}

func parseWeights(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("margin weight %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}
