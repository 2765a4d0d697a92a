// Package pricing holds the price optimization data the frontend works with:
// synthetic price and cross-elasticity datasets for the optimizer, and the
// per-cluster price solutions it writes back.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// PricePoint is one candidate price of a product and the margin it earns.
type PricePoint struct {
	Product int
	Price   int
	Margin  int
}

// CrossElasticity is the margin change on Affected when Product sells at Price.
type CrossElasticity struct {
	Product  int
	Affected int
	Price    int
	Effect   float64
}

// Dataset is one generated problem instance.
type Dataset struct {
	Prices            []PricePoint
	CrossElasticities []CrossElasticity
}

// Options control synthetic data generation. Ranges are inclusive.
type Options struct {
	Products  int
	MinPrices int
	MaxPrices int
	MinMargin int
	MaxMargin int
	// MarginWeights splits the margin range into len(MarginWeights) equal
	// bands and picks a band per price by weight. Empty means uniform.
	MarginWeights []float64
	// Density is the chance that a directed product pair within a group
	// gets a cross elasticity.
	Density float64
	// Groups is the number of disjoint product graphs.
	Groups int
}

// DefaultOptions match the optimizer's reference dataset.
func DefaultOptions() Options {
	return Options{
		Products:  10,
		MinPrices: 2,
		MaxPrices: 7,
		MinMargin: 100,
		MaxMargin: 10000,
		Density:   0.5,
		Groups:    1,
	}
}

const (
	maxEffect       = 20.0
	weightTolerance = 1e-8
)

func (o Options) Validate() error {
	switch {
	case o.Products < 1:
		return fmt.Errorf("products must be at least 1, got %d", o.Products)
	case o.MinPrices < 1 || o.MaxPrices < o.MinPrices:
		return fmt.Errorf("price count range [%d, %d] is invalid", o.MinPrices, o.MaxPrices)
	case o.MaxMargin < o.MinMargin:
		return fmt.Errorf("margin range [%d, %d] is invalid", o.MinMargin, o.MaxMargin)
	case o.Density < 0 || o.Density > 1 || math.IsNaN(o.Density):
		return fmt.Errorf("density must be between 0 and 1, got %v", o.Density)
	case o.Groups < 1 || o.Groups > o.Products:
		return fmt.Errorf("groups must be between 1 and products (%d), got %d", o.Products, o.Groups)
	}
	if len(o.MarginWeights) > 0 {
		var sum float64
		for _, w := range o.MarginWeights {
			if w < 0 {
				return errors.New("margin weights must not be negative")
			}
			sum += w
		}
		if math.Abs(sum-1) > weightTolerance {
			return fmt.Errorf("margin weights must sum to 1, got %v", sum)
		}
	}
	return nil
}

// NewRand returns a generator for seed. Seed 0 picks one from the clock and
// reports it, so a run can be repeated.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// Generate builds a dataset. Products are shuffled into o.Groups disjoint
// groups; cross elasticities only connect products of the same group.
func Generate(rng *rand.Rand, o Options) (Dataset, error) {
	if err := o.Validate(); err != nil {
		return Dataset{}, err
	}

	products := make([]int, o.Products)
	for i := range products {
		products[i] = i + 1
	}
	rng.Shuffle(len(products), func(i, j int) { products[i], products[j] = products[j], products[i] })

	groups := make([][]int, o.Groups)
	for i, p := range products {
		groups[i%o.Groups] = append(groups[i%o.Groups], p)
	}

	prices, counts := generatePrices(rng, o)
	return Dataset{
		Prices:            prices,
		CrossElasticities: generateCrossElasticities(rng, groups, counts, o.Density),
	}, nil
}

// generatePrices gives product p the prices 1..n with n drawn from the
// configured range. counts[p] is n.
func generatePrices(rng *rand.Rand, o Options) ([]PricePoint, map[int]int) {
	var prices []PricePoint
	counts := make(map[int]int, o.Products)
	for p := 1; p <= o.Products; p++ {
		n := between(rng, o.MinPrices, o.MaxPrices)
		counts[p] = n
		for price := 1; price <= n; price++ {
			prices = append(prices, PricePoint{Product: p, Price: price, Margin: margin(rng, o)})
		}
	}
	return prices, counts
}

func margin(rng *rand.Rand, o Options) int {
	if len(o.MarginWeights) == 0 {
		return between(rng, o.MinMargin, o.MaxMargin)
	}
	band := pick(rng, o.MarginWeights)
	width := float64(o.MaxMargin-o.MinMargin) / float64(len(o.MarginWeights))
	lo := o.MinMargin + int(float64(band)*width)
	hi := o.MinMargin + int(float64(band+1)*width)
	return between(rng, lo, hi)
}

// pick returns an index drawn by weight.
func pick(rng *rand.Rand, weights []float64) int {
	r := rng.Float64()
	var acc float64
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}

func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// generateCrossElasticities first tries the chain of neighbours in each group,
// then every remaining pair. Each directed pair is drawn at most once and,
// when drawn, gets one effect per price of its source product.
func generateCrossElasticities(rng *rand.Rand, groups [][]int, counts map[int]int, density float64) []CrossElasticity {
	var out []CrossElasticity
	seen := make(map[[2]int]bool)

	link := func(a, b int) {
		if seen[[2]int{a, b}] || rng.Float64() >= density {
			return
		}
		seen[[2]int{a, b}] = true
		for price := 1; price <= counts[a]; price++ {
			effect := (rng.Float64()*2 - 1) * maxEffect
			out = append(out, CrossElasticity{
				Product:  a,
				Affected: b,
				Price:    price,
				Effect:   math.Round(effect*100) / 100,
			})
		}
	}

	for _, g := range groups {
		for i := 0; i+1 < len(g); i++ {
			link(g[i], g[i+1])
			link(g[i+1], g[i])
		}
		if density == 0 {
			continue
		}
		for i := 0; i < len(g); i++ {
			for j := i + 1; j < len(g); j++ {
				link(g[i], g[j])
				link(g[j], g[i])
			}
		}
	}
	return out
}
