package pricing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Delimiter separates fields in every pricing CSV.
const Delimiter = ';'

const (
	pricesSuffix     = "_elasticity_prices.csv"
	elasticitySuffix = "_cross_elasticity_prices.csv"

	// Unassigned marks a product the optimizer found no solution for.
	Unassigned = "-1"
)

var (
	pricesHeader     = []string{"product", "price", "margin_of_sales"}
	elasticityHeader = []string{"product_A", "affected_product_B", "price_A", "afected_margin_B"}
	solutionsHeader  = []string{"product", "price", "cluster"}
)

// DatasetFiles returns the price and cross-elasticity file paths for prefix.
func DatasetFiles(dir, prefix string) (prices, elasticities string) {
	return filepath.Join(dir, prefix+pricesSuffix), filepath.Join(dir, prefix+elasticitySuffix)
}

func newWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	return cw
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	return cr
}

func WritePrices(w io.Writer, prices []PricePoint) error {
	cw := newWriter(w)
	if err := cw.Write(pricesHeader); err != nil {
		return err
	}
	for _, p := range prices {
		record := []string{strconv.Itoa(p.Product), strconv.Itoa(p.Price), strconv.Itoa(p.Margin)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteCrossElasticities(w io.Writer, rows []CrossElasticity) error {
	cw := newWriter(w)
	if err := cw.Write(elasticityHeader); err != nil {
		return err
	}
	for _, e := range rows {
		record := []string{
			strconv.Itoa(e.Product),
			strconv.Itoa(e.Affected),
			strconv.Itoa(e.Price),
			strconv.FormatFloat(e.Effect, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveDataset writes both files of d into dir, creating dir if needed, and
// returns their paths.
func SaveDataset(dir, prefix string, d Dataset) (prices, elasticities string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create %s: %w", dir, err)
	}
	prices, elasticities = DatasetFiles(dir, prefix)
	if err := writeFile(prices, func(w io.Writer) error { return WritePrices(w, d.Prices) }); err != nil {
		return "", "", err
	}
	if err := writeFile(elasticities, func(w io.Writer) error { return WriteCrossElasticities(w, d.CrossElasticities) }); err != nil {
		return "", "", err
	}
	return prices, elasticities, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := write(file); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Solution is the optimizer's answer for one product: the prices it keeps
// and the cluster (dataset prefix) it was solved in.
type Solution struct {
	Product int
	Prices  []int
	Cluster string
}

// Assigned reports whether the product belongs to a solved cluster.
func (s Solution) Assigned() bool {
	return s.Cluster != Unassigned && s.Cluster != ""
}

// Cluster groups the solutions solved together.
type Cluster struct {
	Name      string
	Solutions []Solution
}

// ErrNoSolutions is returned when no solution file is configured.
var ErrNoSolutions = errors.New("no solution file configured")

// ReadSolutions parses a merged solution file: a product;price;cluster
// header, then one row per product where price is a comma separated list.
// Unsolved products carry -1 in both columns.
func ReadSolutions(r io.Reader) ([]Solution, error) {
	cr := newReader(r)
	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	for i, h := range solutionsHeader {
		if strings.TrimSpace(header[i]) != h {
			return nil, fmt.Errorf("unexpected header %q", strings.Join(header, string(Delimiter)))
		}
	}

	var out []Solution
	for {
		record, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		s, err := toSolution(record)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product < out[j].Product })
	return out, nil
}

func toSolution(record []string) (Solution, error) {
	product, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return Solution{}, fmt.Errorf("product %q: %w", record[0], err)
	}
	s := Solution{Product: product, Cluster: strings.TrimSpace(record[2])}

	field := strings.TrimSpace(record[1])
	if field == "" || field == Unassigned {
		return s, nil
	}
	for _, part := range strings.Split(field, ",") {
		price, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Solution{}, fmt.Errorf("price %q: %w", part, err)
		}
		s.Prices = append(s.Prices, price)
	}
	sort.Ints(s.Prices)
	return s, nil
}

// LoadSolutions reads the solution file at path. An empty path gives
// ErrNoSolutions.
func LoadSolutions(path string) ([]Solution, error) {
	if path == "" {
		return nil, ErrNoSolutions
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("close solution file", slog.String("path", path), slog.Any("err", err))
		}
	}()
	solutions, err := ReadSolutions(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return solutions, nil
}

// Clusters groups assigned solutions by cluster name, in name order.
// Unassigned products are returned separately.
func Clusters(solutions []Solution) (clusters []Cluster, unassigned []Solution) {
	index := make(map[string]int)
	for _, s := range solutions {
		if !s.Assigned() {
			unassigned = append(unassigned, s)
			continue
		}
		i, ok := index[s.Cluster]
		if !ok {
			i = len(clusters)
			index[s.Cluster] = i
			clusters = append(clusters, Cluster{Name: s.Cluster})
		}
		clusters[i].Solutions = append(clusters[i].Solutions, s)
	}
	sort.SliceStable(clusters, func(i, j int) bool { return clusters[i].Name < clusters[j].Name })
	return clusters, unassigned
}
