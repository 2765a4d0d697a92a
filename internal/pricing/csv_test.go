package pricing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePrices(t *testing.T) {
	var b strings.Builder
	err := WritePrices(&b, []PricePoint{{Product: 1, Price: 1, Margin: 120}, {Product: 1, Price: 2, Margin: 95}})
	require.NoError(t, err)
	assert.Equal(t, "product;price;margin_of_sales\n1;1;120\n1;2;95\n", b.String())
}

func TestWriteCrossElasticities(t *testing.T) {
	var b strings.Builder
	err := WriteCrossElasticities(&b, []CrossElasticity{
		{Product: 2, Affected: 1, Price: 1, Effect: -3.5},
		{Product: 2, Affected: 1, Price: 2, Effect: 12.07},
	})
	require.NoError(t, err)
	assert.Equal(t, "product_A;affected_product_B;price_A;afected_margin_B\n2;1;1;-3.5\n2;1;2;12.07\n", b.String())
}

func TestSaveDataset(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "synthetic_data")
	d, err := Generate(seeded(1), DefaultOptions())
	require.NoError(t, err)

	prices, elasticities, err := SaveDataset(dir, "example", d)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "example_elasticity_prices.csv"), prices)
	assert.Equal(t, filepath.Join(dir, "example_cross_elasticity_prices.csv"), elasticities)

	b, err := os.ReadFile(prices)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	assert.Equal(t, "product;price;margin_of_sales", lines[0])
	assert.Len(t, lines, len(d.Prices)+1)

	b, err = os.ReadFile(elasticities)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "product_A;affected_product_B;price_A;afected_margin_B\n"))
}

func TestReadSolutions(t *testing.T) {
	in := "product;price;cluster\n3;-1;-1\n1;3,1;alpha\n2; 2 ;beta\n4;;alpha\n"
	got, err := ReadSolutions(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Solution{
		{Product: 1, Prices: []int{1, 3}, Cluster: "alpha"},
		{Product: 2, Prices: []int{2}, Cluster: "beta"},
		{Product: 3, Cluster: Unassigned},
		{Product: 4, Cluster: "alpha"},
	}, got)
	assert.False(t, got[2].Assigned())
	assert.True(t, got[3].Assigned())
}

func TestReadSolutionsEmpty(t *testing.T) {
	got, err := ReadSolutions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = ReadSolutions(strings.NewReader("product;price;cluster\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadSolutionsRejectsMalformedInput(t *testing.T) {
	tests := map[string]string{
		"wrong header":  "id;price;cluster\n1;1;a\n",
		"comma header":  "product,price,cluster\n",
		"bad product":   "product;price;cluster\nx;1;a\n",
		"bad price":     "product;price;cluster\n1;1,y;a\n",
		"missing field": "product;price;cluster\n1;1\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadSolutions(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestLoadSolutions(t *testing.T) {
	_, err := LoadSolutions("")
	assert.ErrorIs(t, err, ErrNoSolutions)

	_, err = LoadSolutions(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "solutions.csv")
	require.NoError(t, os.WriteFile(path, []byte("product;price;cluster\n1;2;a\n"), 0o644))
	got, err := LoadSolutions(path)
	require.NoError(t, err)
	assert.Equal(t, []Solution{{Product: 1, Prices: []int{2}, Cluster: "a"}}, got)
}

func TestClustersGroupsByName(t *testing.T) {
	clusters, unassigned := Clusters([]Solution{
		{Product: 1, Prices: []int{1}, Cluster: "beta"},
		{Product: 2, Cluster: Unassigned},
		{Product: 3, Prices: []int{2}, Cluster: "alpha"},
		{Product: 4, Prices: []int{1, 2}, Cluster: "beta"},
	})
	require.Len(t, clusters, 2)
	assert.Equal(t, "alpha", clusters[0].Name)
	assert.Equal(t, []Solution{{Product: 3, Prices: []int{2}, Cluster: "alpha"}}, clusters[0].Solutions)
	assert.Equal(t, "beta", clusters[1].Name)
	assert.Len(t, clusters[1].Solutions, 2)
	assert.Equal(t, []Solution{{Product: 2, Cluster: Unassigned}}, unassigned)
}
