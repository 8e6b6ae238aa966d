package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		original float64
		discount int
		want     float64
	}{
		{"fifteen percent off", 150.00, 15, 127.50},
		{"no discount", 150.00, 0, 150.00},
		{"thirty percent off", 120.00, 30, 84.00},
		{"rounds to two decimals", 199.99, 20, 159.99},
		{"small price", 75.50, 18, 61.91},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FinalPrice(tt.original, tt.discount), 0.001)
		})
	}
}

func TestCategoriesComplete(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 3)
	for _, slug := range []string{"aesthetic", "clothes", "social"} {
		c, ok := cats[slug]
		require.True(t, ok, "missing category %s", slug)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Theme)
		assert.NotEmpty(t, c.Description)
	}
}

func TestProductsByCategory(t *testing.T) {
	for _, slug := range []string{"aesthetic", "clothes", "social"} {
		ps, err := ProductsByCategory(slug)
		require.NoError(t, err)
		assert.Len(t, ps, 10, "category %s", slug)
		for _, p := range ps {
			assert.NotEmpty(t, p.ID)
			assert.NotEmpty(t, p.Name)
			assert.NotEmpty(t, p.Image)
			assert.Equal(t, slug, p.Category)
			assert.GreaterOrEqual(t, p.Discount, 0)
			assert.LessOrEqual(t, p.Discount, 30)
			assert.InDelta(t, FinalPrice(p.OriginalPrice, p.Discount), p.FinalPrice, 0.001)
		}
	}
}

func TestProductsByCategoryUnknown(t *testing.T) {
	_, err := ProductsByCategory("furniture")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestProductByID(t *testing.T) {
	p, err := ProductByID("aes_002")
	require.NoError(t, err)
	assert.Equal(t, "Gold Cuban Link Chain", p.Name)
	assert.Equal(t, "aesthetic", p.Category)
	assert.InDelta(t, 150.00, p.OriginalPrice, 0.001)
	assert.Equal(t, 15, p.Discount)
	assert.InDelta(t, 127.50, p.FinalPrice, 0.001)
}

func TestProductByIDAccountFlags(t *testing.T) {
	p, err := ProductByID("soc_001")
	require.NoError(t, err)
	assert.True(t, p.IsAccount)
	assert.True(t, p.Verified)

	p, err = ProductByID("soc_003")
	require.NoError(t, err)
	assert.True(t, p.IsAccount)
	assert.False(t, p.Verified)
}

func TestProductByIDUnknown(t *testing.T) {
	_, err := ProductByID("nope_999")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
