package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhysicalProduct(t *testing.T) {
	product, err := NewPhysicalProduct("Test Physical Product", "An example physical product",
		decimal.NewFromFloat(20.00), 10, decimal.NewFromFloat(2.5))
	require.NoError(t, err)

	assert.Equal(t, ProductKindPhysical, product.Kind())
	assert.Equal(t, "Test Physical Product", product.Name())
	assert.Equal(t, "An example physical product", product.Description())
	assert.True(t, product.Price().Equal(decimal.NewFromFloat(20.00)))
	assert.Equal(t, 10, product.Weight())
	assert.True(t, product.ShippingCost().Equal(decimal.NewFromFloat(2.5)))
}

func TestNewDigitalProduct(t *testing.T) {
	product, err := NewDigitalProduct("Test Digital Product", "An example digital product",
		decimal.NewFromFloat(10.00), "http://example.com/download")
	require.NoError(t, err)

	assert.Equal(t, ProductKindDigital, product.Kind())
	assert.Equal(t, "Test Digital Product", product.Name())
	assert.Equal(t, "An example digital product", product.Description())
	assert.True(t, product.Price().Equal(decimal.NewFromFloat(10.00)))
	assert.Equal(t, "http://example.com/download", product.DownloadURL())
}

func TestNewProduct_NegativePrice(t *testing.T) {
	physical, err := NewPhysicalProduct("p", "d", decimal.NewFromFloat(-0.01), 1, decimal.Zero)
	assert.ErrorIs(t, err, ErrNegativePrice)
	assert.Nil(t, physical)

	digital, err := NewDigitalProduct("p", "d", decimal.NewFromInt(-10), "http://example.com/download")
	assert.ErrorIs(t, err, ErrNegativePrice)
	assert.Nil(t, digital)
}

func TestNewProduct_ZeroPriceAllowed(t *testing.T) {
	product, err := NewDigitalProduct("Freebie", "free sample chapter", decimal.Zero, "http://example.com/sample")
	require.NoError(t, err)
	assert.True(t, product.Price().IsZero())
}

func TestNewProduct_DistinctIdentity(t *testing.T) {
	// same attributes, separate constructions: still two distinct products
	a, err := NewDigitalProduct("p", "d", decimal.NewFromInt(10), "http://example.com/download")
	require.NoError(t, err)
	b, err := NewDigitalProduct("p", "d", decimal.NewFromInt(10), "http://example.com/download")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), b.ID())
}
