package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItemsSingleProduct(t *testing.T) {
	productID := int64(7)
	in := SaleInput{ProductID: &productID}

	items := in.LineItems()

	require.Len(t, items, 1)
	assert.Equal(t, int64(7), *items[0])
}

func TestLineItemsMissingProductWritesNull(t *testing.T) {
	items := SaleInput{}.LineItems()

	require.Len(t, items, 1)
	assert.Nil(t, items[0])
}

func TestLineItemsListWins(t *testing.T) {
	productID := int64(7)
	in := SaleInput{ProductID: &productID, ProductIDs: []int64{3, 1, 2}}

	items := in.LineItems()

	require.Len(t, items, 3)
	assert.Equal(t, int64(3), *items[0])
	assert.Equal(t, int64(1), *items[1])
	assert.Equal(t, int64(2), *items[2])
}
