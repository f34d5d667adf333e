//go:build unit

package product_test

import (
	"strings"
	"testing"
	"time"

	"ootd-commerce/internal/domain/product"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func mustListing(t *testing.T, name, desc string, price int64) product.Listing {
	t.Helper()
	l, err := product.NewListing(name, desc, price)
	require.NoError(t, err)
	return l
}

func TestNextSnapshot(t *testing.T) {
	productID := uuid.New()

	t.Run("初回出品はバージョン1", func(t *testing.T) {
		next, changed := product.NextSnapshot(nil, productID, mustListing(t, "Shirt", "cotton", 2500), now)

		assert.True(t, changed)
		assert.Equal(t, 1, next.Version())
		assert.Equal(t, productID, next.ProductID())
		assert.Equal(t, now, next.CreatedAt())
	})

	t.Run("同一内容なら新しいバージョンを作らない", func(t *testing.T) {
		latest := product.ReconstructSnapshot(uuid.New(), productID, 3, mustListing(t, "Shirt", "cotton", 2500), now.Add(-time.Hour))

		next, changed := product.NextSnapshot(latest, productID, mustListing(t, " Shirt ", "cotton ", 2500), now)

		assert.False(t, changed)
		assert.Same(t, latest, next)
	})

	t.Run("価格変更でバージョンが1つ進む", func(t *testing.T) {
		latest := product.ReconstructSnapshot(uuid.New(), productID, 3, mustListing(t, "Shirt", "cotton", 2500), now.Add(-time.Hour))

		next, changed := product.NextSnapshot(latest, productID, mustListing(t, "Shirt", "cotton", 2700), now)

		require.True(t, changed)
		assert.Equal(t, 4, next.Version())
		assert.NotEqual(t, latest.ID(), next.ID())
		assert.Equal(t, int64(2500), latest.Listing().PriceCents())
		assert.Equal(t, int64(2700), next.Listing().PriceCents())
	})

	t.Run("説明だけの変更も新バージョン", func(t *testing.T) {
		latest := product.ReconstructSnapshot(uuid.New(), productID, 1, mustListing(t, "Shirt", "cotton", 2500), now)

		_, changed := product.NextSnapshot(latest, productID, mustListing(t, "Shirt", "linen", 2500), now)

		assert.True(t, changed)
	})
}

func TestListing(t *testing.T) {
	testCases := []struct {
		name  string
		title string
		desc  string
		price int64
		errIs error
	}{
		{name: "無料商品OK", title: "Sample", price: 0},
		{name: "名前100文字OK", title: strings.Repeat("あ", product.MaxNameLength), price: 1},
		{name: "空の名前NG", title: "   ", price: 1, errIs: product.ErrInvalidName},
		{name: "名前101文字NG", title: strings.Repeat("a", product.MaxNameLength+1), price: 1, errIs: product.ErrInvalidName},
		{name: "負の価格NG", title: "Shirt", price: -1, errIs: product.ErrNegativePrice},
		{name: "説明が長すぎるNG", title: "Shirt", desc: strings.Repeat("x", product.MaxDescriptionLength+1), errIs: product.ErrDescriptionTooLong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := product.NewListing(tc.title, tc.desc, tc.price)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProduct_Stock(t *testing.T) {
	t.Run("負の在庫で作成NG", func(t *testing.T) {
		_, err := product.NewProduct(uuid.New(), -1, true, now)
		assert.ErrorIs(t, err, product.ErrNegativeStock)
	})

	t.Run("在庫の範囲内なら減算できる", func(t *testing.T) {
		p, err := product.NewProduct(uuid.New(), 5, true, now)
		require.NoError(t, err)

		require.NoError(t, p.Decrement(5))
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("在庫超過NG", func(t *testing.T) {
		p := product.ReconstructProduct(uuid.New(), uuid.New(), 2, true, now)

		assert.ErrorIs(t, p.Decrement(3), product.ErrInsufficientStock)
		assert.Equal(t, 2, p.Stock())
	})

	t.Run("数量0NG", func(t *testing.T) {
		p := product.ReconstructProduct(uuid.New(), uuid.New(), 2, true, now)
		assert.ErrorIs(t, p.CanSupply(0), product.ErrInvalidQuantity)
	})

	t.Run("在庫の直接設定", func(t *testing.T) {
		p := product.ReconstructProduct(uuid.New(), uuid.New(), 2, true, now)
		assert.ErrorIs(t, p.SetStock(-5), product.ErrNegativeStock)
		require.NoError(t, p.SetStock(0))
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("int32を超える在庫NG", func(t *testing.T) {
		_, err := product.NewProduct(uuid.New(), 4294967301, true, now)
		assert.ErrorIs(t, err, product.ErrStockTooLarge)

		p := product.ReconstructProduct(uuid.New(), uuid.New(), 2, true, now)
		assert.ErrorIs(t, p.SetStock(4294967301), product.ErrStockTooLarge)
		assert.ErrorIs(t, p.SetStock(product.MaxStock+1), product.ErrStockTooLarge)
		assert.Equal(t, 2, p.Stock())

		require.NoError(t, p.SetStock(product.MaxStock))
		assert.Equal(t, product.MaxStock, p.Stock())
	})
}

func TestIsPurchasable(t *testing.T) {
	assert.True(t, product.IsPurchasable(true, true))
	assert.False(t, product.IsPurchasable(true, false))
	assert.False(t, product.IsPurchasable(false, true))
}

func TestNormalizeKeywords(t *testing.T) {
	t.Run("正規化と重複除去", func(t *testing.T) {
		got, err := product.NormalizeKeywords([]string{" Linen", "linen", "", "SUMMER", "summer "})
		require.NoError(t, err)
		assert.Equal(t, []string{"linen", "summer"}, got)
	})

	t.Run("キーワードが長すぎるNG", func(t *testing.T) {
		_, err := product.NormalizeKeywords([]string{strings.Repeat("k", product.MaxKeywordLength+1)})
		assert.ErrorIs(t, err, product.ErrInvalidKeyword)
	})

	t.Run("キーワード数の上限", func(t *testing.T) {
		raw := make([]string, product.MaxKeywords+1)
		for i := range raw {
			raw[i] = strings.Repeat("k", i+1)
		}
		_, err := product.NormalizeKeywords(raw)
		assert.ErrorIs(t, err, product.ErrTooManyKeywords)
	})
}
