//go:build unit

package queries_test

import (
	"context"
	"testing"

	"ootd-commerce/internal/usecase/queries"
	queriesmock "ootd-commerce/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClampTopN(t *testing.T) {
	testCases := []struct {
		name string
		n    int
		want int
	}{
		{name: "unset uses the default", n: 0, want: 5},
		{name: "negative uses the default", n: -3, want: 5},
		{name: "lower bound", n: 1, want: 1},
		{name: "within range", n: 12, want: 12},
		{name: "upper bound", n: 50, want: 50},
		{name: "above the cap", n: 51, want: 50},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, queries.ClampTopN(tc.n))
		})
	}
}

func TestSalesQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("top products use the clamped limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockSalesReadStore(ctrl)
		rs.EXPECT().TopProducts(gomock.Any(), int32(50)).Return([]*queries.TopProductView{{SoldQuantity: 9}}, nil)

		got, err := queries.NewSalesQueries(rs).TopProducts(ctx, 1000)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("top keywords default to five", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockSalesReadStore(ctrl)
		rs.EXPECT().TopKeywords(gomock.Any(), int32(5)).Return([]*queries.TopKeywordView{{Keyword: "linen", SoldQuantity: 4}}, nil)

		got, err := queries.NewSalesQueries(rs).TopKeywords(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, "linen", got[0].Keyword)
	})
}
