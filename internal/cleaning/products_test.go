package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomclean/pkg/contracts/domain"
)

func productsTable(rows ...domain.Row) *domain.Table {
	t := domain.NewTable(domain.TableProducts, "product_id", "category", "price")
	t.Rows = rows
	return t
}

func TestProductCleaner_Clean(t *testing.T) {
	cleaner := NewProductCleaner()

	t.Run("stable dedup by product_id", func(t *testing.T) {
		in := productsTable(
			domain.Row{"product_id": "P1", "category": "beans", "price": 25.0},
			domain.Row{"product_id": "P2", "category": "beans", "price": 30.0},
			domain.Row{"product_id": "P1", "category": "machines", "price": 999.0},
		)
		out, stats := cleaner.Clean(in)

		require.Equal(t, 2, out.Len())
		assert.Equal(t, 1, stats.Duplicates)
		assert.Equal(t, "Beans", out.Rows[0]["category"], "first occurrence wins")
	})

	t.Run("category trimmed and title cased", func(t *testing.T) {
		tests := []struct {
			raw  string
			want string
		}{
			{raw: "  coffee beans ", want: "Coffee Beans"},
			{raw: "MACHINES", want: "Machines"},
			{raw: "accessories", want: "Accessories"},
		}
		for _, tt := range tests {
			in := productsTable(domain.Row{"product_id": "P1", "category": tt.raw, "price": 1.0})
			out, _ := cleaner.Clean(in)
			assert.Equal(t, tt.want, out.Rows[0]["category"])
		}
	})

	t.Run("bad price becomes null but row is kept", func(t *testing.T) {
		in := productsTable(
			domain.Row{"product_id": "P1", "category": "beans", "price": "call us"},
			domain.Row{"product_id": "P2", "category": "beans", "price": "42.50"},
		)
		out, stats := cleaner.Clean(in)

		require.Equal(t, 2, out.Len(), "products are never dropped for bad price")
		assert.Nil(t, out.Rows[0]["price"])
		assert.Equal(t, 42.50, out.Rows[1]["price"])
		assert.Equal(t, 2, stats.FinalRows)
	})

	t.Run("input table is not mutated", func(t *testing.T) {
		in := productsTable(domain.Row{"product_id": "P1", "category": " beans ", "price": "10"})
		_, _ = cleaner.Clean(in)
		assert.Equal(t, " beans ", in.Rows[0]["category"])
		assert.Equal(t, "10", in.Rows[0]["price"])
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		in := productsTable(
			domain.Row{"product_id": "P1", "category": " beans ", "price": "10"},
			domain.Row{"product_id": "P1", "category": "beans", "price": 10.0},
			domain.Row{"product_id": "P2", "category": "grinders", "price": "n/a"},
		)
		once, _ := cleaner.Clean(in)
		twice, stats := cleaner.Clean(once)

		assert.Equal(t, 0, stats.Duplicates)
		assert.Equal(t, once, twice)
	})
}
