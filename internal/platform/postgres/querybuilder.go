package postgres

import (
	"fmt"
	"strings"

	"github.com/acme-services/catalog-api/internal/store"
)

// sortClauses is the closed mapping from sort tokens to ORDER BY
// clauses. Client input never reaches the SQL text except through this
// table, which is the injection defense for ORDER BY: an unknown token
// falls back to defaultSortClause.
var sortClauses = map[string]string{
	store.SortNewest:    "id DESC",
	store.SortPriceAsc:  "price ASC",
	store.SortPriceDesc: "price DESC",
}

const defaultSortClause = "id ASC"

// buildListQuery translates a validated ListFilter into a parameterized
// SELECT statement and its ordered argument list. Every filter value is
// bound as a positional parameter; nothing client-supplied is
// concatenated into the statement text.
func buildListQuery(f store.ListFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT id, name, description, price, category FROM products")

	var conds []string
	var args []any

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	order, ok := sortClauses[f.Sort]
	if !ok {
		order = defaultSortClause
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(order)

	limit := f.Limit
	if limit < 1 {
		limit = store.DefaultLimit
	}
	args = append(args, limit)
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	args = append(args, f.Offset())
	sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))

	return sb.String(), args
}
