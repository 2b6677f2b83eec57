package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query for one page of orders.
// The total is computed after applying the status filter, so clients can
// paginate filtered views correctly. Results sort newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	response := ListOrdersQueryResponse{
		Orders: make([]OrderResponse, 0),
		Page:   query.Page(),
		Limit:  query.Limit(),
	}

	countSQL := `SELECT COUNT(*) FROM orders`
	listSQL := `SELECT ` + orderColumns + ` FROM orders`
	var args []any

	if query.Status() != nil {
		countSQL += ` WHERE status = ?`
		listSQL += ` WHERE status = ?`
		args = append(args, query.Status().String())
	}

	if err := h.db.WithContext(ctx).Raw(countSQL, args...).Scan(&response.Total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	listSQL += ` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`
	args = append(args, query.Limit(), offset)

	rows, err := h.db.WithContext(ctx).Raw(listSQL, args...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return ListOrdersQueryResponse{}, scanErr
		}
		response.Orders = append(response.Orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return response, nil
}
