package queries

import (
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrPageIsInvalid  = errors.New("page must be greater than 0")
	ErrLimitIsInvalid = errors.New("limit must be greater than 0")
)

// ListOrdersQuery retrieves a page of orders, optionally filtered by stored
// status. Pages are 1-indexed; a page past the end yields an empty slice with
// the correct total.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of orders. A nil status means
// no filtering.
func NewListOrdersQuery(status *order.Status, page int, limit int) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listQuery.setStatus(status),
		listQuery.setPage(page),
		listQuery.setLimit(limit),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when unfiltered.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the 1-indexed page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the maximum number of orders per page.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

func (q *ListOrdersQuery) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page <= 0 {
		return ErrPageIsInvalid
	}

	q.page = page
	return nil
}

func (q *ListOrdersQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}

	q.limit = limit
	return nil
}

// ListOrdersQueryResponse is one page of the order list read model.
// Total counts every order matching the filter, not just this page.
type ListOrdersQueryResponse struct {
	Orders []OrderResponse
	Total  int64
	Page   int
	Limit  int
}
