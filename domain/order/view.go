package order

import (
	"context"
	"strings"
	"time"

	"shopapi/domain/shared"
)

// OrderView is the response shape every listing strategy converges on:
// order header fields plus the nested line items. The six strategies
// differ only in how many queries they issue and how much duplicated
// data they transfer to build it.
type OrderView struct {
	OrderID    int64          `json:"order_id"`
	MemberName string         `json:"member_name"`
	OrderDate  time.Time      `json:"order_date"`
	Status     Status         `json:"status"`
	Address    shared.Address `json:"address"`
	LineItems  []LineView     `json:"line_items"`
}

// LineView is one line item inside an OrderView. Line items keep the
// order the underlying query returned them in; they are never
// re-sorted.
type LineView struct {
	ItemName   string `json:"item_name"`
	OrderPrice int64  `json:"order_price"`
	Count      int64  `json:"count"`
}

// Strategy selects how a listing materializes its result set.
type Strategy string

const (
	// StrategyEntity loads order rows, then resolves member, delivery
	// and every line item's item with separate queries per order.
	// Query count O(rows x associations); results capped, pageable.
	StrategyEntity Strategy = "entity"

	// StrategyFetchJoin joins all five tables in one query and
	// collapses the row multiplication by order identity. Paging is
	// rejected: a row-level limit would truncate line items, not
	// orders.
	StrategyFetchJoin Strategy = "fetch-join"

	// StrategyPagedBatch joins only the to-one associations (member,
	// delivery), which is safe under offset/limit, then fetches the
	// page's line items in batched IN queries.
	StrategyPagedBatch Strategy = "paged-batch"

	// StrategyDTO projects order headers directly (pageable), then
	// issues one line-item projection query per order. 1+N queries.
	StrategyDTO Strategy = "dto"

	// StrategyDTOBatch projects order headers directly, then fetches
	// all line items of the page in a single IN query. 2 queries.
	StrategyDTOBatch Strategy = "dto-batch"

	// StrategyFlat projects everything in one query, one row per line
	// item, and regroups in memory. 1 query, duplicated header data,
	// paging rejected.
	StrategyFlat Strategy = "flat"
)

// ParseStrategy validates a strategy token.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyEntity:
		return StrategyEntity, nil
	case StrategyFetchJoin:
		return StrategyFetchJoin, nil
	case StrategyPagedBatch:
		return StrategyPagedBatch, nil
	case StrategyDTO:
		return StrategyDTO, nil
	case StrategyDTOBatch:
		return StrategyDTOBatch, nil
	case StrategyFlat:
		return StrategyFlat, nil
	}
	return "", ErrUnknownStrategy
}

// SupportsPaging reports whether offset/limit may be combined with the
// strategy. The collapsing strategies cannot honor a row-level limit.
func (s Strategy) SupportsPaging() bool {
	switch s {
	case StrategyFetchJoin, StrategyFlat:
		return false
	}
	return true
}

// ParseStatus validates a status filter token. An empty token means
// "no filter" and is handled by the caller; anything else must be a
// known status.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusOrder:
		return StatusOrder, nil
	case StatusCancel:
		return StatusCancel, nil
	}
	return "", ErrUnknownStatus
}

// Filter narrows a listing. A nil Status means no status filter;
// MemberName is a substring match on the member's name.
type Filter struct {
	Status     *Status
	MemberName string
}

// Page is an offset/limit window over orders (not rows).
type Page struct {
	Offset int
	Limit  int
}

// ListQuery is a fully parsed listing request.
type ListQuery struct {
	Filter   Filter
	Page     *Page
	Strategy Strategy
}

// Validate fails fast on unsupported strategy/paging combinations and
// malformed windows, before any query is constructed.
func (q ListQuery) Validate() error {
	if _, err := ParseStrategy(string(q.Strategy)); err != nil {
		return err
	}
	if q.Page != nil {
		if !q.Strategy.SupportsPaging() {
			return ErrPagingUnsupported
		}
		if q.Page.Offset < 0 || q.Page.Limit <= 0 {
			return ErrInvalidPage
		}
	}
	return nil
}

// ViewRepository materializes order listings. Implementations must
// apply the shared grouping rule: group by order id, line items in the
// order the underlying query returned them.
type ViewRepository interface {
	List(ctx context.Context, q ListQuery) ([]OrderView, error)
}
