// Package memory is an in-process persistence adapter: the same
// repository interfaces as the MySQL adapter, backed by maps. It
// serves development mode and the application-layer tests; the listing
// strategies' per-query trade-offs only exist on real SQL, so here
// every strategy materializes views the same way and only the
// validation rules (unknown tokens, paging support) and the entity
// strategy's row cap are shared.
package memory

import (
	"context"
	"sort"
	"sync"

	"shopapi/domain/item"
	"shopapi/domain/member"
	"shopapi/domain/order"
	"shopapi/domain/shared"
)

// Store owns all in-memory state. Repositories are facets of it, so
// cross-aggregate reads (order views) stay consistent.
type Store struct {
	mu sync.RWMutex

	nextMemberID   int64
	nextItemID     int64
	nextOrderID    int64
	nextDeliveryID int64

	members map[int64]*member.Member
	items   map[int64]*item.Item
	orders  map[int64]*order.Order
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		members: make(map[int64]*member.Member),
		items:   make(map[int64]*item.Item),
		orders:  make(map[int64]*order.Order),
	}
}

func (s *Store) Members() *MemberRepository      { return &MemberRepository{store: s} }
func (s *Store) Items() *ItemRepository          { return &ItemRepository{store: s} }
func (s *Store) Orders() *OrderRepository        { return &OrderRepository{store: s} }
func (s *Store) OrderViews() *OrderViewRepository {
	return &OrderViewRepository{store: s, entityRowCap: 1000}
}
func (s *Store) UnitOfWork() *UnitOfWork         { return &UnitOfWork{store: s} }

// UnitOfWork serializes units of work on the store. A snapshot taken
// before fn runs is restored when fn fails, so a failed unit of work
// leaves no partial mutation behind, matching the SQL adapter's
// transaction rollback.
type UnitOfWork struct {
	store *Store
	txMu  sync.Mutex
}

func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	u.txMu.Lock()
	defer u.txMu.Unlock()

	snap := u.store.snapshot()
	if err := fn(ctx); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)

type storeSnapshot struct {
	nextMemberID   int64
	nextItemID     int64
	nextOrderID    int64
	nextDeliveryID int64

	members map[int64]*member.Member
	items   map[int64]*item.Item
	orders  map[int64]*order.Order
}

// snapshot deep-copies the store state. Aggregates are cloned through
// Rebuild because repositories hand out the stored pointers, which
// callers mutate in place (Cancel, AddStock) before saving.
func (s *Store) snapshot() storeSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := storeSnapshot{
		nextMemberID:   s.nextMemberID,
		nextItemID:     s.nextItemID,
		nextOrderID:    s.nextOrderID,
		nextDeliveryID: s.nextDeliveryID,
		members:        make(map[int64]*member.Member, len(s.members)),
		items:          make(map[int64]*item.Item, len(s.items)),
		orders:         make(map[int64]*order.Order, len(s.orders)),
	}
	for id, m := range s.members {
		snap.members[id] = cloneMember(m)
	}
	for id, it := range s.items {
		snap.items[id] = cloneItem(it)
	}
	for id, o := range s.orders {
		snap.orders[id] = cloneOrder(o)
	}
	return snap
}

func (s *Store) restore(snap storeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextMemberID = snap.nextMemberID
	s.nextItemID = snap.nextItemID
	s.nextOrderID = snap.nextOrderID
	s.nextDeliveryID = snap.nextDeliveryID
	s.members = snap.members
	s.items = snap.items
	s.orders = snap.orders
}

func cloneMember(m *member.Member) *member.Member {
	return member.Rebuild(member.ReconstructionDTO{
		ID:        m.ID(),
		Name:      m.Name(),
		Address:   m.Address(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	})
}

func cloneItem(it *item.Item) *item.Item {
	return item.Rebuild(item.ReconstructionDTO{
		ID:            it.ID(),
		Kind:          it.Kind(),
		Name:          it.Name(),
		Price:         it.Price(),
		StockQuantity: it.StockQuantity(),
		Book:          it.Book(),
		Album:         it.Album(),
		Movie:         it.Movie(),
		CreatedAt:     it.CreatedAt(),
		UpdatedAt:     it.UpdatedAt(),
	})
}

func cloneOrder(o *order.Order) *order.Order {
	items := make([]order.ItemReconstructionDTO, len(o.Items()))
	for i, li := range o.Items() {
		items[i] = order.ItemReconstructionDTO{
			ID:         li.ID(),
			ItemID:     li.ItemID(),
			OrderPrice: li.OrderPrice(),
			Count:      li.Count(),
		}
	}
	return order.Rebuild(order.ReconstructionDTO{
		ID:         o.ID(),
		MemberID:   o.MemberID(),
		DeliveryID: o.Delivery().ID(),
		Address:    o.Delivery().Address(),
		DeliverySt: o.Delivery().Status(),
		Items:      items,
		Status:     o.Status(),
		OrderedAt:  o.OrderedAt(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	})
}

// MemberRepository in-memory member.Repository.
type MemberRepository struct {
	store *Store
}

func (r *MemberRepository) Save(ctx context.Context, m *member.Member) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	id := m.ID()
	if id == 0 {
		for _, existing := range s.members {
			if existing.Name() == m.Name() {
				return 0, member.ErrDuplicateName
			}
		}
		s.nextMemberID++
		id = s.nextMemberID
	}
	s.members[id] = member.Rebuild(member.ReconstructionDTO{
		ID:        id,
		Name:      m.Name(),
		Address:   m.Address(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	})
	return id, nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id int64) (*member.Member, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.members[id]
	if !ok {
		return nil, member.ErrMemberNotFound
	}
	return m, nil
}

func (r *MemberRepository) FindByName(ctx context.Context, name string) (*member.Member, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.members {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, member.ErrMemberNotFound
}

func (r *MemberRepository) FindAll(ctx context.Context) ([]*member.Member, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make([]*member.Member, 0, len(s.members))
	for _, m := range s.members {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID() < members[j].ID() })
	return members, nil
}

var _ member.Repository = (*MemberRepository)(nil)

// ItemRepository in-memory item.Repository.
type ItemRepository struct {
	store *Store
}

func (r *ItemRepository) Save(ctx context.Context, it *item.Item) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	id := it.ID()
	if id == 0 {
		s.nextItemID++
		id = s.nextItemID
	}
	s.items[id] = item.Rebuild(item.ReconstructionDTO{
		ID:            id,
		Kind:          it.Kind(),
		Name:          it.Name(),
		Price:         it.Price(),
		StockQuantity: it.StockQuantity(),
		Book:          it.Book(),
		Album:         it.Album(),
		Movie:         it.Movie(),
		CreatedAt:     it.CreatedAt(),
		UpdatedAt:     it.UpdatedAt(),
	})
	return id, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, item.ErrItemNotFound
	}
	return it, nil
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]*item.Item, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*item.Item, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID() < items[j].ID() })
	return items, nil
}

// AdjustStock mirrors the SQL adapter's guarded update: a negative
// delta only succeeds when stock stays non-negative.
func (r *ItemRepository) AdjustStock(ctx context.Context, id int64, delta int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return item.ErrItemNotFound
	}
	if delta >= 0 {
		return it.AddStock(delta)
	}
	return it.RemoveStock(-delta)
}

var _ item.Repository = (*ItemRepository)(nil)

// OrderRepository in-memory order.Repository.
type OrderRepository struct {
	store *Store
}

func (r *OrderRepository) Save(ctx context.Context, o *order.Order) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	id := o.ID()
	deliveryID := o.Delivery().ID()
	if id == 0 {
		s.nextOrderID++
		id = s.nextOrderID
	}
	if deliveryID == 0 {
		s.nextDeliveryID++
		deliveryID = s.nextDeliveryID
	}

	items := make([]order.ItemReconstructionDTO, len(o.Items()))
	for i, it := range o.Items() {
		items[i] = order.ItemReconstructionDTO{
			ID:         int64(i + 1),
			ItemID:     it.ItemID(),
			OrderPrice: it.OrderPrice(),
			Count:      it.Count(),
		}
	}

	s.orders[id] = order.Rebuild(order.ReconstructionDTO{
		ID:         id,
		MemberID:   o.MemberID(),
		DeliveryID: deliveryID,
		Address:    o.Delivery().Address(),
		DeliverySt: o.Delivery().Status(),
		Items:      items,
		Status:     o.Status(),
		OrderedAt:  o.OrderedAt(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	})
	return id, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*order.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return o, nil
}

var _ order.Repository = (*OrderRepository)(nil)

// OrderViewRepository in-memory order.ViewRepository. Strategy
// selection only affects validation and the entity strategy's row cap
// here; the materialization is one in-process pass.
type OrderViewRepository struct {
	store        *Store
	entityRowCap int
}

func (r *OrderViewRepository) List(ctx context.Context, q order.ListQuery) ([]order.OrderView, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	spec := q.Filter.Specification()

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.orders))
	for id := range s.orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	views := make([]order.OrderView, 0, len(ids))
	for _, id := range ids {
		o := s.orders[id]

		m := s.members[o.MemberID()]
		memberName := ""
		if m != nil {
			memberName = m.Name()
		}

		view := order.OrderView{
			OrderID:    o.ID(),
			MemberName: memberName,
			OrderDate:  o.OrderedAt(),
			Status:     o.Status(),
			Address:    o.Delivery().Address(),
		}
		if spec != nil && !spec.IsSatisfiedBy(ctx, view) {
			continue
		}

		lines := make([]order.LineView, 0, len(o.Items()))
		for _, li := range o.Items() {
			itemName := ""
			if it := s.items[li.ItemID()]; it != nil {
				itemName = it.Name()
			}
			lines = append(lines, order.LineView{
				ItemName:   itemName,
				OrderPrice: li.OrderPrice(),
				Count:      li.Count(),
			})
		}
		view.LineItems = lines

		views = append(views, view)
	}

	// Same window arithmetic as the SQL adapter: the entity strategy's
	// row cap bounds the result even when no page was requested.
	offset, limit := 0, -1
	if q.Page != nil {
		offset, limit = q.Page.Offset, q.Page.Limit
	}
	if q.Strategy == order.StrategyEntity && (limit < 0 || limit > r.entityRowCap) {
		limit = r.entityRowCap
	}
	if offset >= len(views) {
		return []order.OrderView{}, nil
	}
	views = views[offset:]
	if limit >= 0 && limit < len(views) {
		views = views[:limit]
	}
	return views, nil
}

var _ order.ViewRepository = (*OrderViewRepository)(nil)
