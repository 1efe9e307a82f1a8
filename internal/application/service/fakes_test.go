package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/internal/domain/enum"
	"github.com/vijaya/autospares-api/internal/domain/repository"
	"github.com/vijaya/autospares-api/pkg/pagination"
)

// In-memory repository fakes. Only the behavior the services exercise
// is modeled; list/cursor methods return what was stored without
// filtering.

type fakePartRepo struct {
	parts map[uuid.UUID]*entity.Part
}

func newFakePartRepo(parts ...*entity.Part) *fakePartRepo {
	r := &fakePartRepo{parts: make(map[uuid.UUID]*entity.Part)}
	for _, p := range parts {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.parts[p.ID] = p
	}
	return r
}

func (r *fakePartRepo) Create(ctx context.Context, part *entity.Part) error {
	if part.ID == uuid.Nil {
		part.ID = uuid.New()
	}
	r.parts[part.ID] = part
	return nil
}

func (r *fakePartRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Part, error) {
	return r.parts[id], nil
}

func (r *fakePartRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Part, error) {
	var out []entity.Part
	for _, id := range ids {
		if p, ok := r.parts[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePartRepo) GetByHSNCode(ctx context.Context, userID uuid.UUID, code string) (*entity.Part, error) {
	for _, p := range r.parts {
		if p.UserID == userID && p.HSNCode == code {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePartRepo) Update(ctx context.Context, part *entity.Part) error {
	r.parts[part.ID] = part
	return nil
}

func (r *fakePartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.parts, id)
	return nil
}

func (r *fakePartRepo) List(ctx context.Context, userID uuid.UUID, params *repository.PartFilterParams) ([]entity.Part, int64, error) {
	var out []entity.Part
	for _, p := range r.parts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakePartRepo) ListWithCursor(ctx context.Context, userID uuid.UUID, params *repository.PartCursorFilterParams) ([]entity.Part, error) {
	out, _, err := r.List(ctx, userID, nil)
	return out, err
}

func (r *fakePartRepo) GetLowStock(ctx context.Context, userID uuid.UUID) ([]entity.Part, error) {
	var out []entity.Part
	for _, p := range r.parts {
		if p.UserID == userID && p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePartRepo) LatestHSNCode(ctx context.Context, userID uuid.UUID) (string, error) {
	latest := ""
	for _, p := range r.parts {
		if p.UserID == userID && p.HSNCode > latest {
			latest = p.HSNCode
		}
	}
	return latest, nil
}

func (r *fakePartRepo) SetQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	if p, ok := r.parts[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

func (r *fakePartRepo) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	_, total, _ := r.List(ctx, userID, nil)
	return total, nil
}

func (r *fakePartRepo) CountLowStock(ctx context.Context, userID uuid.UUID) (int64, error) {
	out, _ := r.GetLowStock(ctx, userID)
	return int64(len(out)), nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
	createErr error
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	for _, c := range customers {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if r.createErr != nil {
		return r.createErr
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) ListWithCursor(ctx context.Context, userID uuid.UUID, params *pagination.CursorParams, search string) ([]entity.Customer, error) {
	out, _, err := r.List(ctx, userID, nil, "")
	return out, err
}

func (r *fakeCustomerRepo) LatestCode(ctx context.Context, userID uuid.UUID) (string, error) {
	latest := ""
	for _, c := range r.customers {
		if c.UserID == userID && c.Code > latest {
			latest = c.Code
		}
	}
	return latest, nil
}

func (r *fakeCustomerRepo) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	_, total, _ := r.List(ctx, userID, nil, "")
	return total, nil
}

type fakeOrderRepo struct {
	parts  *fakePartRepo
	orders map[uuid.UUID]*entity.Order
	// number of commit attempts that fail with createErr before
	// succeeding; used to exercise the retry loop
	failuresLeft int
	createErr    error
	// parts reported as out of stock at commit time, simulating a
	// concurrent order draining them after validation
	forceFailedIDs []uuid.UUID
	commits        int
}

func newFakeOrderRepo(parts *fakePartRepo) *fakeOrderRepo {
	return &fakeOrderRepo{parts: parts, orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *fakeOrderRepo) CreateWithItems(ctx context.Context, order *entity.Order, items []entity.OrderItem, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	r.commits++
	if r.failuresLeft > 0 {
		r.failuresLeft--
		return nil, r.createErr
	}
	if len(r.forceFailedIDs) > 0 {
		return r.forceFailedIDs, nil
	}

	var failed []uuid.UUID
	for partID, qty := range decrements {
		part := r.parts.parts[partID]
		if part == nil || part.Quantity < qty {
			failed = append(failed, partID)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}

	for partID, qty := range decrements {
		r.parts.parts[partID].Quantity -= qty
	}

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range items {
		items[i].ID = uuid.New()
		items[i].OrderID = order.ID
	}
	order.Items = items
	r.orders[order.ID] = order
	return nil, nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) LatestOrderNumber(ctx context.Context, userID uuid.UUID) (string, error) {
	latest := ""
	for _, o := range r.orders {
		if o.UserID == userID && o.OrderNumber > latest {
			latest = o.OrderNumber
		}
	}
	return latest, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, userID uuid.UUID, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) ListWithCursor(ctx context.Context, userID uuid.UUID, params *repository.OrderCursorFilterParams) ([]entity.Order, error) {
	out, _, err := r.List(ctx, userID, nil)
	return out, err
}

func (r *fakeOrderRepo) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	_, total, _ := r.List(ctx, userID, nil)
	return total, nil
}

type fakeUdhaariRepo struct {
	udhaaris map[uuid.UUID]*entity.Udhaari
}

func newFakeUdhaariRepo() *fakeUdhaariRepo {
	return &fakeUdhaariRepo{udhaaris: make(map[uuid.UUID]*entity.Udhaari)}
}

func (r *fakeUdhaariRepo) Create(ctx context.Context, udhaari *entity.Udhaari) error {
	if udhaari.ID == uuid.Nil {
		udhaari.ID = uuid.New()
	}
	r.udhaaris[udhaari.ID] = udhaari
	return nil
}

func (r *fakeUdhaariRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Udhaari, error) {
	return r.udhaaris[id], nil
}

func (r *fakeUdhaariRepo) Update(ctx context.Context, udhaari *entity.Udhaari) error {
	r.udhaaris[udhaari.ID] = udhaari
	return nil
}

func (r *fakeUdhaariRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Udhaari, int64, error) {
	var out []entity.Udhaari
	for _, u := range r.udhaaris {
		if u.UserID == userID {
			out = append(out, *u)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeUdhaariRepo) Totals(ctx context.Context, userID uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	amount, paid := decimal.Zero, decimal.Zero
	for _, u := range r.udhaaris {
		if u.UserID == userID {
			amount = amount.Add(u.Amount)
			paid = paid.Add(u.PaidAmount)
		}
	}
	return amount, paid, nil
}

func (r *fakeUdhaariRepo) CountOpen(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, u := range r.udhaaris {
		if u.UserID == userID && u.Status != enum.UdhaariStatusPaid {
			n++
		}
	}
	return n, nil
}
