package service

import (
	"context"
	"time"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/domain/enum"
	"github.com/motorline/dealerdesk-api/internal/domain/repository"
	"github.com/motorline/dealerdesk-api/pkg/pagination"
)

// In-memory fakes backing the service tests. They keep rows in insertion
// order and assign ids the way the database would.

type fakeCustomerRepo struct {
	nextID uint
	rows   map[uint]entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{rows: make(map[uint]entity.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.nextID++
	c.ID = r.nextID
	r.rows[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uint) (*entity.Customer, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCustomerRepo) GetByPhone(_ context.Context, phone string) (*entity.Customer, error) {
	for _, c := range r.rows {
		if c.Phone == phone {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) MaxID(_ context.Context) (uint, error) {
	return r.nextID, nil
}

func (r *fakeCustomerRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Customer, int64, error) {
	out := make([]entity.Customer, 0, len(r.rows))
	for _, c := range r.rows {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.rows[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

// stubLedger satisfies LedgerRefCounts with fixed counts.
type stubLedger struct {
	byCustomer       int64
	byPaymentMode    int64
	byTypeOfPayment  int64
	byCollectionType int64
	byVehicleModel   int64
}

func (l stubLedger) CountByCustomer(context.Context, uint) (int64, error) {
	return l.byCustomer, nil
}

func (l stubLedger) CountByPaymentMode(context.Context, uint) (int64, error) {
	return l.byPaymentMode, nil
}

func (l stubLedger) CountByTypeOfPayment(context.Context, uint) (int64, error) {
	return l.byTypeOfPayment, nil
}

func (l stubLedger) CountByCollectionType(context.Context, uint) (int64, error) {
	return l.byCollectionType, nil
}

func (l stubLedger) CountByVehicleModel(context.Context, uint) (int64, error) {
	return l.byVehicleModel, nil
}

type fakeCollectionRepo struct {
	nextID    uint
	rows      []entity.PaymentCollection
	modeNames map[uint]string

	lastAggFrom time.Time
	lastAggTo   time.Time
}

func newFakeCollectionRepo() *fakeCollectionRepo {
	return &fakeCollectionRepo{modeNames: make(map[uint]string)}
}

func (r *fakeCollectionRepo) find(id uint) *entity.PaymentCollection {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return &r.rows[i]
		}
	}
	return nil
}

func (r *fakeCollectionRepo) Create(_ context.Context, c *entity.PaymentCollection) error {
	r.nextID++
	c.ID = r.nextID
	r.rows = append(r.rows, *c)
	return nil
}

func (r *fakeCollectionRepo) GetByID(_ context.Context, id uint) (*entity.PaymentCollection, error) {
	row := r.find(id)
	if row == nil {
		return nil, nil
	}
	c := *row
	return &c, nil
}

func (r *fakeCollectionRepo) LastReceiptNo(_ context.Context) (string, error) {
	if len(r.rows) == 0 {
		return "", nil
	}
	return r.rows[len(r.rows)-1].ReceiptNo, nil
}

func (r *fakeCollectionRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.PaymentCollection, int64, error) {
	out := make([]entity.PaymentCollection, 0, len(r.rows))
	for _, c := range r.rows {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeCollectionRepo) ListDeleted(_ context.Context) ([]entity.PaymentCollection, error) {
	var out []entity.PaymentCollection
	for _, c := range r.rows {
		if c.DeletedAt != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCollectionRepo) ListRange(_ context.Context, from, to time.Time) ([]entity.PaymentCollection, error) {
	var out []entity.PaymentCollection
	for _, c := range r.rows {
		if c.DeletedAt == nil && !c.Date.Before(from) && !c.Date.After(to) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCollectionRepo) Update(_ context.Context, c *entity.PaymentCollection) error {
	if row := r.find(c.ID); row != nil {
		*row = *c
	}
	return nil
}

func (r *fakeCollectionRepo) SoftDelete(_ context.Context, id uint, deletedBy *uint) error {
	if row := r.find(id); row != nil {
		now := time.Now()
		row.DeletedAt = &now
		row.DeletedByID = deletedBy
	}
	return nil
}

func (r *fakeCollectionRepo) Restore(_ context.Context, id uint) error {
	if row := r.find(id); row != nil {
		row.DeletedAt = nil
		row.DeletedByID = nil
	}
	return nil
}

func (r *fakeCollectionRepo) AggregateByMode(_ context.Context, from, to time.Time) ([]repository.ModeAggregate, error) {
	r.lastAggFrom, r.lastAggTo = from, to
	byMode := make(map[uint]*repository.ModeAggregate)
	var order []uint
	for _, c := range r.rows {
		if c.DeletedAt != nil || c.Date.Before(from) || c.Date.After(to) {
			continue
		}
		agg, ok := byMode[c.PaymentModeID]
		if !ok {
			agg = &repository.ModeAggregate{PaymentModeID: c.PaymentModeID, Mode: r.modeNames[c.PaymentModeID]}
			byMode[c.PaymentModeID] = agg
			order = append(order, c.PaymentModeID)
		}
		agg.Amount += c.Amount
		agg.Count++
	}
	out := make([]repository.ModeAggregate, 0, len(order))
	for _, id := range order {
		out = append(out, *byMode[id])
	}
	return out, nil
}

func (r *fakeCollectionRepo) CountInRange(_ context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, c := range r.rows {
		if c.DeletedAt == nil && !c.Date.Before(from) && !c.Date.After(to) {
			n++
		}
	}
	return n, nil
}

func (r *fakeCollectionRepo) CountByCustomer(_ context.Context, customerID uint) (int64, error) {
	var n int64
	for _, c := range r.rows {
		if c.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (r *fakeCollectionRepo) CountByPaymentMode(_ context.Context, modeID uint) (int64, error) {
	var n int64
	for _, c := range r.rows {
		if c.PaymentModeID == modeID {
			n++
		}
	}
	return n, nil
}

func (r *fakeCollectionRepo) CountByTypeOfPayment(_ context.Context, typeID uint) (int64, error) {
	var n int64
	for _, c := range r.rows {
		if c.TypeOfPaymentID != nil && *c.TypeOfPaymentID == typeID {
			n++
		}
	}
	return n, nil
}

func (r *fakeCollectionRepo) CountByCollectionType(_ context.Context, typeID uint) (int64, error) {
	var n int64
	for _, c := range r.rows {
		if c.CollectionTypeID != nil && *c.CollectionTypeID == typeID {
			n++
		}
	}
	return n, nil
}

func (r *fakeCollectionRepo) CountByVehicleModel(_ context.Context, modelID uint) (int64, error) {
	var n int64
	for _, c := range r.rows {
		if c.VehicleModelID != nil && *c.VehicleModelID == modelID {
			n++
		}
	}
	return n, nil
}

type fakeServiceCollectionRepo struct {
	nextID uint
	rows   []entity.ServicePaymentCollection

	rolledUpIDs []uint
}

func newFakeServiceCollectionRepo() *fakeServiceCollectionRepo {
	return &fakeServiceCollectionRepo{}
}

func (r *fakeServiceCollectionRepo) find(id uint) *entity.ServicePaymentCollection {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return &r.rows[i]
		}
	}
	return nil
}

func (r *fakeServiceCollectionRepo) Create(_ context.Context, c *entity.ServicePaymentCollection) error {
	r.nextID++
	c.ID = r.nextID
	r.rows = append(r.rows, *c)
	return nil
}

func (r *fakeServiceCollectionRepo) CreateWithRollup(ctx context.Context, c *entity.ServicePaymentCollection, pendingIDs []uint) error {
	if err := r.Create(ctx, c); err != nil {
		return err
	}
	for _, id := range pendingIDs {
		if row := r.find(id); row != nil {
			row.PaymentStatus = enum.PaymentStatusCompleted
		}
	}
	r.rolledUpIDs = append(r.rolledUpIDs, pendingIDs...)
	return nil
}

func (r *fakeServiceCollectionRepo) GetByID(_ context.Context, id uint) (*entity.ServicePaymentCollection, error) {
	row := r.find(id)
	if row == nil {
		return nil, nil
	}
	c := *row
	return &c, nil
}

func (r *fakeServiceCollectionRepo) MaxID(_ context.Context) (uint, error) {
	return r.nextID, nil
}

func (r *fakeServiceCollectionRepo) ListPendingByCustomer(_ context.Context, customerID uint) ([]entity.ServicePaymentCollection, error) {
	var out []entity.ServicePaymentCollection
	for _, c := range r.rows {
		if c.DeletedAt == nil && c.CustomerID == customerID && c.PaymentStatus == enum.PaymentStatusPending {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeServiceCollectionRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.ServicePaymentCollection, int64, error) {
	out := make([]entity.ServicePaymentCollection, 0, len(r.rows))
	for _, c := range r.rows {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeServiceCollectionRepo) ListDeleted(_ context.Context) ([]entity.ServicePaymentCollection, error) {
	var out []entity.ServicePaymentCollection
	for _, c := range r.rows {
		if c.DeletedAt != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeServiceCollectionRepo) ListRange(_ context.Context, from, to time.Time) ([]entity.ServicePaymentCollection, error) {
	var out []entity.ServicePaymentCollection
	for _, c := range r.rows {
		if c.DeletedAt == nil && !c.Date.Before(from) && !c.Date.After(to) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeServiceCollectionRepo) Update(_ context.Context, c *entity.ServicePaymentCollection) error {
	if row := r.find(c.ID); row != nil {
		*row = *c
	}
	return nil
}

func (r *fakeServiceCollectionRepo) SoftDelete(_ context.Context, id uint, deletedBy *uint) error {
	if row := r.find(id); row != nil {
		now := time.Now()
		row.DeletedAt = &now
		row.DeletedByID = deletedBy
	}
	return nil
}

func (r *fakeServiceCollectionRepo) Restore(_ context.Context, id uint) error {
	if row := r.find(id); row != nil {
		row.DeletedAt = nil
		row.DeletedByID = nil
	}
	return nil
}

func (r *fakeServiceCollectionRepo) CountByCustomer(_ context.Context, customerID uint) (int64, error) {
	var n int64
	for _, c := range r.rows {
		if c.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (r *fakeServiceCollectionRepo) CountByPaymentMode(_ context.Context, modeID uint) (int64, error) {
	var n int64
	for _, c := range r.rows {
		if c.PaymentModeID == modeID {
			n++
		}
	}
	return n, nil
}

func (r *fakeServiceCollectionRepo) CountByTypeOfPayment(_ context.Context, typeID uint) (int64, error) {
	var n int64
	for _, c := range r.rows {
		if c.TypeOfPaymentID != nil && *c.TypeOfPaymentID == typeID {
			n++
		}
	}
	return n, nil
}

func (r *fakeServiceCollectionRepo) CountByCollectionType(_ context.Context, typeID uint) (int64, error) {
	var n int64
	for _, c := range r.rows {
		if c.CollectionTypeID != nil && *c.CollectionTypeID == typeID {
			n++
		}
	}
	return n, nil
}

func (r *fakeServiceCollectionRepo) CountByVehicleModel(_ context.Context, modelID uint) (int64, error) {
	var n int64
	for _, c := range r.rows {
		if c.VehicleModelID != nil && *c.VehicleModelID == modelID {
			n++
		}
	}
	return n, nil
}

type fakePaymentModeRepo struct {
	nextID     uint
	rows       map[uint]entity.PaymentMode
	typeCounts map[uint]int64
}

func newFakePaymentModeRepo() *fakePaymentModeRepo {
	return &fakePaymentModeRepo{
		rows:       make(map[uint]entity.PaymentMode),
		typeCounts: make(map[uint]int64),
	}
}

func (r *fakePaymentModeRepo) Create(_ context.Context, m *entity.PaymentMode) error {
	r.nextID++
	m.ID = r.nextID
	r.rows[m.ID] = *m
	return nil
}

func (r *fakePaymentModeRepo) GetByID(_ context.Context, id uint) (*entity.PaymentMode, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakePaymentModeRepo) List(_ context.Context, enabledOnly bool) ([]entity.PaymentMode, error) {
	var out []entity.PaymentMode
	for _, m := range r.rows {
		if enabledOnly && m.Status != enum.RecordStatusEnabled {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakePaymentModeRepo) Update(_ context.Context, m *entity.PaymentMode) error {
	r.rows[m.ID] = *m
	return nil
}

func (r *fakePaymentModeRepo) Delete(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

func (r *fakePaymentModeRepo) CountTypes(_ context.Context, modeID uint) (int64, error) {
	return r.typeCounts[modeID], nil
}

type fakeTypeOfPaymentRepo struct {
	nextID uint
	rows   map[uint]entity.TypeOfPayment
}

func newFakeTypeOfPaymentRepo() *fakeTypeOfPaymentRepo {
	return &fakeTypeOfPaymentRepo{rows: make(map[uint]entity.TypeOfPayment)}
}

func (r *fakeTypeOfPaymentRepo) Create(_ context.Context, t *entity.TypeOfPayment) error {
	r.nextID++
	t.ID = r.nextID
	r.rows[t.ID] = *t
	return nil
}

func (r *fakeTypeOfPaymentRepo) GetByID(_ context.Context, id uint) (*entity.TypeOfPayment, error) {
	t, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeTypeOfPaymentRepo) List(_ context.Context, paymentModeID *uint, enabledOnly bool) ([]entity.TypeOfPayment, error) {
	var out []entity.TypeOfPayment
	for _, t := range r.rows {
		if paymentModeID != nil && t.PaymentModeID != *paymentModeID {
			continue
		}
		if enabledOnly && t.Status != enum.RecordStatusEnabled {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTypeOfPaymentRepo) Update(_ context.Context, t *entity.TypeOfPayment) error {
	r.rows[t.ID] = *t
	return nil
}

func (r *fakeTypeOfPaymentRepo) Delete(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

type fakeCollectionTypeRepo struct {
	nextID uint
	rows   map[uint]entity.CollectionType
}

func newFakeCollectionTypeRepo() *fakeCollectionTypeRepo {
	return &fakeCollectionTypeRepo{rows: make(map[uint]entity.CollectionType)}
}

func (r *fakeCollectionTypeRepo) Create(_ context.Context, t *entity.CollectionType) error {
	r.nextID++
	t.ID = r.nextID
	r.rows[t.ID] = *t
	return nil
}

func (r *fakeCollectionTypeRepo) GetByID(_ context.Context, id uint) (*entity.CollectionType, error) {
	t, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeCollectionTypeRepo) List(_ context.Context, enabledOnly bool) ([]entity.CollectionType, error) {
	var out []entity.CollectionType
	for _, t := range r.rows {
		if enabledOnly && t.Status != enum.RecordStatusEnabled {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeCollectionTypeRepo) Update(_ context.Context, t *entity.CollectionType) error {
	r.rows[t.ID] = *t
	return nil
}

func (r *fakeCollectionTypeRepo) Delete(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

type fakeVehicleModelRepo struct {
	nextID uint
	rows   map[uint]entity.VehicleModel
}

func newFakeVehicleModelRepo() *fakeVehicleModelRepo {
	return &fakeVehicleModelRepo{rows: make(map[uint]entity.VehicleModel)}
}

func (r *fakeVehicleModelRepo) Create(_ context.Context, m *entity.VehicleModel) error {
	r.nextID++
	m.ID = r.nextID
	r.rows[m.ID] = *m
	return nil
}

func (r *fakeVehicleModelRepo) GetByID(_ context.Context, id uint) (*entity.VehicleModel, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeVehicleModelRepo) List(_ context.Context, enabledOnly bool) ([]entity.VehicleModel, error) {
	var out []entity.VehicleModel
	for _, m := range r.rows {
		if enabledOnly && m.Status != enum.RecordStatusEnabled {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeVehicleModelRepo) Update(_ context.Context, m *entity.VehicleModel) error {
	r.rows[m.ID] = *m
	return nil
}

func (r *fakeVehicleModelRepo) Delete(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

type fakeUserRepo struct {
	nextID uint
	rows   map[uint]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{rows: make(map[uint]entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.nextID++
	u.ID = r.nextID
	r.rows[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*entity.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.rows {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	var out []entity.User
	for _, u := range r.rows {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.rows[u.ID] = *u
	return nil
}

type fakeEnquiryRepo struct {
	nextID uint
	rows   map[uint]entity.Enquiry
}

func newFakeEnquiryRepo() *fakeEnquiryRepo {
	return &fakeEnquiryRepo{rows: make(map[uint]entity.Enquiry)}
}

func (r *fakeEnquiryRepo) Create(_ context.Context, e *entity.Enquiry) error {
	r.nextID++
	e.ID = r.nextID
	r.rows[e.ID] = *e
	return nil
}

func (r *fakeEnquiryRepo) GetByID(_ context.Context, id uint) (*entity.Enquiry, error) {
	e, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *fakeEnquiryRepo) List(_ context.Context, _ *pagination.PaginationParams, status *enum.EnquiryStatus) ([]entity.Enquiry, int64, error) {
	var out []entity.Enquiry
	for _, e := range r.rows {
		if status != nil && e.Status != *status {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEnquiryRepo) Update(_ context.Context, e *entity.Enquiry) error {
	r.rows[e.ID] = *e
	return nil
}

type fakeMenuPermissionRepo struct {
	nextID uint
	rows   map[string]entity.MenuPermission
}

func newFakeMenuPermissionRepo() *fakeMenuPermissionRepo {
	return &fakeMenuPermissionRepo{rows: make(map[string]entity.MenuPermission)}
}

func (r *fakeMenuPermissionRepo) GetByRole(_ context.Context, role string) (*entity.MenuPermission, error) {
	p, ok := r.rows[role]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeMenuPermissionRepo) List(_ context.Context) ([]entity.MenuPermission, error) {
	var out []entity.MenuPermission
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeMenuPermissionRepo) Upsert(_ context.Context, p *entity.MenuPermission) error {
	if existing, ok := r.rows[p.Role]; ok {
		p.ID = existing.ID
	} else {
		r.nextID++
		p.ID = r.nextID
	}
	r.rows[p.Role] = *p
	return nil
}
