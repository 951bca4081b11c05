package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

// StockKey identifies a warehouse row.
type StockKey struct {
	DepartmentID int64
	EAN          string
}

// MemoryStore keeps every aggregate in memory for use-case tests.
// Fail maps an operation name such as "orders.Create" to the error it returns.
type MemoryStore struct {
	mu sync.Mutex

	Fail map[string]error

	OrderRows     map[int64]model.Order
	ClientRows    map[int64]model.Client
	VehicleRows   map[int64]model.Vehicle
	ChecklistRows map[int64]model.Checklist
	EstimateRows  map[int64]model.Estimate
	ComplaintRows map[int64]model.Complaint
	DemandRows    map[int64]model.Demand
	StockRows     map[StockKey]model.StockItem

	StatusChanges      []model.StatusChange
	OrderInserts       int
	LastPartChanges    model.ItemChanges[model.EstimatePart]
	LastServiceChanges model.ItemChanges[model.EstimateService]
	LastItemChanges    model.ItemChanges[model.DemandItem]

	next int64
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Fail:          make(map[string]error),
		OrderRows:     make(map[int64]model.Order),
		ClientRows:    make(map[int64]model.Client),
		VehicleRows:   make(map[int64]model.Vehicle),
		ChecklistRows: make(map[int64]model.Checklist),
		EstimateRows:  make(map[int64]model.Estimate),
		ComplaintRows: make(map[int64]model.Complaint),
		DemandRows:    make(map[int64]model.Demand),
		StockRows:     make(map[StockKey]model.StockItem),
	}
}

// AddClient registers a client with one vehicle and returns both identifiers.
func (s *MemoryStore) AddClient(client model.Client, vehicle model.Vehicle) (int64, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	client.ID = s.nextID()
	s.ClientRows[client.ID] = client
	vehicle.ID = s.nextID()
	vehicle.ClientID = client.ID
	s.VehicleRows[vehicle.ID] = vehicle
	return client.ID, vehicle.ID
}

// PutStock stores a warehouse row as is.
func (s *MemoryStore) PutStock(item model.StockItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == 0 {
		item.ID = s.nextID()
	}
	s.StockRows[StockKey{item.DepartmentID, item.EAN}] = item
}

// StockItem returns a warehouse row and whether it exists.
func (s *MemoryStore) StockItem(departmentID int64, ean string) (model.StockItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.StockRows[StockKey{departmentID, ean}]
	return item, ok
}

func (s *MemoryStore) nextID() int64 {
	s.next++
	return s.next
}

func (s *MemoryStore) fail(op string) error {
	if s.Fail == nil {
		return nil
	}
	return s.Fail[op]
}

// Orders returns the order repository view.
func (s *MemoryStore) Orders() repository.OrderRepository { return memoryOrders{s} }

// Clients returns the client repository view.
func (s *MemoryStore) Clients() repository.ClientRepository { return memoryClients{s} }

// Checklists returns the checklist repository view.
func (s *MemoryStore) Checklists() repository.ChecklistRepository { return memoryChecklists{s} }

// Estimates returns the estimate repository view.
func (s *MemoryStore) Estimates() repository.EstimateRepository { return memoryEstimates{s} }

// Complaints returns the complaint repository view.
func (s *MemoryStore) Complaints() repository.ComplaintRepository { return memoryComplaints{s} }

// Demands returns the demand repository view.
func (s *MemoryStore) Demands() repository.DemandRepository { return memoryDemands{s} }

// Warehouse returns the warehouse repository view.
func (s *MemoryStore) Warehouse() repository.WarehouseRepository { return memoryWarehouse{s} }

var _ repository.Factory = (*MemoryStore)(nil)

type memoryOrders struct{ s *MemoryStore }

func (r memoryOrders) Create(_ context.Context, order *model.Order) (*model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("orders.Create"); err != nil {
		return nil, err
	}
	o := *order
	o.ID = r.s.nextID()
	o.CreatedAt = time.Now()
	o.Images = make([]model.OrderImage, len(order.Images))
	for i, img := range order.Images {
		img.ID = r.s.nextID()
		img.OrderID = o.ID
		o.Images[i] = img
	}
	r.s.OrderRows[o.ID] = o
	r.s.OrderInserts++
	return &o, nil
}

func (r memoryOrders) GetByID(_ context.Context, id int64) (*model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("orders.GetByID"); err != nil {
		return nil, err
	}
	o, ok := r.s.OrderRows[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &o, nil
}

func (r memoryOrders) CountStartedBetween(_ context.Context, from, to time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("orders.CountStartedBetween"); err != nil {
		return 0, err
	}
	var n int
	for _, o := range r.s.OrderRows {
		if !o.StartDate.Before(from) && o.StartDate.Before(to) {
			n++
		}
	}
	return n, nil
}

func (r memoryOrders) UpdateStatus(_ context.Context, id int64, change model.StatusChange) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("orders.UpdateStatus"); err != nil {
		return err
	}
	o, ok := r.s.OrderRows[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	o.Status = change.Status
	o.EndDate = change.EndDate
	o.SendDoneNotification = change.SendDoneNotification
	r.s.OrderRows[id] = o
	r.s.StatusChanges = append(r.s.StatusChanges, change)
	return nil
}

type memoryClients struct{ s *MemoryStore }

func (r memoryClients) GetByID(_ context.Context, id int64) (*model.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("clients.GetByID"); err != nil {
		return nil, err
	}
	c, ok := r.s.ClientRows[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &c, nil
}

func (r memoryClients) GetVehicle(_ context.Context, id int64) (*model.Vehicle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("clients.GetVehicle"); err != nil {
		return nil, err
	}
	v, ok := r.s.VehicleRows[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &v, nil
}

type memoryChecklists struct{ s *MemoryStore }

func (r memoryChecklists) Save(_ context.Context, checklist *model.Checklist) (*model.Checklist, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("checklists.Save"); err != nil {
		return nil, err
	}
	c := *checklist
	if existing, ok := r.s.ChecklistRows[c.OrderID]; ok {
		c.ID = existing.ID
	} else {
		c.ID = r.s.nextID()
	}
	c.Entries = append([]model.ChecklistEntry(nil), checklist.Entries...)
	c.UpdatedAt = time.Now()
	r.s.ChecklistRows[c.OrderID] = c
	return &c, nil
}

func (r memoryChecklists) GetByOrder(_ context.Context, orderID int64) (*model.Checklist, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("checklists.GetByOrder"); err != nil {
		return nil, err
	}
	c, ok := r.s.ChecklistRows[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &c, nil
}

type memoryEstimates struct{ s *MemoryStore }

func (r memoryEstimates) Create(_ context.Context, estimate *model.Estimate) (*model.Estimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("estimates.Create"); err != nil {
		return nil, err
	}
	for _, e := range r.s.EstimateRows {
		if e.OrderID == estimate.OrderID {
			return nil, domainErrors.ErrEstimateExists
		}
	}
	e := *estimate
	e.ID = r.s.nextID()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	e.Parts = nil
	e.Services = nil
	for _, p := range estimate.Parts {
		p.ID = r.s.nextID()
		p.EstimateID = e.ID
		e.Parts = append(e.Parts, p)
	}
	for _, sv := range estimate.Services {
		sv.ID = r.s.nextID()
		sv.EstimateID = e.ID
		e.Services = append(e.Services, sv)
	}
	r.s.EstimateRows[e.ID] = e
	return cloneEstimate(e), nil
}

func (r memoryEstimates) GetByID(_ context.Context, id int64) (*model.Estimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("estimates.GetByID"); err != nil {
		return nil, err
	}
	e, ok := r.s.EstimateRows[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return cloneEstimate(e), nil
}

func (r memoryEstimates) GetByOrder(_ context.Context, orderID int64) (*model.Estimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("estimates.GetByOrder"); err != nil {
		return nil, err
	}
	for _, e := range r.s.EstimateRows {
		if e.OrderID == orderID {
			return cloneEstimate(e), nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r memoryEstimates) Update(_ context.Context, estimate *model.Estimate, plan repository.EstimateLinesPlan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("estimates.Update"); err != nil {
		return err
	}
	e, ok := r.s.EstimateRows[estimate.ID]
	if !ok || e.OrderID != estimate.OrderID {
		return domainErrors.ErrNotFound
	}
	parts, services := plan(*cloneEstimate(e))
	e.TotalPartsPrice = estimate.TotalPartsPrice
	e.TotalServicesPrice = estimate.TotalServicesPrice
	e.TotalPrice = estimate.TotalPrice
	e.UpdatedAt = time.Now()
	e.Parts = applyChanges(r.s, e.Parts, parts, func(p *model.EstimatePart, id int64) {
		p.ID = id
		p.EstimateID = e.ID
	})
	e.Services = applyChanges(r.s, e.Services, services, func(sv *model.EstimateService, id int64) {
		sv.ID = id
		sv.EstimateID = e.ID
	})
	r.s.EstimateRows[e.ID] = e
	r.s.LastPartChanges = parts
	r.s.LastServiceChanges = services
	return nil
}

type memoryComplaints struct{ s *MemoryStore }

func (r memoryComplaints) Create(_ context.Context, complaint *model.Complaint) (*model.Complaint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("complaints.Create"); err != nil {
		return nil, err
	}
	for _, c := range r.s.ComplaintRows {
		if c.OrderID == complaint.OrderID {
			return nil, domainErrors.ErrComplaintExists
		}
	}
	c := *complaint
	c.ID = r.s.nextID()
	r.s.ComplaintRows[c.ID] = c
	return &c, nil
}

func (r memoryComplaints) GetByID(_ context.Context, id int64) (*model.Complaint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("complaints.GetByID"); err != nil {
		return nil, err
	}
	c, ok := r.s.ComplaintRows[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &c, nil
}

func (r memoryComplaints) GetByOrder(_ context.Context, orderID int64) (*model.Complaint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("complaints.GetByOrder"); err != nil {
		return nil, err
	}
	for _, c := range r.s.ComplaintRows {
		if c.OrderID == orderID {
			return &c, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r memoryComplaints) UpdateStatus(_ context.Context, id int64, from, to model.ComplaintStatus, submitDescription string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("complaints.UpdateStatus"); err != nil {
		return err
	}
	c, ok := r.s.ComplaintRows[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if c.Status != from {
		return domainErrors.ErrInvalidTransition
	}
	c.Status = to
	if submitDescription != "" {
		c.SubmitDescription = submitDescription
	}
	r.s.ComplaintRows[id] = c
	return nil
}

type memoryDemands struct{ s *MemoryStore }

func (r memoryDemands) Create(_ context.Context, demand *model.Demand) (*model.Demand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("demands.Create"); err != nil {
		return nil, err
	}
	d := *demand
	d.ID = r.s.nextID()
	d.Items = nil
	for _, item := range demand.Items {
		item.ID = r.s.nextID()
		item.DemandID = d.ID
		d.Items = append(d.Items, item)
	}
	r.s.DemandRows[d.ID] = d
	return cloneDemand(d), nil
}

func (r memoryDemands) GetByID(_ context.Context, id int64) (*model.Demand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("demands.GetByID"); err != nil {
		return nil, err
	}
	d, ok := r.s.DemandRows[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return cloneDemand(d), nil
}

func (r memoryDemands) Update(_ context.Context, demand *model.Demand, items model.ItemChanges[model.DemandItem]) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("demands.Update"); err != nil {
		return err
	}
	d, ok := r.s.DemandRows[demand.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if d.FulfilledAt != nil {
		return domainErrors.ErrDemandFulfilled
	}
	d.RequesterID = demand.RequesterID
	d.DepartmentID = demand.DepartmentID
	d.Date = demand.Date
	d.Status = demand.Status
	d.Items = applyChanges(r.s, d.Items, items, func(item *model.DemandItem, id int64) {
		item.ID = id
		item.DemandID = d.ID
	})
	r.s.DemandRows[d.ID] = d
	r.s.LastItemChanges = items
	return nil
}

func (r memoryDemands) UpdateStatus(_ context.Context, id int64, status model.DemandStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("demands.UpdateStatus"); err != nil {
		return err
	}
	d, ok := r.s.DemandRows[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	d.Status = status
	r.s.DemandRows[id] = d
	return nil
}

func (r memoryDemands) Fulfill(_ context.Context, id int64, plan repository.FulfillmentPlan) (model.Fulfillment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("demands.Fulfill"); err != nil {
		return model.Fulfillment{}, err
	}
	d, ok := r.s.DemandRows[id]
	if !ok {
		return model.Fulfillment{}, domainErrors.ErrNotFound
	}
	d.Status = model.DemandStatusFulfilled
	if d.FulfilledAt != nil {
		r.s.DemandRows[id] = d
		return model.Fulfillment{}, nil
	}

	now := time.Now()
	deltas := plan(*cloneDemand(d))
	for _, delta := range deltas {
		key := StockKey{delta.DepartmentID, delta.EAN}
		row, exists := r.s.StockRows[key]
		if exists {
			row.Amount = row.Amount.Add(delta.Amount)
		} else {
			row = model.StockItem{
				ID:           r.s.nextID(),
				DepartmentID: delta.DepartmentID,
				EAN:          delta.EAN,
				Name:         delta.Name,
				Amount:       delta.Amount,
				UnitPrice:    delta.UnitPrice,
			}
		}
		row.UpdatedAt = now
		r.s.StockRows[key] = row
		for i := range d.Items {
			if d.Items[i].ID == delta.DemandItemID {
				d.Items[i].MergedAt = &now
			}
		}
	}
	d.FulfilledAt = &now
	r.s.DemandRows[id] = d
	return model.Fulfillment{Applied: true, MergedItems: len(deltas)}, nil
}

type memoryWarehouse struct{ s *MemoryStore }

func (r memoryWarehouse) ListByDepartment(_ context.Context, departmentID int64) ([]model.StockItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("warehouse.ListByDepartment"); err != nil {
		return nil, err
	}
	var items []model.StockItem
	for key, item := range r.s.StockRows {
		if key.DepartmentID == departmentID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].EAN < items[j].EAN })
	return items, nil
}

func (r memoryWarehouse) Create(_ context.Context, item *model.StockItem) (*model.StockItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("warehouse.Create"); err != nil {
		return nil, err
	}
	key := StockKey{item.DepartmentID, item.EAN}
	if _, exists := r.s.StockRows[key]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	row := *item
	row.ID = r.s.nextID()
	row.UpdatedAt = time.Now()
	r.s.StockRows[key] = row
	return &row, nil
}

func (r memoryWarehouse) Adjust(_ context.Context, departmentID int64, ean string, delta decimal.Decimal) (*model.StockItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("warehouse.Adjust"); err != nil {
		return nil, err
	}
	key := StockKey{departmentID, ean}
	row, exists := r.s.StockRows[key]
	if !exists {
		return nil, domainErrors.ErrNotFound
	}
	amount := row.Amount.Add(delta)
	if amount.IsNegative() {
		return nil, domainErrors.ErrInsufficientStock
	}
	row.Amount = amount
	row.UpdatedAt = time.Now()
	r.s.StockRows[key] = row
	return &row, nil
}

func applyChanges[T model.LineItem](s *MemoryStore, current []T, changes model.ItemChanges[T], assign func(*T, int64)) []T {
	deleted := make(map[int64]struct{}, len(changes.Delete))
	for _, id := range changes.Delete {
		deleted[id] = struct{}{}
	}
	updated := make(map[int64]T, len(changes.Update))
	for _, item := range changes.Update {
		updated[item.LineID()] = item
	}

	result := make([]T, 0, len(current)+len(changes.Insert))
	for _, item := range current {
		id := item.LineID()
		if _, ok := deleted[id]; ok {
			continue
		}
		if u, ok := updated[id]; ok {
			assign(&u, id)
			item = u
		}
		result = append(result, item)
	}
	for _, item := range changes.Insert {
		assign(&item, s.nextID())
		result = append(result, item)
	}
	return result
}

func cloneEstimate(e model.Estimate) *model.Estimate {
	e.Parts = append([]model.EstimatePart(nil), e.Parts...)
	e.Services = append([]model.EstimateService(nil), e.Services...)
	return &e
}

func cloneDemand(d model.Demand) *model.Demand {
	d.Items = append([]model.DemandItem(nil), d.Items...)
	return &d
}
