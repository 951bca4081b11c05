package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Orders() OrderRepository
	Clients() ClientRepository
	Checklists() ChecklistRepository
	Estimates() EstimateRepository
	Complaints() ComplaintRepository
	Demands() DemandRepository
	Warehouse() WarehouseRepository
}
