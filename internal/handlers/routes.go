// internal/handlers/routes.go
package handlers

import "net/http"

// Handlers groups the API handlers for route registration. Nil handlers
// leave their routes unregistered.
type Handlers struct {
	Sales     *SaleHandler
	Inventory *InventoryHandler
	Catalog   *CatalogHandler
	Reports   *ReportHandler
	Exports   *ExportHandler
	Imports   *ImportHandler
	Cards     *CardHandler
	Health    *HealthHandler
}

// Register mounts the /api/v1 routes and the probes on mux
func (hs *Handlers) Register(mux *http.ServeMux) {
	if h := hs.Health; h != nil {
		mux.HandleFunc("GET /health", h.Health)
		mux.HandleFunc("GET /ready", h.Readiness)
	}

	if h := hs.Sales; h != nil {
		mux.HandleFunc("POST /api/v1/sales", h.RecordSale)
		mux.HandleFunc("GET /api/v1/sales", h.ListSales)
		mux.HandleFunc("GET /api/v1/sales/{id}", h.GetSale)
		mux.HandleFunc("PUT /api/v1/sales/{id}", h.EditSale)
		mux.HandleFunc("DELETE /api/v1/sales/{id}", h.DeleteSale)
	}

	if h := hs.Inventory; h != nil {
		mux.HandleFunc("POST /api/v1/inventory/mass-update", h.MassUpdate)
		mux.HandleFunc("POST /api/v1/inventory/{kind}", h.UpsertLot)
		mux.HandleFunc("GET /api/v1/inventory/{kind}", h.ListLots)
		mux.HandleFunc("GET /api/v1/inventory/{kind}/{id}", h.GetLot)
		mux.HandleFunc("DELETE /api/v1/inventory/{kind}/{id}", h.DeleteLot)
		mux.HandleFunc("POST /api/v1/supplies/batches", h.AddSupplyBatch)
	}

	if h := hs.Catalog; h != nil {
		mux.HandleFunc("POST /api/v1/presets", h.CreatePreset)
		mux.HandleFunc("GET /api/v1/presets", h.ListPresets)
		mux.HandleFunc("GET /api/v1/presets/{id}", h.GetPreset)
		mux.HandleFunc("DELETE /api/v1/presets/{id}", h.DeletePreset)
		mux.HandleFunc("POST /api/v1/finance/entries", h.AddEntry)
		mux.HandleFunc("GET /api/v1/finance/entries", h.ListEntries)
		mux.HandleFunc("DELETE /api/v1/finance/entries/{id}", h.DeleteEntry)
	}

	if h := hs.Reports; h != nil {
		mux.HandleFunc("GET /api/v1/reports/summary", h.SalesSummary)
		mux.HandleFunc("GET /api/v1/reports/valuation", h.InventoryValuation)
	}

	if h := hs.Exports; h != nil {
		mux.HandleFunc("POST /api/v1/exports/sales", h.ExportSales)
		mux.HandleFunc("GET /api/v1/exports/{id}", h.ExportStatus)
	}

	if h := hs.Imports; h != nil {
		mux.HandleFunc("POST /api/v1/imports/lots", h.ImportLots)
		mux.HandleFunc("GET /api/v1/imports/{id}", h.ImportStatus)
	}

	if h := hs.Cards; h != nil {
		mux.HandleFunc("GET /api/v1/cards/lookup", h.Lookup)
	}
}
