// internal/handlers/inventory_handler_test.go
package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/handlers"
	"github.com/ammerola/cdi-tracker/test/helpers"
	"github.com/ammerola/cdi-tracker/test/mocks"
)

type inventoryFixture struct {
	lots *mocks.MockLotService
	mass *mocks.MockMassUpdateService
	hs   *handlers.Handlers
}

func newInventoryFixture(t *testing.T) *inventoryFixture {
	ctrl := gomock.NewController(t)
	f := &inventoryFixture{
		lots: mocks.NewMockLotService(ctrl),
		mass: mocks.NewMockMassUpdateService(ctrl),
	}
	f.hs = &handlers.Handlers{Inventory: handlers.NewInventoryHandler(f.lots, f.mass, helpers.TestLogger())}
	return f
}

func TestInventoryHandler_UpsertLot(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           any
		setupMock      func(*mocks.MockLotService)
		expectedStatus int
	}{
		{
			name: "inserts_card",
			path: "/api/v1/inventory/card",
			body: helpers.CreateTestCard(),
			setupMock: func(m *mocks.MockLotService) {
				m.EXPECT().UpsertLot(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, lot domain.Lot) (domain.UpsertResult, error) {
						card, ok := lot.(*domain.Card)
						require.True(t, ok)
						assert.Equal(t, "CMM", card.SetCode)
						assert.Equal(t, "410", card.CollectorNumber)
						assert.Equal(t, 4, card.Qty)
						return domain.UpsertResult{Ref: domain.LotRef{Kind: domain.LotKindCard, ID: 1}, Quantity: 4}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "merges_sealed_product",
			path: "/api/v1/inventory/sealed",
			body: helpers.CreateTestSealed(),
			setupMock: func(m *mocks.MockLotService) {
				m.EXPECT().UpsertLot(gomock.Any(), gomock.AssignableToTypeOf(&domain.SealedProduct{})).
					Return(domain.UpsertResult{Ref: domain.LotRef{Kind: domain.LotKindSealed, ID: 2}, Merged: true, Quantity: 5}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "supply_lot",
			path: "/api/v1/inventory/shipping_supply",
			body: helpers.CreateTestSupply(),
			setupMock: func(m *mocks.MockLotService) {
				m.EXPECT().UpsertLot(gomock.Any(), gomock.AssignableToTypeOf(&domain.ShippingSupply{})).
					Return(domain.UpsertResult{Ref: domain.LotRef{Kind: domain.LotKindSupply, ID: 3}, Quantity: 100}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unknown_kind",
			path:           "/api/v1/inventory/figurine",
			body:           map[string]any{"name": "x"},
			setupMock:      func(m *mocks.MockLotService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "validation_failure",
			path: "/api/v1/inventory/card",
			body: map[string]any{"set_code": "CMM"},
			setupMock: func(m *mocks.MockLotService) {
				m.EXPECT().UpsertLot(gomock.Any(), gomock.Any()).
					Return(domain.UpsertResult{}, domain.ValidationErrorf("Quantity must be a positive integer."))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInventoryFixture(t)
			tt.setupMock(f.lots)

			w := serve(t, f.hs, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestInventoryHandler_ListLots(t *testing.T) {
	f := newInventoryFixture(t)
	f.lots.EXPECT().ListLots(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.LotListParams) ([]domain.Lot, int64, error) {
			assert.Equal(t, domain.LotKindCard, p.Kind)
			assert.Equal(t, "sol", p.Search)
			assert.Equal(t, "Binder A", p.Location)
			assert.True(t, p.InStock)
			assert.Equal(t, "name", p.SortBy)
			assert.Equal(t, 25, p.Limit)
			return []domain.Lot{helpers.CreateTestCard(func(c *domain.Card) { c.ID = 1 })}, 1, nil
		})

	w := serve(t, f.hs, http.MethodGet, "/api/v1/inventory/cards?search=sol&location=Binder+A&in_stock=true&sort_by=name&limit=25", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page struct {
		Items []map[string]any `json:"items"`
		Total int64            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Sol Ring", page.Items[0]["name"])
}

func TestInventoryHandler_GetAndDeleteLot(t *testing.T) {
	f := newInventoryFixture(t)
	ref := domain.LotRef{Kind: domain.LotKindSupply, ID: 9}

	f.lots.EXPECT().GetLot(gomock.Any(), ref).Return(helpers.CreateTestSupply(func(s *domain.ShippingSupply) { s.ID = 9 }), nil)
	w := serve(t, f.hs, http.MethodGet, "/api/v1/inventory/supply/9", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bubble Mailer")

	f.lots.EXPECT().DeleteLot(gomock.Any(), ref).
		Return(domain.NewError(domain.KindValidation, "The record is still referenced by sale_event_shipping_supplies."))
	w = serve(t, f.hs, http.MethodDelete, "/api/v1/inventory/supply/9", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Error, "still referenced")

	f.lots.EXPECT().DeleteLot(gomock.Any(), ref).Return(nil)
	w = serve(t, f.hs, http.MethodDelete, "/api/v1/inventory/supply/9", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(t, f.hs, http.MethodGet, "/api/v1/inventory/supply/0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInventoryHandler_MassUpdate(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMock      func(*mocks.MockMassUpdateService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "updates_cards",
			body: map[string]any{
				"filters": map[string]any{"item_type": "card", "filter_set": "CMM"},
				"updates": map[string]any{"sell_price_percent": "10"},
			},
			setupMock: func(m *mocks.MockMassUpdateService) {
				m.EXPECT().MassUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.MassUpdateRequest) (*domain.MassUpdateResult, error) {
						assert.Equal(t, "card", req.Filter.ItemType)
						assert.Equal(t, "CMM", req.Filter.Set)
						assert.Equal(t, "10", req.Updates["sell_price_percent"])
						return &domain.MassUpdateResult{
							Updated:  3,
							PerTable: map[string]int64{"cards": 3},
							Message:  "Mass update completed. Updated 3 items in cards table.",
						}, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Updated 3 items in cards table.",
		},
		{
			name: "invalid_field",
			body: map[string]any{
				"filters": map[string]any{"item_type": "all"},
				"updates": map[string]any{"quantity": "0"},
			},
			setupMock: func(m *mocks.MockMassUpdateService) {
				m.EXPECT().MassUpdate(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewError(domain.KindInvalidField, "Field 'quantity' cannot be mass updated."))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "InvalidField",
		},
		{
			name: "numeric_percentage",
			body: `{"filters":{"item_type":"card","filter_location":"Box 1"},"updates":{"buy_price_change_percentage":10}}`,
			setupMock: func(m *mocks.MockMassUpdateService) {
				m.EXPECT().MassUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.MassUpdateRequest) (*domain.MassUpdateResult, error) {
						assert.Equal(t, "Box 1", req.Filter.Location)
						assert.Equal(t, "10", req.Updates[domain.FieldBuyPriceChangePct])
						return &domain.MassUpdateResult{
							Updated:  2,
							PerTable: map[string]int64{"cards": 2},
							Message:  "Mass update completed. Updated 2 items in cards table.",
						}, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Updated 2 items in cards table.",
		},
		{
			name: "negative_fractional_percentage",
			body: `{"updates":{"cost_per_unit_change_percentage":-2.5}}`,
			setupMock: func(m *mocks.MockMassUpdateService) {
				m.EXPECT().MassUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.MassUpdateRequest) (*domain.MassUpdateResult, error) {
						assert.Equal(t, "-2.5", req.Updates[domain.FieldCostPerUnitChangePct])
						return &domain.MassUpdateResult{Message: "Mass update completed."}, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Mass update completed.",
		},
		{
			name:           "nested_value_rejected",
			body:           `{"updates":{"location":{"name":"Box 2"}}}`,
			setupMock:      func(*mocks.MockMassUpdateService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Update field 'location' must be a string, number or boolean.",
		},
		{
			name:           "malformed_json",
			body:           `{"updates":`,
			setupMock:      func(*mocks.MockMassUpdateService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Request body is not valid JSON.",
		},
		{
			name:           "wrong_filter_type",
			body:           `{"filters":{"item_type":7},"updates":{"location":"Box 2"}}`,
			setupMock:      func(*mocks.MockMassUpdateService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Field 'filters.item_type' has the wrong type.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInventoryFixture(t)
			tt.setupMock(f.mass)

			w := serve(t, f.hs, http.MethodPost, "/api/v1/inventory/mass-update", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), "Go struct")
		})
	}
}

func TestInventoryHandler_AddSupplyBatch(t *testing.T) {
	f := newInventoryFixture(t)
	f.lots.EXPECT().AddSupplyBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *domain.SupplyBatch) (domain.UpsertResult, error) {
			assert.Equal(t, "Bubble Mailer", b.SupplyName)
			assert.Equal(t, 200, b.Quantity)
			assert.True(t, helpers.Price("50.00").Equal(b.TotalPurchaseAmount))
			return domain.UpsertResult{Ref: domain.LotRef{Kind: domain.LotKindSupply, ID: 4}, Quantity: 200}, nil
		})

	w := serve(t, f.hs, http.MethodPost, "/api/v1/supplies/batches", map[string]any{
		"supply_name":           "Bubble Mailer",
		"purchase_date":         "2026-03-01",
		"quantity":              200,
		"total_purchase_amount": "50.00",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
