// internal/handlers/reports_handler_test.go
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

func TestReportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockReportService(ctrl)
	hs := &handlers.Handlers{Reports: handlers.NewReportHandler(reports, helpers.TestLogger())}

	reports.EXPECT().SalesSummary(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.SaleListParams) (*domain.SalesSummary, error) {
			require.NotNil(t, p.From)
			return &domain.SalesSummary{From: p.From, SaleCount: 2, TotalProfitLoss: helpers.Price("7.45")}, nil
		})
	w := serve(t, hs, http.MethodGet, "/api/v1/reports/summary?from=2026-03-01", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary domain.SalesSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, int64(2), summary.SaleCount)
	assert.True(t, helpers.Price("7.45").Equal(summary.TotalProfitLoss))

	reports.EXPECT().InventoryValuation(gomock.Any()).Return(&domain.InventoryValuation{
		Kinds:      []domain.KindValuation{{Kind: domain.LotKindCard, Lots: 1, Units: 4, CostBasis: helpers.Price("4.00")}},
		TotalUnits: 4,
		TotalCost:  helpers.Price("4.00"),
	}, nil)
	w = serve(t, hs, http.MethodGet, "/api/v1/reports/valuation", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_units":4`)
}

func TestCardHandler_Lookup(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*mocks.MockCardResolver)
		expectedStatus int
	}{
		{
			name:  "found",
			query: "?set=cmm&number=410",
			setupMock: func(m *mocks.MockCardResolver) {
				m.EXPECT().Lookup(gomock.Any(), domain.CardLookup{SetCode: "cmm", CollectorNumber: "410"}).
					Return(&domain.CardMetadata{Name: "Sol Ring", SetCode: "CMM", CollectorNumber: "410"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "unknown_printing",
			query: "?set=cmm&number=9999",
			setupMock: func(m *mocks.MockCardResolver) {
				m.EXPECT().Lookup(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewError(domain.KindNotFound, "No card found for CMM/9999."))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "missing_number",
			query: "?set=cmm",
			setupMock: func(m *mocks.MockCardResolver) {
				m.EXPECT().Lookup(gomock.Any(), gomock.Any()).
					Return(nil, domain.ValidationErrorf("Set code and collector number are required."))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resolver := mocks.NewMockCardResolver(ctrl)
			tt.setupMock(resolver)
			hs := &handlers.Handlers{Cards: handlers.NewCardHandler(resolver, helpers.TestLogger())}

			w := serve(t, hs, http.MethodGet, "/api/v1/cards/lookup"+tt.query, nil)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}

	t.Run("disabled", func(t *testing.T) {
		hs := &handlers.Handlers{Cards: handlers.NewCardHandler(nil, helpers.TestLogger())}
		w := serve(t, hs, http.MethodGet, "/api/v1/cards/lookup?set=cmm&number=410", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
