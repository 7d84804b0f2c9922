package db_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/cdi-tracker/internal/adapters/db"
	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/test/helpers"
)

func TestReportRepository_SalesSummary(t *testing.T) {
	mock, sqlDB := helpers.SetupMockDB(t)
	repo := db.NewReportRepository(sqlDB, helpers.TestLogger())

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sale_events e")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{
			"count", "sold", "revenue", "items_pl", "ship_in", "ship_out", "supplies", "fees", "total_pl",
		}).AddRow(2, 5, "60.00", "28.00", "10.00", "8.00", "1.5000", "4.00", "24.5000"))

	summary, err := repo.SalesSummary(context.Background(), domain.SaleListParams{From: &from})
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.SaleCount)
	assert.Equal(t, int64(5), summary.ItemsSold)
	assert.True(t, decimal.RequireFromString("60").Equal(summary.Revenue))
	assert.True(t, decimal.RequireFromString("24.5").Equal(summary.TotalProfitLoss))
	assert.Equal(t, &from, summary.From)
	assert.False(t, summary.GeneratedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_SalesSummary_Error(t *testing.T) {
	mock, sqlDB := helpers.SetupMockDB(t)
	repo := db.NewReportRepository(sqlDB, helpers.TestLogger())

	mock.ExpectQuery(regexp.QuoteMeta("FROM sale_events e")).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.SalesSummary(context.Background(), domain.SaleListParams{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestReportRepository_InventoryValuation(t *testing.T) {
	mock, sqlDB := helpers.SetupMockDB(t)
	repo := db.NewReportRepository(sqlDB, helpers.TestLogger())

	mock.ExpectQuery(regexp.QuoteMeta("UNION ALL")).
		WillReturnRows(sqlmock.NewRows([]string{"kind", "lots", "units", "cost"}).
			AddRow("card", 3, 12, "24.00").
			AddRow("sealed_product", 1, 2, "180.00").
			AddRow("shipping_supply", 2, 150, "15.50"))

	valuation, err := repo.InventoryValuation(context.Background())
	require.NoError(t, err)

	require.Len(t, valuation.Kinds, 3)
	assert.Equal(t, domain.LotKindSealed, valuation.Kinds[1].Kind)
	assert.Equal(t, int64(164), valuation.TotalUnits)
	assert.True(t, decimal.RequireFromString("219.50").Equal(valuation.TotalCost))
	assert.NoError(t, mock.ExpectationsWereMet())
}
