// internal/core/services/report_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/services"
	"github.com/ammerola/cdi-tracker/test/helpers"
	"github.com/ammerola/cdi-tracker/test/mocks"
)

func TestReportService_SalesSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReportRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	service := services.NewReportService(repo, cache, time.Minute, helpers.TestLogger())

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	params := domain.SaleListParams{From: &from}

	cache.EXPECT().
		GetOrSet(gomock.Any(), "reports:summary:2026-01-01:any", gomock.Any(), gomock.Any(), time.Minute).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}, fetch func() (interface{}, error), _ time.Duration) error {
			v, err := fetch()
			if err != nil {
				return err
			}
			*dest.(*domain.SalesSummary) = *v.(*domain.SalesSummary)
			return nil
		})
	repo.EXPECT().SalesSummary(gomock.Any(), params).
		Return(&domain.SalesSummary{SaleCount: 3, TotalProfitLoss: helpers.Price("12.50")}, nil)

	summary, err := service.SalesSummary(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.SaleCount)
}

func TestReportService_InventoryValuation_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReportRepository(ctrl)
	service := services.NewReportService(repo, nil, 0, helpers.TestLogger())

	repo.EXPECT().InventoryValuation(gomock.Any()).
		Return(&domain.InventoryValuation{TotalUnits: 10}, nil)

	valuation, err := service.InventoryValuation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), valuation.TotalUnits)
}

func TestReportService_Refresh(t *testing.T) {
	t.Run("overwrites_cached_reports", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockReportRepository(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)
		service := services.NewReportService(repo, cache, time.Minute, helpers.TestLogger())

		repo.EXPECT().SalesSummary(gomock.Any(), domain.SaleListParams{}).Return(&domain.SalesSummary{}, nil)
		repo.EXPECT().InventoryValuation(gomock.Any()).Return(&domain.InventoryValuation{}, nil)
		cache.EXPECT().SetWithTTL(gomock.Any(), "reports:summary:any:any", gomock.Any(), time.Minute).Return(nil)
		cache.EXPECT().SetWithTTL(gomock.Any(), "reports:valuation", gomock.Any(), time.Minute).Return(nil)

		assert.NoError(t, service.Refresh(context.Background()))
	})

	t.Run("repository_error_stops_refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockReportRepository(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)
		service := services.NewReportService(repo, cache, time.Minute, helpers.TestLogger())

		repo.EXPECT().SalesSummary(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		err := service.Refresh(context.Background())
		assert.ErrorContains(t, err, "failed to refresh sales summary")
	})
}
