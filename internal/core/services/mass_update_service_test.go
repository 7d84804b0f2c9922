// internal/core/services/mass_update_service_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/services"
	"github.com/ammerola/cdi-tracker/internal/pkg/metrics"
	"github.com/ammerola/cdi-tracker/test/helpers"
	"github.com/ammerola/cdi-tracker/test/mocks"
)

func TestMassUpdateService_MassUpdate(t *testing.T) {
	t.Run("updates_every_applicable_table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockMassUpdateRepository(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)
		m := metrics.New(prometheus.NewRegistry())
		service := services.NewMassUpdateService(repo, cache, m, helpers.TestLogger())

		repo.EXPECT().Apply(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, plans []domain.MassUpdatePlan) (map[string]int64, error) {
				require.Len(t, plans, 3)
				assert.Equal(t, domain.LotKindCard, plans[0].Kind)
				assert.Equal(t, "Box 1", plans[0].Filter.Location)
				return map[string]int64{"cards": 4, "sealed_products": 1, "shipping_supplies_inventory": 0}, nil
			})
		cache.EXPECT().DeletePattern(gomock.Any(), "reports:*").Return(nil)

		res, err := service.MassUpdate(context.Background(), domain.MassUpdateRequest{
			Filter:  domain.MassUpdateFilter{ItemType: "all", Location: "Box 1"},
			Updates: map[string]string{"location": "Box 2"},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(5), res.Updated)
		assert.Equal(t,
			"Mass update completed. Updated 4 items in cards table. Updated 1 items in sealed_products table. "+
				"Updated 0 items in shipping_supplies_inventory table.",
			res.Message)
		assert.Equal(t, 4.0, testutil.ToFloat64(m.MassUpdateRows.WithLabelValues("cards")))
	})

	tests := []struct {
		name     string
		req      domain.MassUpdateRequest
		wantKind domain.ErrorKind
	}{
		{
			name:     "unknown_field",
			req:      domain.MassUpdateRequest{Updates: map[string]string{"quantity": "0"}},
			wantKind: domain.KindInvalidField,
		},
		{
			name:     "unknown_item_type",
			req:      domain.MassUpdateRequest{Filter: domain.MassUpdateFilter{ItemType: "weapons"}, Updates: map[string]string{"location": "x"}},
			wantKind: domain.KindValidation,
		},
		{
			name:     "no_values",
			req:      domain.MassUpdateRequest{Updates: map[string]string{"location": " "}},
			wantKind: domain.KindValidation,
		},
		{
			name: "field_not_applicable_to_kind",
			req: domain.MassUpdateRequest{
				Filter:  domain.MassUpdateFilter{ItemType: "shipping_supply"},
				Updates: map[string]string{"condition": "LP"},
			},
			wantKind: domain.KindValidation,
		},
		{
			name:     "bad_percentage",
			req:      domain.MassUpdateRequest{Updates: map[string]string{"buy_price_change_percentage": "ten"}},
			wantKind: domain.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockMassUpdateRepository(ctrl)
			service := services.NewMassUpdateService(repo, nil, nil, helpers.TestLogger())

			_, err := service.MassUpdate(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domain.KindOf(err))
		})
	}
}
