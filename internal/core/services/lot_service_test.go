// internal/core/services/lot_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/services"
	"github.com/ammerola/cdi-tracker/test/helpers"
	"github.com/ammerola/cdi-tracker/test/mocks"
)

func TestLotService_UpsertLot(t *testing.T) {
	tests := []struct {
		name          string
		lot           domain.Lot
		setupMocks    func(*mocks.MockLotRepository, *mocks.MockCardResolver, *mocks.MockCacheRepository)
		expectedError domain.ErrorKind
		errorContains string
	}{
		{
			name: "stocks_new_card",
			lot:  helpers.CreateTestCard(),
			setupMocks: func(r *mocks.MockLotRepository, _ *mocks.MockCardResolver, c *mocks.MockCacheRepository) {
				r.EXPECT().Upsert(gomock.Any(), gomock.Any()).
					Return(domain.UpsertResult{Ref: domain.LotRef{Kind: domain.LotKindCard, ID: 1}, Quantity: 4}, nil)
				c.EXPECT().DeletePattern(gomock.Any(), "reports:*").Return(nil)
			},
		},
		{
			name: "normalizes_identity_before_merge",
			lot: helpers.CreateTestCard(func(c *domain.Card) {
				c.SetCode = " cmm "
				c.Rarity = "Uncommon"
			}),
			setupMocks: func(r *mocks.MockLotRepository, _ *mocks.MockCardResolver, c *mocks.MockCacheRepository) {
				r.EXPECT().Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, lot domain.Lot) (domain.UpsertResult, error) {
						card := lot.(*domain.Card)
						assert.Equal(t, "CMM", card.SetCode)
						assert.Equal(t, "uncommon", card.Rarity)
						return domain.UpsertResult{Ref: card.Ref(), Merged: true, Quantity: 8}, nil
					})
				c.EXPECT().DeletePattern(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "resolves_missing_card_name",
			lot:  helpers.CreateTestCard(func(c *domain.Card) { c.Name = "" }),
			setupMocks: func(r *mocks.MockLotRepository, res *mocks.MockCardResolver, c *mocks.MockCacheRepository) {
				res.EXPECT().Lookup(gomock.Any(), domain.CardLookup{SetCode: "CMM", CollectorNumber: "410"}).
					Return(&domain.CardMetadata{Name: "Sol Ring", ScryfallID: "abc", MarketPriceUSD: helpers.PricePtr("1.49")}, nil)
				r.EXPECT().Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, lot domain.Lot) (domain.UpsertResult, error) {
						card := lot.(*domain.Card)
						assert.Equal(t, "Sol Ring", card.Name)
						assert.Equal(t, "abc", card.ScryfallID)
						return domain.UpsertResult{Ref: card.Ref()}, nil
					})
				c.EXPECT().DeletePattern(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "unresolved_card_without_name_is_invalid",
			lot:  helpers.CreateTestCard(func(c *domain.Card) { c.Name = "" }),
			setupMocks: func(_ *mocks.MockLotRepository, res *mocks.MockCardResolver, _ *mocks.MockCacheRepository) {
				res.EXPECT().Lookup(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewError(domain.KindNotFound, "Card not found."))
			},
			expectedError: domain.KindValidation,
			errorContains: "name is required",
		},
		{
			name:          "zero_quantity_is_invalid",
			lot:           helpers.CreateTestSealed(func(p *domain.SealedProduct) { p.Qty = 0 }),
			setupMocks:    func(*mocks.MockLotRepository, *mocks.MockCardResolver, *mocks.MockCacheRepository) {},
			expectedError: domain.KindValidation,
			errorContains: "Quantity must be a positive integer.",
		},
		{
			name: "negative_buy_price_is_invalid",
			lot: helpers.CreateTestSealed(func(p *domain.SealedProduct) {
				p.BuyPrice = helpers.Price("-1")
			}),
			setupMocks:    func(*mocks.MockLotRepository, *mocks.MockCardResolver, *mocks.MockCacheRepository) {},
			expectedError: domain.KindValidation,
		},
		{
			name:          "nil_lot",
			lot:           nil,
			setupMocks:    func(*mocks.MockLotRepository, *mocks.MockCardResolver, *mocks.MockCacheRepository) {},
			expectedError: domain.KindValidation,
		},
		{
			name: "repository_error",
			lot:  helpers.CreateTestSupply(),
			setupMocks: func(r *mocks.MockLotRepository, _ *mocks.MockCardResolver, _ *mocks.MockCacheRepository) {
				r.EXPECT().Upsert(gomock.Any(), gomock.Any()).
					Return(domain.UpsertResult{}, errors.New("database connection failed"))
			},
			expectedError: domain.KindPersistence,
			errorContains: "database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockLotRepository(ctrl)
			resolver := mocks.NewMockCardResolver(ctrl)
			cache := mocks.NewMockCacheRepository(ctrl)
			tt.setupMocks(repo, resolver, cache)

			service := services.NewLotService(repo, resolver, cache, helpers.TestLogger())
			_, err := service.UpsertLot(context.Background(), tt.lot)

			if tt.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expectedError, domain.KindOf(err))
			if tt.errorContains != "" {
				assert.Contains(t, err.Error(), tt.errorContains)
			}
		})
	}
}

func TestLotService_AddSupplyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLotRepository(ctrl)
	service := services.NewLotService(repo, nil, nil, helpers.TestLogger())

	repo.EXPECT().AddSupplyBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.ShippingSupply, e *domain.FinancialEntry) (domain.UpsertResult, error) {
			assert.True(t, helpers.Price("0.33").Equal(s.CostPerUnit))
			assert.Equal(t, "unit", s.UnitOfMeasure)
			assert.Equal(t, domain.CategoryShippingSupplies, e.Category)
			assert.Equal(t, domain.EntryTypeExpense, e.EntryType)
			assert.Equal(t, "Purchase: Top Loader (3x4) - 3 units", e.Description)
			assert.True(t, helpers.Price("1.00").Equal(e.Amount))
			return domain.UpsertResult{Ref: domain.LotRef{Kind: domain.LotKindSupply, ID: 5}, Quantity: 3}, nil
		})

	res, err := service.AddSupplyBatch(context.Background(), &domain.SupplyBatch{
		SupplyName:          "Top Loader",
		Description:         "3x4",
		PurchaseDate:        "2026-02-01",
		Quantity:            3,
		TotalPurchaseAmount: helpers.Price("1.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Ref.ID)

	t.Run("rejects_bad_purchase_date", func(t *testing.T) {
		_, err := service.AddSupplyBatch(context.Background(), &domain.SupplyBatch{
			SupplyName: "Top Loader", Quantity: 1, PurchaseDate: "Feb 1",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestLotService_ListLots(t *testing.T) {
	tests := []struct {
		name      string
		params    domain.LotListParams
		wantLimit int
		wantErr   bool
	}{
		{name: "defaults_limit", params: domain.LotListParams{Kind: domain.LotKindCard}, wantLimit: domain.DefaultPageSize},
		{name: "keeps_limit", params: domain.LotListParams{Kind: domain.LotKindSealed, Limit: 25}, wantLimit: 25},
		{name: "caps_limit", params: domain.LotListParams{Kind: domain.LotKindSupply, Limit: 300}, wantLimit: domain.MaxPageSize},
		{name: "rejects_unknown_kind", params: domain.LotListParams{Kind: "weapons"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockLotRepository(ctrl)
			service := services.NewLotService(repo, nil, nil, helpers.TestLogger())

			if !tt.wantErr {
				repo.EXPECT().List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p domain.LotListParams) ([]domain.Lot, int64, error) {
						assert.Equal(t, tt.wantLimit, p.Limit)
						return []domain.Lot{helpers.CreateTestCard()}, 1, nil
					})
			}

			lots, total, err := service.ListLots(context.Background(), tt.params)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Len(t, lots, 1)
			assert.Equal(t, int64(1), total)
		})
	}
}

func TestLotService_DeleteLot(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLotRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	service := services.NewLotService(repo, nil, cache, helpers.TestLogger())
	ref := domain.LotRef{Kind: domain.LotKindSupply, ID: 3}

	repo.EXPECT().Delete(gomock.Any(), ref).
		Return(domain.NewError(domain.KindValidation, "The record is still referenced by sale_event_shipping_supplies."))

	err := service.DeleteLot(context.Background(), ref)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
