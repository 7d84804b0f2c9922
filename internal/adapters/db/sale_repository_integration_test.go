//go:build integration
// +build integration

package db_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ammerola/cdi-tracker/internal/adapters/db"
	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/internal/core/services"
	"github.com/ammerola/cdi-tracker/test/helpers"
)

type SaleEngineSuite struct {
	suite.Suite
	testDB *helpers.TestDB
	lots   ports.LotRepository
	sales  *services.SaleService
	mass   *services.MassUpdateService
	ctx    context.Context
}

func (s *SaleEngineSuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	logger := helpers.TestLogger()
	s.lots = db.NewLotRepository(s.testDB.Database, logger)
	s.sales = services.NewSaleService(
		db.NewSaleRepository(s.testDB.Database, logger),
		db.NewPresetRepository(s.testDB.Database, logger),
		nil, nil, nil, logger)
	s.mass = services.NewMassUpdateService(db.NewMassUpdateRepository(s.testDB.Database, logger), nil, nil, logger)
	s.ctx = context.Background()
}

func (s *SaleEngineSuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

func (s *SaleEngineSuite) stock(lot domain.Lot) domain.LotRef {
	res, err := s.lots.Upsert(s.ctx, lot)
	s.Require().NoError(err)
	return res.Ref
}

func (s *SaleEngineSuite) qty(ref domain.LotRef) int {
	return helpers.LotQuantity(s.T(), s.testDB.PgxPool, ref)
}

func (s *SaleEngineSuite) sell(ref domain.LotRef, qty int, price string) *domain.SaleRequest {
	return &domain.SaleRequest{
		SaleDate:        "2026-03-14",
		OurShippingCost: helpers.Price("1.00"),
		Items: []domain.SaleLineRequest{
			{Lot: ref, QuantitySold: qty, SellPricePerItem: helpers.Price(price)},
		},
	}
}

func (s *SaleEngineSuite) TestRecordSale_DeductsAndComputesProfit() {
	ref := s.stock(helpers.CreateTestCard(func(c *domain.Card) {
		c.Qty = 10
		c.BuyPrice = helpers.Price("2.00")
	}))

	res, err := s.sales.RecordSale(s.ctx, s.sell(ref, 3, "5.00"))
	s.Require().NoError(err)

	s.Equal(7, s.qty(ref))
	s.True(decimal.RequireFromString("8").Equal(res.TotalProfitLoss))

	event, err := s.sales.GetSale(s.ctx, res.SaleEventID)
	s.Require().NoError(err)
	s.Require().Len(event.Items, 1)
	s.True(decimal.RequireFromString("9").Equal(event.Items[0].ItemProfitLoss))
	s.True(decimal.RequireFromString("2").Equal(event.Items[0].BuyPricePerItem))
	s.Equal("Sol Ring", event.Items[0].ItemName)
}

func (s *SaleEngineSuite) TestRecordSale_InsufficientStockLeavesNoTrace() {
	ref := s.stock(helpers.CreateTestCard(func(c *domain.Card) { c.Qty = 10 }))
	_, err := s.sales.RecordSale(s.ctx, s.sell(ref, 3, "5.00"))
	s.Require().NoError(err)

	_, err = s.sales.RecordSale(s.ctx, s.sell(ref, 8, "5.00"))
	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrInsufficientStock)
	s.Equal("Cannot sell 8 item(s). Only 7 available for 'Sol Ring' at 'Binder A'.", err.Error())

	s.Equal(7, s.qty(ref))
	s.Equal(1, helpers.CountRows(s.T(), s.testDB.PgxPool, "sale_events"))
}

func (s *SaleEngineSuite) TestRecordSale_FailureOnLaterLineRollsBackEarlierLines() {
	card := s.stock(helpers.CreateTestCard())
	sealed := s.stock(helpers.CreateTestSealed(func(p *domain.SealedProduct) { p.Qty = 1 }))
	supply := s.stock(helpers.CreateTestSupply())

	req := s.sell(card, 2, "3.00")
	req.Items = append(req.Items, domain.SaleLineRequest{Lot: sealed, QuantitySold: 2, SellPricePerItem: helpers.Price("200")})
	req.Supplies = []domain.SupplyUsageRequest{{SupplyID: supply.ID, QuantityUsed: 1}}

	_, err := s.sales.RecordSale(s.ctx, req)
	s.Require().ErrorIs(err, domain.ErrInsufficientStock)

	s.Equal(4, s.qty(card))
	s.Equal(1, s.qty(sealed))
	s.Equal(100, s.qty(supply))
	for _, table := range []string{"sale_events", "sale_items", "sale_event_shipping_supplies"} {
		s.Equal(0, helpers.CountRows(s.T(), s.testDB.PgxPool, table), table)
	}
}

func (s *SaleEngineSuite) TestDeleteSale_RestoresSupplies() {
	card := s.stock(helpers.CreateTestCard())
	supply := s.stock(helpers.CreateTestSupply(func(sp *domain.ShippingSupply) {
		sp.Qty = 10
		sp.CostPerUnit = helpers.Price("0.50")
	}))

	req := s.sell(card, 1, "3.00")
	req.Supplies = []domain.SupplyUsageRequest{{SupplyID: supply.ID, QuantityUsed: 2}}

	res, err := s.sales.RecordSale(s.ctx, req)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("1").Equal(res.TotalSuppliesCost))
	s.Equal(8, s.qty(supply))

	del, err := s.sales.DeleteSale(s.ctx, res.SaleEventID)
	s.Require().NoError(err)
	s.Contains(del.Message, "Restocked 2 of 'Bubble Mailer (4x8)'.")
	s.Empty(del.Warnings)

	s.Equal(10, s.qty(supply))
	s.Equal(4, s.qty(card))
	s.Equal(0, helpers.CountRows(s.T(), s.testDB.PgxPool, "sale_event_shipping_supplies"))
	s.Equal(0, helpers.CountRows(s.T(), s.testDB.PgxPool, "sale_items"))
}

func (s *SaleEngineSuite) TestDeleteSale_WarnsForRemovedLot() {
	card := s.stock(helpers.CreateTestCard(func(c *domain.Card) { c.Qty = 1 }))
	res, err := s.sales.RecordSale(s.ctx, s.sell(card, 1, "3.00"))
	s.Require().NoError(err)
	s.Require().NoError(s.lots.Delete(s.ctx, card))

	del, err := s.sales.DeleteSale(s.ctx, res.SaleEventID)
	s.Require().NoError(err)
	s.Require().Len(del.Warnings, 1)
	s.Contains(del.Warnings[0], "is no longer in inventory")
	s.Equal(0, helpers.CountRows(s.T(), s.testDB.PgxPool, "sale_events"))
}

func (s *SaleEngineSuite) TestDeleteSale_UnknownEvent() {
	_, err := s.sales.DeleteSale(s.ctx, 4242)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *SaleEngineSuite) TestEditSale_ReplacesLinesUnderSameID() {
	card := s.stock(helpers.CreateTestCard(func(c *domain.Card) { c.Qty = 5 }))
	sealed := s.stock(helpers.CreateTestSealed())

	res, err := s.sales.RecordSale(s.ctx, s.sell(card, 4, "3.00"))
	s.Require().NoError(err)
	s.Equal(1, s.qty(card))

	// 5 of the card only fits once the prior 4 are restocked
	edit := s.sell(card, 5, "2.50")
	edit.Items = append(edit.Items, domain.SaleLineRequest{Lot: sealed, QuantitySold: 1, SellPricePerItem: helpers.Price("230")})
	out, err := s.sales.EditSale(s.ctx, res.SaleEventID, edit)
	s.Require().NoError(err)
	s.Equal(res.SaleEventID, out.SaleEventID)

	s.Equal(0, s.qty(card))
	s.Equal(1, s.qty(sealed))

	event, err := s.sales.GetSale(s.ctx, res.SaleEventID)
	s.Require().NoError(err)
	s.Len(event.Items, 2)
	s.Equal(1, helpers.CountRows(s.T(), s.testDB.PgxPool, "sale_events"))
}

func (s *SaleEngineSuite) TestConcurrentSalesOfLastUnit() {
	card := s.stock(helpers.CreateTestCard(func(c *domain.Card) { c.Qty = 1 }))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.sales.RecordSale(s.ctx, s.sell(card, 1, "3.00"))
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, domain.ErrInsufficientStock)
	}
	s.Equal(1, succeeded)
	s.Equal(0, s.qty(card))
}

func (s *SaleEngineSuite) TestUpsert_MergesIdenticalLots() {
	first := s.stock(helpers.CreateTestCard(func(c *domain.Card) { c.Qty = 2 }))
	res, err := s.lots.Upsert(s.ctx, helpers.CreateTestCard(func(c *domain.Card) { c.Qty = 3 }))
	s.Require().NoError(err)

	s.True(res.Merged)
	s.Equal(first, res.Ref)
	s.Equal(5, res.Quantity)

	foil, err := s.lots.Upsert(s.ctx, helpers.CreateTestCard(func(c *domain.Card) { c.IsFoil = true }))
	s.Require().NoError(err)
	s.False(foil.Merged)
	s.NotEqual(first, foil.Ref)
}

func (s *SaleEngineSuite) TestDeleteLot_SupplyReferencedBySale() {
	card := s.stock(helpers.CreateTestCard())
	supply := s.stock(helpers.CreateTestSupply())

	_, err := s.sales.RecordSale(s.ctx, helpers.CreateTestSaleRequest(card, supply.ID))
	s.Require().NoError(err)

	err = s.lots.Delete(s.ctx, supply)
	s.ErrorIs(err, domain.ErrValidation)
	s.Equal(99, s.qty(supply))
}

func (s *SaleEngineSuite) TestMassUpdate_PercentageOnFilteredCards() {
	inBox := s.stock(helpers.CreateTestCard(func(c *domain.Card) {
		c.Location = "Box 1"
		c.BuyPrice = helpers.Price("2.00")
	}))
	elsewhere := s.stock(helpers.CreateTestCard(func(c *domain.Card) {
		c.CollectorNumber = "411"
		c.Location = "Box 2"
		c.BuyPrice = helpers.Price("2.00")
	}))
	sealed := s.stock(helpers.CreateTestSealed(func(p *domain.SealedProduct) { p.Location = "Box 1" }))

	res, err := s.mass.MassUpdate(s.ctx, domain.MassUpdateRequest{
		Filter:  domain.MassUpdateFilter{ItemType: "card", Location: "Box 1"},
		Updates: map[string]string{"buy_price_change_percentage": "10"},
	})
	s.Require().NoError(err)
	s.Equal(int64(1), res.Updated)

	got, err := s.lots.FindByRef(s.ctx, inBox)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("2.20").Equal(got.UnitCost()))

	got, err = s.lots.FindByRef(s.ctx, elsewhere)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("2.00").Equal(got.UnitCost()))

	got, err = s.lots.FindByRef(s.ctx, sealed)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("180.00").Equal(got.UnitCost()))
}

func (s *SaleEngineSuite) TestMassUpdate_FailureOnLaterTableRollsBackEarlierTables() {
	card := s.stock(helpers.CreateTestCard())
	sealed := s.stock(helpers.CreateTestSealed())
	supply := s.stock(helpers.CreateTestSupply())

	// cards are updated first, then sealed_products rejects the new value
	_, err := s.testDB.PgxPool.Exec(s.ctx,
		"ALTER TABLE sealed_products ADD CONSTRAINT sealed_not_in_vault CHECK (location <> 'Vault')")
	s.Require().NoError(err)
	defer func() {
		_, err := s.testDB.PgxPool.Exec(s.ctx, "ALTER TABLE sealed_products DROP CONSTRAINT sealed_not_in_vault")
		s.Require().NoError(err)
	}()

	_, err = s.mass.MassUpdate(s.ctx, domain.MassUpdateRequest{
		Filter:  domain.MassUpdateFilter{ItemType: "all"},
		Updates: map[string]string{"location": "Vault"},
	})
	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrValidation)

	for ref, want := range map[domain.LotRef]string{
		card:   "Binder A",
		sealed: "Shelf 1",
		supply: "Packing Desk",
	} {
		got, err := s.lots.FindByRef(s.ctx, ref)
		s.Require().NoError(err)
		s.Equal(want, got.StorageLocation(), ref.String())
	}
}

func TestSaleEngineSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(SaleEngineSuite))
}
