// internal/workers/workbook_test.go
package workers_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/workers"
	"github.com/ammerola/cdi-tracker/test/helpers"
)

func cellAt(t *testing.T, sheet *xlsx.Sheet, row, col int) string {
	t.Helper()
	c, err := sheet.Cell(row, col)
	require.NoError(t, err)
	return c.String()
}

func TestBuildSalesWorkbook(t *testing.T) {
	lotID := int64(7)
	events := []domain.SaleEvent{
		{
			ID:                     12,
			SaleDate:               time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			CustomerShippingCharge: helpers.Price("1.50"),
			OurShippingCost:        helpers.Price("1.00"),
			PlatformFee:            helpers.Price("0.30"),
			TotalSuppliesCost:      helpers.Price("0.25"),
			TotalProfitLoss:        helpers.Price("1.95"),
			DateRecorded:           time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
			Items: []domain.SaleLineItem{{
				InventoryItemID:  &lotID,
				Kind:             domain.LotKindCard,
				ItemName:         "Sol Ring",
				ItemDetails:      "CMM-410 (R: Uncommon, L: EN, C: NM)",
				QuantitySold:     1,
				SellPricePerItem: helpers.Price("3.00"),
				BuyPricePerItem:  helpers.Price("1.00"),
				ItemProfitLoss:   helpers.Price("2.00"),
			}},
			Supplies: []domain.SaleSupplyUsage{{
				SupplyID:                  3,
				QuantityUsed:              1,
				CostPerUnitSnapshot:       helpers.Price("0.25"),
				SupplyNameSnapshot:        "Bubble Mailer",
				SupplyDescriptionSnapshot: "4x8",
			}},
		},
	}

	data, err := workers.BuildSalesWorkbook(events)
	require.NoError(t, err)

	file, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 3)

	sales := file.Sheet["Sales"]
	require.NotNil(t, sales)
	assert.Equal(t, "Sale ID", cellAt(t, sales, 0, 0))
	assert.Equal(t, "12", cellAt(t, sales, 1, 0))
	assert.Equal(t, "2026-03-14", cellAt(t, sales, 1, 1))
	assert.Equal(t, "1.95", cellAt(t, sales, 1, 6))

	items := file.Sheet["Items"]
	require.NotNil(t, items)
	assert.Equal(t, "single_card", cellAt(t, items, 1, 1))
	assert.Equal(t, "7", cellAt(t, items, 1, 2))
	assert.Equal(t, "Sol Ring", cellAt(t, items, 1, 3))
	assert.Equal(t, "2.00", cellAt(t, items, 1, 8))

	supplies := file.Sheet["Supplies"]
	require.NotNil(t, supplies)
	assert.Equal(t, "Bubble Mailer", cellAt(t, supplies, 1, 2))
	assert.Equal(t, "0.25", cellAt(t, supplies, 1, 6))
}

// lotWorkbook builds an import workbook from sheet name -> rows
func lotWorkbook(t *testing.T, sheets map[string][][]string) []byte {
	t.Helper()
	file := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := file.AddSheet(name)
		require.NoError(t, err)
		for _, values := range rows {
			row := sheet.AddRow()
			for _, v := range values {
				row.AddCell().Value = v
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	return buf.Bytes()
}

func TestReadLotWorkbook(t *testing.T) {
	data := lotWorkbook(t, map[string][][]string{
		"Cards": {
			{"Set Code", "Collector Number", "Name", "Foil", "Condition", "Quantity", "Buy Price", "Location"},
			{"CMM", "410", "Sol Ring", "no", "NM", "4", "$1.00", "Binder A"},
			{"MH3", "1", "", "yes", "LP", "2.0", "5", ""},
			{"", "", "", "", "", "", "", ""},
			{"MH3", "2", "Flare", "maybe", "NM", "1", "1", ""},
		},
		"Supplies": {
			{"Supply Name", "Description", "Quantity", "Cost Per Unit"},
			{"Bubble Mailer", "4x8", "100", "0.25"},
			{"Top Loader", "", "-3", "0.10"},
		},
		"Notes": {
			{"ignored"},
		},
	})

	rows, err := workers.ReadLotWorkbook(data)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	byKind := map[domain.LotKind][]workers.LotRow{}
	for _, r := range rows {
		if r.Err == nil {
			byKind[r.Lot.Kind()] = append(byKind[r.Lot.Kind()], r)
		}
	}

	require.Len(t, byKind[domain.LotKindCard], 2)
	sol := byKind[domain.LotKindCard][0].Lot.(*domain.Card)
	assert.Equal(t, "Sol Ring", sol.Name)
	assert.Equal(t, 4, sol.Qty)
	assert.Equal(t, "1.00", sol.BuyPrice.StringFixed(2))
	assert.Equal(t, "Binder A", sol.Location)
	assert.False(t, sol.IsFoil)

	foil := byKind[domain.LotKindCard][1].Lot.(*domain.Card)
	assert.True(t, foil.IsFoil)
	assert.Equal(t, 2, foil.Qty)
	assert.Empty(t, foil.Name)

	require.Len(t, byKind[domain.LotKindSupply], 1)
	mailer := byKind[domain.LotKindSupply][0].Lot.(*domain.ShippingSupply)
	assert.Equal(t, "Bubble Mailer", mailer.SupplyName)
	assert.Equal(t, 100, mailer.Qty)

	var failed []workers.LotRow
	for _, r := range rows {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	require.Len(t, failed, 2)
	for _, r := range failed {
		assert.ErrorIs(t, r.Err, domain.ErrValidation)
	}
}

func TestReadLotWorkbook_Rejects(t *testing.T) {
	t.Run("not_a_workbook", func(t *testing.T) {
		_, err := workers.ReadLotWorkbook([]byte("plain text"))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("no_known_sheet", func(t *testing.T) {
		data := lotWorkbook(t, map[string][][]string{"Sheet1": {{"a"}}})
		_, err := workers.ReadLotWorkbook(data)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
