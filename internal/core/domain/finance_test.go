package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
)

func TestSupplyBatch_ToSupply(t *testing.T) {
	batch := &domain.SupplyBatch{
		SupplyName:          "Bubble Mailer",
		Description:         "6x9",
		PurchaseDate:        "2024-03-02",
		Quantity:            3,
		TotalPurchaseAmount: decimal.RequireFromString("10.00"),
		Location:            "Shelf",
	}

	supply, entry, err := batch.ToSupply()
	require.NoError(t, err)

	assert.Equal(t, "3.33", supply.CostPerUnit.StringFixed(2))
	assert.Equal(t, 3, supply.Quantity())
	assert.Equal(t, "unit", supply.UnitOfMeasure)
	assert.Equal(t, domain.EntryTypeExpense, entry.EntryType)
	assert.Equal(t, domain.CategoryShippingSupplies, entry.Category)
	assert.Equal(t, "Purchase: Bubble Mailer (6x9) - 3 units", entry.Description)
	assert.Equal(t, "10.00", entry.Amount.StringFixed(2))
	require.NoError(t, entry.Validate())
}

func TestSupplyBatch_Invalid(t *testing.T) {
	_, _, err := (&domain.SupplyBatch{SupplyName: "Tape", Quantity: 0}).ToSupply()
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, _, err = (&domain.SupplyBatch{SupplyName: "Tape", Quantity: 1, PurchaseDate: "03/02/2024"}).ToSupply()
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestSupplyPreset_Validate(t *testing.T) {
	p := &domain.SupplyPreset{Name: "Single card", Items: []domain.SupplyPresetItem{{SupplyID: 1, Quantity: 1}, {SupplyID: 1, Quantity: 2}}}
	assert.Error(t, p.Validate())

	p.Items = p.Items[:1]
	require.NoError(t, p.Validate())
	assert.Equal(t, []domain.SupplyUsageRequest{{SupplyID: 1, QuantityUsed: 1}}, p.Usages())
}
