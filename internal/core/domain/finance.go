// internal/core/domain/finance.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the direction of a financial entry
type EntryType string

const (
	EntryTypeExpense EntryType = "expense"
	EntryTypeIncome  EntryType = "income"
)

// CategoryShippingSupplies is the category of automatic supply purchase expenses
const CategoryShippingSupplies = "Shipping Supplies"

// FinancialEntry is a manual or automatic expense/income line
type FinancialEntry struct {
	ID          int64           `json:"id"`
	EntryDate   time.Time       `json:"entry_date"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	EntryType   EntryType       `json:"entry_type"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Validate performs domain validation on the entry
func (e *FinancialEntry) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("description is required")
	}
	if e.EntryType != EntryTypeExpense && e.EntryType != EntryTypeIncome {
		return fmt.Errorf("entry_type must be 'expense' or 'income'")
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	if e.EntryDate.IsZero() {
		return fmt.Errorf("entry_date is required")
	}
	return nil
}

// SupplyBatch is a purchase of shipping supplies
type SupplyBatch struct {
	SupplyName          string          `json:"supply_name"`
	Description         string          `json:"description,omitempty"`
	UnitOfMeasure       string          `json:"unit_of_measure,omitempty"`
	PurchaseDate        string          `json:"purchase_date"`
	Quantity            int             `json:"quantity"`
	TotalPurchaseAmount decimal.Decimal `json:"total_purchase_amount"`
	Location            string          `json:"location,omitempty"`
}

// ToSupply converts the batch into a supply lot and its expense entry.
// cost_per_unit is the purchase total divided by quantity, rounded to cents.
func (b *SupplyBatch) ToSupply() (*ShippingSupply, *FinancialEntry, error) {
	if strings.TrimSpace(b.SupplyName) == "" {
		return nil, nil, ValidationErrorf("Supply name is required.")
	}
	if b.Quantity <= 0 {
		return nil, nil, ValidationErrorf("Quantity must be a positive integer.")
	}
	if b.TotalPurchaseAmount.IsNegative() {
		return nil, nil, ValidationErrorf("Total purchase amount cannot be negative.")
	}

	purchased := time.Now().UTC().Truncate(24 * time.Hour)
	if strings.TrimSpace(b.PurchaseDate) != "" {
		d, err := time.Parse(SaleDateLayout, strings.TrimSpace(b.PurchaseDate))
		if err != nil {
			return nil, nil, ValidationErrorf("Invalid purchase date '%s'. Expected YYYY-MM-DD.", b.PurchaseDate)
		}
		purchased = d
	}

	supply := &ShippingSupply{
		LotBase:       LotBase{Qty: b.Quantity, Location: b.Location},
		SupplyName:    b.SupplyName,
		Description:   b.Description,
		UnitOfMeasure: b.UnitOfMeasure,
		PurchaseDate:  &purchased,
		CostPerUnit:   b.TotalPurchaseAmount.Div(decimal.NewFromInt(int64(b.Quantity))).Round(2),
	}
	supply.Normalize()

	label := supply.SupplyName
	if supply.Description != "" {
		label = fmt.Sprintf("%s (%s)", supply.SupplyName, supply.Description)
	}

	entry := &FinancialEntry{
		EntryDate:   purchased,
		Description: fmt.Sprintf("Purchase: %s - %d %ss", label, b.Quantity, supply.UnitOfMeasure),
		Category:    CategoryShippingSupplies,
		EntryType:   EntryTypeExpense,
		Amount:      b.TotalPurchaseAmount.Round(2),
		Notes:       "Automatically recorded from shipping supply purchase.",
	}
	return supply, entry, nil
}
