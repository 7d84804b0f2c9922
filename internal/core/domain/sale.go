// internal/core/domain/sale.go
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SaleDateLayout is the accepted sale date format
const SaleDateLayout = "2006-01-02"

// SaleLineRequest is one sold lot in a sale request
type SaleLineRequest struct {
	Lot              LotRef          `json:"lot"`
	QuantitySold     int             `json:"quantity_sold"`
	SellPricePerItem decimal.Decimal `json:"sell_price_per_item"`
}

// SupplyUsageRequest is one consumed shipping supply in a sale request
type SupplyUsageRequest struct {
	SupplyID     int64 `json:"supply_id"`
	QuantityUsed int   `json:"quantity_used"`
}

// Ref returns the supply lot reference
func (u SupplyUsageRequest) Ref() LotRef {
	return LotRef{Kind: LotKindSupply, ID: u.SupplyID}
}

// SaleRequest is the caller-held input of recordSale and editSale
type SaleRequest struct {
	SaleDate               string               `json:"sale_date"`
	OurShippingCost        decimal.Decimal      `json:"our_shipping_cost"`
	CustomerShippingCharge decimal.Decimal      `json:"customer_shipping_charge"`
	PlatformFee            decimal.Decimal      `json:"platform_fee"`
	Notes                  string               `json:"notes,omitempty"`
	Items                  []SaleLineRequest    `json:"items"`
	Supplies               []SupplyUsageRequest `json:"supplies,omitempty"`
	PresetID               *int64               `json:"preset_id,omitempty"`

	ParsedDate time.Time `json:"-"`
}

// Validate checks the request shape. It never touches storage.
func (r *SaleRequest) Validate() error {
	date, err := time.Parse(SaleDateLayout, strings.TrimSpace(r.SaleDate))
	if err != nil {
		return ValidationErrorf("Invalid sale date '%s'. Expected YYYY-MM-DD.", r.SaleDate)
	}
	r.ParsedDate = date

	if r.OurShippingCost.IsNegative() {
		return ValidationErrorf("Our shipping cost cannot be negative.")
	}
	if r.CustomerShippingCharge.IsNegative() {
		return ValidationErrorf("Customer shipping charge cannot be negative.")
	}
	if r.PlatformFee.IsNegative() {
		return ValidationErrorf("Platform fee cannot be negative.")
	}

	if len(r.Items) == 0 {
		return ValidationErrorf("A sale must include at least one item.")
	}
	for i, item := range r.Items {
		if !item.Lot.Kind.Sellable() {
			return ValidationErrorf("Item %d: invalid item type '%s'.", i+1, item.Lot.Kind)
		}
		if item.Lot.ID <= 0 {
			return ValidationErrorf("Item %d: inventory id is required.", i+1)
		}
		if item.QuantitySold <= 0 {
			return ValidationErrorf("Item %d: quantity sold must be a positive integer.", i+1)
		}
		if item.SellPricePerItem.IsNegative() {
			return ValidationErrorf("Item %d: sell price cannot be negative.", i+1)
		}
	}
	for i, usage := range r.Supplies {
		if usage.SupplyID <= 0 {
			return ValidationErrorf("Supply %d: supply id is required.", i+1)
		}
		if usage.QuantityUsed <= 0 {
			return ValidationErrorf("Supply %d: quantity used must be a positive integer.", i+1)
		}
	}
	return nil
}

// LotRefs returns every lot the request will mutate, in lock order
func (r *SaleRequest) LotRefs() []LotRef {
	refs := make([]LotRef, 0, len(r.Items)+len(r.Supplies))
	for _, item := range r.Items {
		refs = append(refs, item.Lot)
	}
	for _, usage := range r.Supplies {
		refs = append(refs, usage.Ref())
	}
	return SortedUniqueRefs(refs)
}

// Demand sums the requested units per lot
func (r *SaleRequest) Demand() map[LotRef]int {
	demand := make(map[LotRef]int, len(r.Items)+len(r.Supplies))
	for _, item := range r.Items {
		demand[item.Lot] += item.QuantitySold
	}
	for _, usage := range r.Supplies {
		demand[usage.Ref()] += usage.QuantityUsed
	}
	return demand
}

// SaleEvent is one recorded checkout
type SaleEvent struct {
	ID                     int64             `json:"id"`
	SaleDate               time.Time         `json:"sale_date"`
	OurShippingCost        decimal.Decimal   `json:"our_shipping_cost"`
	CustomerShippingCharge decimal.Decimal   `json:"customer_shipping_charge"`
	PlatformFee            decimal.Decimal   `json:"platform_fee"`
	TotalSuppliesCost      decimal.Decimal   `json:"total_supplies_cost"`
	TotalProfitLoss        decimal.Decimal   `json:"total_profit_loss"`
	Notes                  string            `json:"notes,omitempty"`
	DateRecorded           time.Time         `json:"date_recorded"`
	Items                  []SaleLineItem    `json:"items"`
	Supplies               []SaleSupplyUsage `json:"supplies"`
}

// NewSaleEvent creates the event header from a validated request. Derived
// totals start at zero and are filled in once every line is processed.
func NewSaleEvent(req *SaleRequest) *SaleEvent {
	return &SaleEvent{
		SaleDate:               req.ParsedDate,
		OurShippingCost:        req.OurShippingCost,
		CustomerShippingCharge: req.CustomerShippingCharge,
		PlatformFee:            req.PlatformFee,
		TotalSuppliesCost:      decimal.Zero,
		TotalProfitLoss:        decimal.Zero,
		Notes:                  strings.TrimSpace(req.Notes),
	}
}

// SaleLineItem is the audit row for one sold lot
type SaleLineItem struct {
	ID               int64           `json:"id"`
	SaleEventID      int64           `json:"sale_event_id"`
	InventoryItemID  *int64          `json:"inventory_item_id,omitempty"`
	Kind             LotKind         `json:"kind"`
	ItemName         string          `json:"item_name"`
	ItemDetails      string          `json:"item_details"`
	QuantitySold     int             `json:"quantity_sold"`
	SellPricePerItem decimal.Decimal `json:"sell_price_per_item"`
	BuyPricePerItem  decimal.Decimal `json:"buy_price_per_item"`
	ItemProfitLoss   decimal.Decimal `json:"item_profit_loss"`
}

// NewSaleLineItem snapshots lot at sale time
func NewSaleLineItem(lot Lot, req SaleLineRequest) SaleLineItem {
	id := lot.Ref().ID
	buy := lot.UnitCost()
	return SaleLineItem{
		InventoryItemID:  &id,
		Kind:             lot.Kind(),
		ItemName:         lot.DisplayName(),
		ItemDetails:      lot.Identity(),
		QuantitySold:     req.QuantitySold,
		SellPricePerItem: req.SellPricePerItem,
		BuyPricePerItem:  buy,
		ItemProfitLoss:   LineProfitLoss(req.SellPricePerItem, buy, req.QuantitySold),
	}
}

// LotRef returns the referenced lot, if the weak reference is still set
func (li SaleLineItem) LotRef() (LotRef, bool) {
	if li.InventoryItemID == nil {
		return LotRef{}, false
	}
	return LotRef{Kind: li.Kind, ID: *li.InventoryItemID}, true
}

// SaleSupplyUsage is the audit row for one consumed supply
type SaleSupplyUsage struct {
	ID                        int64           `json:"id"`
	SaleEventID               int64           `json:"sale_event_id"`
	SupplyID                  int64           `json:"supply_id"`
	QuantityUsed              int             `json:"quantity_used"`
	CostPerUnitSnapshot       decimal.Decimal `json:"cost_per_unit_snapshot"`
	SupplyNameSnapshot        string          `json:"supply_name_snapshot"`
	SupplyDescriptionSnapshot string          `json:"supply_description_snapshot,omitempty"`
}

// NewSaleSupplyUsage snapshots supply at sale time
func NewSaleSupplyUsage(supply *ShippingSupply, quantity int) SaleSupplyUsage {
	return SaleSupplyUsage{
		SupplyID:                  supply.ID,
		QuantityUsed:              quantity,
		CostPerUnitSnapshot:       supply.CostPerUnit,
		SupplyNameSnapshot:        supply.SupplyName,
		SupplyDescriptionSnapshot: supply.Description,
	}
}

// Cost is the snapshot cost of this usage
func (u SaleSupplyUsage) Cost() decimal.Decimal {
	return u.CostPerUnitSnapshot.Mul(decimal.NewFromInt(int64(u.QuantityUsed)))
}

// Label is the name used in restock messages
func (u SaleSupplyUsage) Label() string {
	if u.SupplyDescriptionSnapshot == "" {
		return u.SupplyNameSnapshot
	}
	return u.SupplyNameSnapshot + " (" + u.SupplyDescriptionSnapshot + ")"
}

// LineProfitLoss is (sell - buy) * quantity
func LineProfitLoss(sell, buy decimal.Decimal, quantity int) decimal.Decimal {
	return sell.Sub(buy).Mul(decimal.NewFromInt(int64(quantity)))
}

// TotalProfitLoss is items + customer shipping - our shipping - supplies - fee
func TotalProfitLoss(itemsPL, customerShipping, ourShipping, suppliesCost, platformFee decimal.Decimal) decimal.Decimal {
	return itemsPL.Add(customerShipping).Sub(ourShipping).Sub(suppliesCost).Sub(platformFee)
}

// Settle recomputes the derived totals from the event's lines
func (e *SaleEvent) Settle() {
	itemsPL := decimal.Zero
	for _, li := range e.Items {
		itemsPL = itemsPL.Add(li.ItemProfitLoss)
	}
	supplies := decimal.Zero
	for _, u := range e.Supplies {
		supplies = supplies.Add(u.Cost())
	}
	e.TotalSuppliesCost = supplies
	e.TotalProfitLoss = TotalProfitLoss(itemsPL, e.CustomerShippingCharge, e.OurShippingCost, supplies, e.PlatformFee)
}

// SaleResult is returned by the sale engine's mutating operations
type SaleResult struct {
	SaleEventID       int64           `json:"sale_event_id"`
	Message           string          `json:"message"`
	Warnings          []string        `json:"warnings,omitempty"`
	TotalProfitLoss   decimal.Decimal `json:"total_profit_loss"`
	TotalSuppliesCost decimal.Decimal `json:"total_supplies_cost"`
}

// SaleListParams pages through sale events
type SaleListParams struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// Page size bounds shared by every listing
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// PageLimit returns the page size a listing actually uses: unset means
// DefaultPageSize and anything above MaxPageSize is capped to it.
func PageLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	default:
		return limit
	}
}
