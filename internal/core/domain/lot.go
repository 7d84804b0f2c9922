// internal/core/domain/lot.go
package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LotKind identifies one of the three inventory collections
type LotKind string

// Lot kinds
const (
	LotKindCard   LotKind = "card"
	LotKindSealed LotKind = "sealed_product"
	LotKindSupply LotKind = "shipping_supply"
)

// Persisted sale item discriminators
const (
	SaleItemTypeCard   = "single_card"
	SaleItemTypeSealed = "sealed_product"
)

// AllLotKinds lists the collections in lock order
var AllLotKinds = []LotKind{LotKindCard, LotKindSealed, LotKindSupply}

// ParseLotKind accepts the kind names used by the API, the persisted sale
// item types, and the table names.
func ParseLotKind(s string) (LotKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "card", "cards", "single_card":
		return LotKindCard, nil
	case "sealed", "sealed_product", "sealed_products":
		return LotKindSealed, nil
	case "supply", "supplies", "shipping_supply", "shipping_supplies", "shipping_supplies_inventory":
		return LotKindSupply, nil
	default:
		return "", ValidationErrorf("Invalid item type '%s'.", s)
	}
}

// Table returns the backing table name
func (k LotKind) Table() string {
	switch k {
	case LotKindCard:
		return "cards"
	case LotKindSealed:
		return "sealed_products"
	case LotKindSupply:
		return "shipping_supplies_inventory"
	default:
		return ""
	}
}

// QuantityColumn returns the stock column of the backing table
func (k LotKind) QuantityColumn() string {
	if k == LotKindSupply {
		return "quantity_on_hand"
	}
	return "quantity"
}

// Sellable reports whether lots of this kind may appear as sale line items
func (k LotKind) Sellable() bool {
	return k == LotKindCard || k == LotKindSealed
}

// SaleItemType returns the discriminator stored on sale items
func (k LotKind) SaleItemType() string {
	switch k {
	case LotKindCard:
		return SaleItemTypeCard
	case LotKindSealed:
		return SaleItemTypeSealed
	default:
		return ""
	}
}

// LotRef is a weak reference to a lot
type LotRef struct {
	Kind LotKind `json:"kind"`
	ID   int64   `json:"id"`
}

func (r LotRef) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}

// CompareLotRefs orders refs by table name, then id. Locks are always
// taken in this order.
func CompareLotRefs(a, b LotRef) int {
	if c := cmp.Compare(a.Kind.Table(), b.Kind.Table()); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortedUniqueRefs returns refs deduplicated and in lock order
func SortedUniqueRefs(refs []LotRef) []LotRef {
	out := slices.Clone(refs)
	slices.SortFunc(out, CompareLotRefs)
	return slices.Compact(out)
}

// Lot is the capability set shared by every stocked unit-group
type Lot interface {
	Ref() LotRef
	Kind() LotKind
	Quantity() int
	UnitCost() decimal.Decimal
	Identity() string
	DisplayName() string
	StorageLocation() string
	Decrement(n int) error
	Increment(n int)
	Validate() error
}

// LotBase holds the fields every lot kind carries
type LotBase struct {
	ID          int64     `json:"id"`
	Qty         int       `json:"quantity"`
	Location    string    `json:"location,omitempty"`
	DateAdded   time.Time `json:"date_added"`
	LastUpdated time.Time `json:"last_updated"`
}

// Quantity returns units in stock
func (b *LotBase) Quantity() int { return b.Qty }

// StorageLocation returns where the lot is kept
func (b *LotBase) StorageLocation() string { return b.Location }

// Increment restocks n units
func (b *LotBase) Increment(n int) { b.Qty += n }

func (b *LotBase) decrement(n int, shortage func(requested, available int) error) error {
	if n <= 0 {
		return ValidationErrorf("Quantity must be a positive integer, got %d.", n)
	}
	if n > b.Qty {
		return shortage(n, b.Qty)
	}
	b.Qty -= n
	return nil
}

func (b *LotBase) validate() error {
	if b.Qty < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	return nil
}

// Card is a stocked single trading card
type Card struct {
	LotBase
	SetCode            string           `json:"set_code"`
	CollectorNumber    string           `json:"collector_number"`
	Name               string           `json:"name"`
	IsFoil             bool             `json:"is_foil"`
	Rarity             string           `json:"rarity,omitempty"`
	Language           string           `json:"language,omitempty"`
	Condition          string           `json:"condition,omitempty"`
	BuyPrice           decimal.Decimal  `json:"buy_price"`
	SellPrice          *decimal.Decimal `json:"sell_price,omitempty"`
	MarketPriceUSD     *decimal.Decimal `json:"market_price_usd,omitempty"`
	FoilMarketPriceUSD *decimal.Decimal `json:"foil_market_price_usd,omitempty"`
	ImageURI           string           `json:"image_uri,omitempty"`
	ScryfallID         string           `json:"scryfall_id,omitempty"`
}

var _ Lot = (*Card)(nil)

func (c *Card) Ref() LotRef               { return LotRef{Kind: LotKindCard, ID: c.ID} }
func (c *Card) Kind() LotKind             { return LotKindCard }
func (c *Card) UnitCost() decimal.Decimal { return c.BuyPrice }
func (c *Card) DisplayName() string       { return c.Name }

// Identity renders e.g. "MH2-123 (Foil) (R: Rare, L: EN, C: NM)"
func (c *Card) Identity() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s-%s", c.SetCode, c.CollectorNumber)
	if c.IsFoil {
		b.WriteString(" (Foil)")
	}
	fmt.Fprintf(&b, " (R: %s, L: %s, C: %s)",
		orNA(capitalize(c.Rarity)), orNA(strings.ToUpper(c.Language)), orNA(c.Condition))
	return b.String()
}

func (c *Card) Decrement(n int) error {
	return c.decrement(n, func(requested, available int) error {
		return InsufficientStockError(requested, available, c.Name, c.Location)
	})
}

// Validate checks the identity attributes required to stock a card
func (c *Card) Validate() error {
	if strings.TrimSpace(c.SetCode) == "" {
		return fmt.Errorf("set_code is required")
	}
	if strings.TrimSpace(c.CollectorNumber) == "" {
		return fmt.Errorf("collector_number is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if c.BuyPrice.IsNegative() {
		return fmt.Errorf("buy_price cannot be negative")
	}
	if c.SellPrice != nil && c.SellPrice.IsNegative() {
		return fmt.Errorf("sell_price cannot be negative")
	}
	return c.validate()
}

// Normalize trims identity attributes so equal lots compare equal
func (c *Card) Normalize() {
	c.SetCode = strings.ToUpper(strings.TrimSpace(c.SetCode))
	c.CollectorNumber = strings.TrimSpace(c.CollectorNumber)
	c.Name = strings.TrimSpace(c.Name)
	c.Rarity = strings.ToLower(strings.TrimSpace(c.Rarity))
	c.Language = strings.ToLower(strings.TrimSpace(c.Language))
	c.Condition = strings.TrimSpace(c.Condition)
	c.Location = strings.TrimSpace(c.Location)
	c.BuyPrice = c.BuyPrice.Round(2)
}

// SealedProduct is a stocked sealed product (booster box, bundle, ...)
type SealedProduct struct {
	LotBase
	ProductName       string           `json:"product_name"`
	SetName           string           `json:"set_name"`
	ProductType       string           `json:"product_type"`
	Language          string           `json:"language"`
	IsCollectorsItem  bool             `json:"is_collectors_item"`
	BuyPrice          decimal.Decimal  `json:"buy_price"`
	SellPrice         *decimal.Decimal `json:"sell_price,omitempty"`
	ManualMarketPrice *decimal.Decimal `json:"manual_market_price,omitempty"`
	ImageURI          string           `json:"image_uri,omitempty"`
}

var _ Lot = (*SealedProduct)(nil)

func (p *SealedProduct) Ref() LotRef               { return LotRef{Kind: LotKindSealed, ID: p.ID} }
func (p *SealedProduct) Kind() LotKind             { return LotKindSealed }
func (p *SealedProduct) UnitCost() decimal.Decimal { return p.BuyPrice }
func (p *SealedProduct) DisplayName() string       { return p.ProductName }

// Identity renders e.g. "Modern Horizons 3 - Play Booster Box (Collector) (L: ENGLISH)"
func (p *SealedProduct) Identity() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s", p.SetName, p.ProductType)
	if p.IsCollectorsItem {
		b.WriteString(" (Collector)")
	}
	fmt.Fprintf(&b, " (L: %s)", orNA(strings.ToUpper(p.Language)))
	return b.String()
}

func (p *SealedProduct) Decrement(n int) error {
	return p.decrement(n, func(requested, available int) error {
		return InsufficientStockError(requested, available, p.ProductName, p.Location)
	})
}

func (p *SealedProduct) Validate() error {
	if strings.TrimSpace(p.ProductName) == "" {
		return fmt.Errorf("product_name is required")
	}
	if strings.TrimSpace(p.SetName) == "" {
		return fmt.Errorf("set_name is required")
	}
	if strings.TrimSpace(p.ProductType) == "" {
		return fmt.Errorf("product_type is required")
	}
	if p.BuyPrice.IsNegative() {
		return fmt.Errorf("buy_price cannot be negative")
	}
	if p.SellPrice != nil && p.SellPrice.IsNegative() {
		return fmt.Errorf("sell_price cannot be negative")
	}
	return p.validate()
}

func (p *SealedProduct) Normalize() {
	p.ProductName = strings.TrimSpace(p.ProductName)
	p.SetName = strings.TrimSpace(p.SetName)
	p.ProductType = strings.TrimSpace(p.ProductType)
	p.Language = strings.TrimSpace(p.Language)
	if p.Language == "" {
		p.Language = "English"
	}
	p.Location = strings.TrimSpace(p.Location)
	p.BuyPrice = p.BuyPrice.Round(2)
}

// ShippingSupply is a consumable packing material lot
type ShippingSupply struct {
	LotBase
	SupplyName    string          `json:"supply_name"`
	Description   string          `json:"description,omitempty"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	PurchaseDate  *time.Time      `json:"purchase_date,omitempty"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit"`
}

var _ Lot = (*ShippingSupply)(nil)

func (s *ShippingSupply) Ref() LotRef               { return LotRef{Kind: LotKindSupply, ID: s.ID} }
func (s *ShippingSupply) Kind() LotKind             { return LotKindSupply }
func (s *ShippingSupply) UnitCost() decimal.Decimal { return s.CostPerUnit }
func (s *ShippingSupply) DisplayName() string       { return s.SupplyName }

// Identity renders e.g. "Bubble Mailer (6x9) per unit"
func (s *ShippingSupply) Identity() string {
	if s.Description == "" {
		return fmt.Sprintf("%s per %s", s.SupplyName, s.UnitOfMeasure)
	}
	return fmt.Sprintf("%s (%s) per %s", s.SupplyName, s.Description, s.UnitOfMeasure)
}

func (s *ShippingSupply) Decrement(n int) error {
	return s.decrement(n, func(requested, available int) error {
		return SupplyShortageError(requested, available, s.SupplyName, s.Location)
	})
}

func (s *ShippingSupply) Validate() error {
	if strings.TrimSpace(s.SupplyName) == "" {
		return fmt.Errorf("supply_name is required")
	}
	if s.CostPerUnit.IsNegative() {
		return fmt.Errorf("cost_per_unit cannot be negative")
	}
	return s.validate()
}

func (s *ShippingSupply) Normalize() {
	s.SupplyName = strings.TrimSpace(s.SupplyName)
	s.Description = strings.TrimSpace(s.Description)
	s.UnitOfMeasure = strings.TrimSpace(s.UnitOfMeasure)
	if s.UnitOfMeasure == "" {
		s.UnitOfMeasure = "unit"
	}
	s.Location = strings.TrimSpace(s.Location)
	s.CostPerUnit = s.CostPerUnit.Round(2)
}

// NewLot returns an empty lot of the given kind, used when decoding
func NewLot(kind LotKind) (Lot, error) {
	switch kind {
	case LotKindCard:
		return &Card{}, nil
	case LotKindSealed:
		return &SealedProduct{}, nil
	case LotKindSupply:
		return &ShippingSupply{}, nil
	default:
		return nil, ValidationErrorf("Invalid item type '%s'.", kind)
	}
}

// NormalizeLot applies the kind-specific normalization
func NormalizeLot(lot Lot) {
	if n, ok := lot.(interface{ Normalize() }); ok {
		n.Normalize()
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}

// UpsertResult reports whether a stock-in merged into an existing lot
type UpsertResult struct {
	Ref      LotRef `json:"ref"`
	Merged   bool   `json:"merged"`
	Quantity int    `json:"quantity"`
}

// LotListParams filters a lot listing
type LotListParams struct {
	Kind      LotKind
	Search    string
	Location  string
	InStock   bool
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}
