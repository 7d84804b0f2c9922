// internal/adapters/db/lot_rows.go
package db

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

var lotColumns = map[domain.LotKind][]string{
	domain.LotKindCard: {
		"id", "set_code", "collector_number", "name", "quantity", "buy_price",
		"is_foil", "market_price_usd", "foil_market_price_usd", "image_uri",
		"sell_price", "location", "rarity", "language", "condition",
		"scryfall_id", "date_added", "last_updated",
	},
	domain.LotKindSealed: {
		"id", "product_name", "set_name", "product_type", "language",
		"is_collectors_item", "quantity", "buy_price", "manual_market_price",
		"sell_price", "image_uri", "location", "date_added", "last_updated",
	},
	domain.LotKindSupply: {
		"id", "supply_name", "description", "unit_of_measure", "purchase_date",
		"quantity_on_hand", "cost_per_unit", "location", "date_added", "last_updated",
	},
}

// selectList returns the column list of kind
func selectList(kind domain.LotKind) string {
	return strings.Join(lotColumns[kind], ", ")
}

func scanLot(kind domain.LotKind, row rowScanner) (domain.Lot, error) {
	switch kind {
	case domain.LotKindCard:
		return scanCard(row)
	case domain.LotKindSealed:
		return scanSealed(row)
	case domain.LotKindSupply:
		return scanSupply(row)
	default:
		return nil, domain.ValidationErrorf("Invalid item type '%s'.", kind)
	}
}

func scanCard(row rowScanner) (*domain.Card, error) {
	var (
		c                          domain.Card
		market, foilMarket, sellPx decimal.NullDecimal
	)
	err := row.Scan(
		&c.ID, &c.SetCode, &c.CollectorNumber, &c.Name, &c.Qty, &c.BuyPrice,
		&c.IsFoil, &market, &foilMarket, &c.ImageURI,
		&sellPx, &c.Location, &c.Rarity, &c.Language, &c.Condition,
		&c.ScryfallID, &c.DateAdded, &c.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	c.MarketPriceUSD = fromNull(market)
	c.FoilMarketPriceUSD = fromNull(foilMarket)
	c.SellPrice = fromNull(sellPx)
	return &c, nil
}

func scanSealed(row rowScanner) (*domain.SealedProduct, error) {
	var (
		p              domain.SealedProduct
		manual, sellPx decimal.NullDecimal
	)
	err := row.Scan(
		&p.ID, &p.ProductName, &p.SetName, &p.ProductType, &p.Language,
		&p.IsCollectorsItem, &p.Qty, &p.BuyPrice, &manual,
		&sellPx, &p.ImageURI, &p.Location, &p.DateAdded, &p.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	p.ManualMarketPrice = fromNull(manual)
	p.SellPrice = fromNull(sellPx)
	return &p, nil
}

func scanSupply(row rowScanner) (*domain.ShippingSupply, error) {
	var s domain.ShippingSupply
	err := row.Scan(
		&s.ID, &s.SupplyName, &s.Description, &s.UnitOfMeasure, &s.PurchaseDate,
		&s.Qty, &s.CostPerUnit, &s.Location, &s.DateAdded, &s.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func fromNull(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func toNull(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
