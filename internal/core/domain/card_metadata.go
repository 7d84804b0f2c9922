// internal/core/domain/card_metadata.go
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CardLookup identifies a printing for the card-metadata resolver
type CardLookup struct {
	SetCode         string `json:"set_code"`
	CollectorNumber string `json:"collector_number"`
}

// Validate checks the lookup hints
func (l CardLookup) Validate() error {
	if strings.TrimSpace(l.SetCode) == "" || strings.TrimSpace(l.CollectorNumber) == "" {
		return ValidationErrorf("Set code and collector number are required for a card lookup.")
	}
	return nil
}

// CardMetadata is what the resolver knows about a printing
type CardMetadata struct {
	Name               string           `json:"name"`
	SetCode            string           `json:"set_code"`
	CollectorNumber    string           `json:"collector_number"`
	Rarity             string           `json:"rarity,omitempty"`
	Language           string           `json:"language,omitempty"`
	MarketPriceUSD     *decimal.Decimal `json:"market_price_usd,omitempty"`
	FoilMarketPriceUSD *decimal.Decimal `json:"foil_market_price_usd,omitempty"`
	ImageURI           string           `json:"image_uri,omitempty"`
	ScryfallID         string           `json:"scryfall_id,omitempty"`
}

// ApplyTo fills card attributes the caller left empty
func (m *CardMetadata) ApplyTo(c *Card) {
	if c.Name == "" {
		c.Name = m.Name
	}
	if c.Rarity == "" {
		c.Rarity = m.Rarity
	}
	if c.Language == "" {
		c.Language = m.Language
	}
	if c.MarketPriceUSD == nil {
		c.MarketPriceUSD = m.MarketPriceUSD
	}
	if c.FoilMarketPriceUSD == nil {
		c.FoilMarketPriceUSD = m.FoilMarketPriceUSD
	}
	if c.ImageURI == "" {
		c.ImageURI = m.ImageURI
	}
	if c.ScryfallID == "" {
		c.ScryfallID = m.ScryfallID
	}
}
