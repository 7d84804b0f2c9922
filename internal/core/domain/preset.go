// internal/core/domain/preset.go
package domain

import (
	"strings"
	"time"
)

// SupplyPreset is a named bundle of shipping supplies used together
type SupplyPreset struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Items       []SupplyPresetItem `json:"items"`
	CreatedAt   time.Time          `json:"created_at"`
}

// SupplyPresetItem is one supply in a preset
type SupplyPresetItem struct {
	SupplyID   int64  `json:"supply_id"`
	Quantity   int    `json:"quantity"`
	SupplyName string `json:"supply_name,omitempty"`
}

// Validate checks the preset shape
func (p *SupplyPreset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ValidationErrorf("Preset name is required.")
	}
	if len(p.Items) == 0 {
		return ValidationErrorf("A preset must include at least one supply.")
	}
	seen := make(map[int64]bool, len(p.Items))
	for i, item := range p.Items {
		if item.SupplyID <= 0 {
			return ValidationErrorf("Preset item %d: supply id is required.", i+1)
		}
		if item.Quantity <= 0 {
			return ValidationErrorf("Preset item %d: quantity must be a positive integer.", i+1)
		}
		if seen[item.SupplyID] {
			return ValidationErrorf("Preset item %d: supply %d is listed twice.", i+1, item.SupplyID)
		}
		seen[item.SupplyID] = true
	}
	return nil
}

// Usages expands the preset into supply usage requests
func (p *SupplyPreset) Usages() []SupplyUsageRequest {
	out := make([]SupplyUsageRequest, 0, len(p.Items))
	for _, item := range p.Items {
		out = append(out, SupplyUsageRequest{SupplyID: item.SupplyID, QuantityUsed: item.Quantity})
	}
	return out
}
