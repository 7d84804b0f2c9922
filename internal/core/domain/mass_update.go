// internal/core/domain/mass_update.go
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Mass update field keys
const (
	FieldLocation                = "location"
	FieldSellPrice               = "sell_price"
	FieldCondition               = "condition"
	FieldDescription             = "description"
	FieldUnitOfMeasure           = "unit_of_measure"
	FieldBuyPriceChangePct       = "buy_price_change_percentage"
	FieldMarketPriceChangePct    = "market_price_change_percentage"
	FieldCostPerUnitChangePct    = "cost_per_unit_change_percentage"
	fieldManualMarketPriceChange = "manual_market_price_change_percentage"
)

// massUpdateField describes one allow-listed update key
type massUpdateField struct {
	column     string
	percentage bool
	numeric    bool
	kinds      []LotKind
}

var massUpdateFields = map[string]massUpdateField{
	FieldLocation:             {column: "location", kinds: AllLotKinds},
	FieldSellPrice:            {column: "sell_price", numeric: true, kinds: []LotKind{LotKindCard, LotKindSealed}},
	FieldCondition:            {column: "condition", kinds: []LotKind{LotKindCard}},
	FieldDescription:          {column: "description", kinds: []LotKind{LotKindSupply}},
	FieldUnitOfMeasure:        {column: "unit_of_measure", kinds: []LotKind{LotKindSupply}},
	FieldBuyPriceChangePct:    {column: "buy_price", percentage: true, kinds: []LotKind{LotKindCard, LotKindSealed}},
	FieldMarketPriceChangePct: {column: "manual_market_price", percentage: true, kinds: []LotKind{LotKindSealed}},
	FieldCostPerUnitChangePct: {column: "cost_per_unit", percentage: true, kinds: []LotKind{LotKindSupply}},
}

// MassUpdateFilter selects the lots a mass update touches. Empty or "all"
// values do not filter.
type MassUpdateFilter struct {
	ItemType   string `json:"item_type"`
	Text       string `json:"filter_text,omitempty"`
	Location   string `json:"filter_location,omitempty"`
	Set        string `json:"filter_set,omitempty"`
	Foil       string `json:"filter_foil,omitempty"`
	Rarity     string `json:"filter_rarity,omitempty"`
	CardLang   string `json:"filter_card_lang,omitempty"`
	Condition  string `json:"filter_condition,omitempty"`
	Collector  string `json:"filter_collector,omitempty"`
	SealedLang string `json:"filter_sealed_lang,omitempty"`
}

// Kinds resolves the item-type selector to the collections it covers
func (f MassUpdateFilter) Kinds() ([]LotKind, error) {
	if !IsFilterSet(f.ItemType) {
		return AllLotKinds, nil
	}
	kind, err := ParseLotKind(f.ItemType)
	if err != nil {
		return nil, ValidationErrorf("Invalid item type specified for mass update.")
	}
	return []LotKind{kind}, nil
}

// IsFilterSet reports whether a filter value constrains the selection
func IsFilterSet(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, "all")
}

// ParseYesNo interprets the yes/no flag filters
func ParseYesNo(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, ValidationErrorf("Invalid yes/no filter value '%s'.", v)
	}
}

// MassUpdateRequest is the submitted filter and update map
type MassUpdateRequest struct {
	Filter  MassUpdateFilter `json:"filters"`
	Updates UpdateValues     `json:"updates"`
}

// UpdateValues maps update keys to their raw values. JSON strings, numbers
// and booleans are all accepted and kept in their literal text form.
type UpdateValues map[string]string

// UnmarshalJSON implements json.Unmarshaler
func (u *UpdateValues) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return ValidationErrorf("Updates must be an object of field names to values.")
	}

	out := make(UpdateValues, len(raw))
	for key, value := range raw {
		value = bytes.TrimSpace(value)
		switch {
		case len(value) == 0 || bytes.Equal(value, []byte("null")):
			out[key] = ""
		case value[0] == '"':
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return ValidationErrorf("Invalid value for update field '%s'.", key)
			}
			out[key] = s
		case value[0] == '{' || value[0] == '[':
			return ValidationErrorf("Update field '%s' must be a string, number or boolean.", key)
		default:
			// numbers and true/false keep their JSON text
			out[key] = string(value)
		}
	}
	*u = out
	return nil
}

// Assignment is one SET clause. Percentage assignments scale the current
// value: new = coalesce(old, 0) * (1 + pct/100).
type Assignment struct {
	Column     string
	Value      any
	Percentage bool
}

// MassUpdatePlan is the update for one collection
type MassUpdatePlan struct {
	Kind        LotKind
	Assignments []Assignment
	Filter      MassUpdateFilter
}

// MassUpdateResult summarizes a committed mass update
type MassUpdateResult struct {
	Updated  int64            `json:"updated"`
	PerTable map[string]int64 `json:"per_table"`
	Message  string           `json:"message"`
	Plans    []MassUpdatePlan `json:"-"`
}

// BuildMassUpdatePlans checks every update key against the allow-list,
// parses the values, and returns one plan per collection that has at
// least one applicable field. Nothing is written here.
func BuildMassUpdatePlans(req MassUpdateRequest) ([]MassUpdatePlan, error) {
	kinds, err := req.Filter.Kinds()
	if err != nil {
		return nil, err
	}
	if err := validateFilter(req.Filter); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(req.Updates))
	for k := range req.Updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make(map[string]any, len(keys))
	for _, key := range keys {
		raw := strings.TrimSpace(req.Updates[key])
		canonical := key
		if key == fieldManualMarketPriceChange {
			canonical = FieldMarketPriceChangePct
		}
		field, ok := massUpdateFields[canonical]
		if !ok {
			return nil, NewError(KindInvalidField, "Field '%s' cannot be mass updated.", key)
		}
		if raw == "" {
			continue
		}
		if field.percentage || field.numeric {
			d, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, ValidationErrorf("Invalid numeric value '%s' for '%s'.", raw, key)
			}
			if field.numeric && d.IsNegative() {
				return nil, ValidationErrorf("Value for '%s' cannot be negative.", key)
			}
			if field.percentage && d.LessThanOrEqual(decimal.NewFromInt(-100)) {
				return nil, ValidationErrorf("Percentage change for '%s' must be greater than -100.", key)
			}
			values[canonical] = d
			continue
		}
		values[canonical] = raw
	}

	if len(values) == 0 {
		return nil, ValidationErrorf("No update fields provided.")
	}

	var plans []MassUpdatePlan
	for _, kind := range kinds {
		plan := MassUpdatePlan{Kind: kind, Filter: req.Filter}
		for _, key := range sortedKeys(values) {
			field := massUpdateFields[key]
			if !slices.Contains(field.kinds, kind) {
				continue
			}
			plan.Assignments = append(plan.Assignments, Assignment{
				Column:     field.column,
				Value:      values[key],
				Percentage: field.percentage,
			})
		}
		if len(plan.Assignments) > 0 {
			plans = append(plans, plan)
		}
	}

	if len(plans) == 0 {
		return nil, ValidationErrorf("None of the update fields apply to the selected item type.")
	}
	return plans, nil
}

// MassUpdateMessage renders the per-table breakdown
func MassUpdateMessage(plans []MassUpdatePlan, perTable map[string]int64) string {
	var b strings.Builder
	b.WriteString("Mass update completed.")
	for _, plan := range plans {
		table := plan.Kind.Table()
		fmt.Fprintf(&b, " Updated %d items in %s table.", perTable[table], table)
	}
	return b.String()
}

func validateFilter(f MassUpdateFilter) error {
	for _, flag := range []string{f.Foil, f.Collector} {
		if IsFilterSet(flag) {
			if _, err := ParseYesNo(flag); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
