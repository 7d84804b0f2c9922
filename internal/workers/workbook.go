// internal/workers/workbook.go
package workers

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	salesHeaders = []string{"Sale ID", "Sale Date", "Customer Shipping", "Our Shipping",
		"Platform Fee", "Supplies Cost", "Total P/L", "Notes", "Recorded"}
	itemHeaders = []string{"Sale ID", "Item Type", "Inventory ID", "Item", "Details",
		"Quantity", "Sell Price", "Buy Price", "Item P/L"}
	supplyHeaders = []string{"Sale ID", "Supply ID", "Supply", "Description",
		"Quantity Used", "Cost Per Unit", "Cost"}
)

// BuildSalesWorkbook renders sale events, their items and supply usages
// as three sheets
func BuildSalesWorkbook(events []domain.SaleEvent) ([]byte, error) {
	file := xlsx.NewFile()

	sales, err := addSheet(file, "Sales", salesHeaders)
	if err != nil {
		return nil, err
	}
	items, err := addSheet(file, "Items", itemHeaders)
	if err != nil {
		return nil, err
	}
	supplies, err := addSheet(file, "Supplies", supplyHeaders)
	if err != nil {
		return nil, err
	}

	for _, e := range events {
		id := strconv.FormatInt(e.ID, 10)
		addRow(sales, id, e.SaleDate.Format("2006-01-02"),
			money(e.CustomerShippingCharge), money(e.OurShippingCost), money(e.PlatformFee),
			money(e.TotalSuppliesCost), money(e.TotalProfitLoss), e.Notes,
			e.DateRecorded.Format("2006-01-02 15:04:05"))

		for _, li := range e.Items {
			inv := ""
			if li.InventoryItemID != nil {
				inv = strconv.FormatInt(*li.InventoryItemID, 10)
			}
			addRow(items, id, li.Kind.SaleItemType(), inv, li.ItemName, li.ItemDetails,
				strconv.Itoa(li.QuantitySold), money(li.SellPricePerItem),
				money(li.BuyPricePerItem), money(li.ItemProfitLoss))
		}
		for _, u := range e.Supplies {
			addRow(supplies, id, strconv.FormatInt(u.SupplyID, 10), u.SupplyNameSnapshot,
				u.SupplyDescriptionSnapshot, strconv.Itoa(u.QuantityUsed),
				money(u.CostPerUnitSnapshot), money(u.Cost()))
		}
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buffer.Bytes(), nil
}

func addSheet(file *xlsx.File, name string, headers []string) (*xlsx.Sheet, error) {
	sheet, err := file.AddSheet(name)
	if err != nil {
		return nil, fmt.Errorf("failed to add %s sheet: %w", name, err)
	}
	row := sheet.AddRow()
	for _, header := range headers {
		cell := row.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}
	sheet.SetColWidth(1, len(headers), 15)
	return sheet, nil
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().Value = v
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// importSheets maps accepted sheet names to lot kinds
var importSheets = map[string]domain.LotKind{
	"cards":             domain.LotKindCard,
	"sealed_products":   domain.LotKindSealed,
	"sealed":            domain.LotKindSealed,
	"shipping_supplies": domain.LotKindSupply,
	"supplies":          domain.LotKindSupply,
}

// LotRow is one parsed row of an import workbook
type LotRow struct {
	Sheet string
	Row   int
	Lot   domain.Lot
	Err   error
}

// ReadLotWorkbook parses the cards, sealed_products and shipping_supplies
// sheets. Columns are matched by header name. Rows that fail to parse come
// back with Err set; blank rows are skipped.
func ReadLotWorkbook(data []byte) ([]LotRow, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, domain.WrapError(domain.KindValidation, err, "The uploaded file is not a readable workbook.")
	}

	var out []LotRow
	matched := false
	for _, sheet := range file.Sheets {
		kind, ok := importSheets[strings.ToLower(strings.TrimSpace(sheet.Name))]
		if !ok {
			continue
		}
		matched = true

		var header map[string]int
		rowIdx := 0
		err := sheet.ForEachRow(func(r *xlsx.Row) error {
			rowIdx++
			if header == nil {
				header = readHeader(r)
				return nil
			}
			get := cellReader(r, header)
			if rowBlank(r) {
				return nil
			}
			lot, err := parseLot(kind, get)
			out = append(out, LotRow{Sheet: sheet.Name, Row: rowIdx, Lot: lot, Err: err})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet.Name, err)
		}
	}

	if !matched {
		return nil, domain.ValidationErrorf("Workbook has no cards, sealed_products or shipping_supplies sheet.")
	}
	return out, nil
}

func readHeader(r *xlsx.Row) map[string]int {
	header := make(map[string]int)
	r.ForEachCell(func(c *xlsx.Cell) error {
		name := strings.ToLower(strings.TrimSpace(c.String()))
		name = strings.ReplaceAll(name, " ", "_")
		if name != "" {
			col, _ := c.GetCoordinates()
			header[name] = col
		}
		return nil
	})
	return header
}

func rowBlank(r *xlsx.Row) bool {
	blank := true
	r.ForEachCell(func(c *xlsx.Cell) error {
		if strings.TrimSpace(c.String()) != "" {
			blank = false
		}
		return nil
	})
	return blank
}

func cellReader(r *xlsx.Row, header map[string]int) func(string) string {
	return func(name string) string {
		col, ok := header[name]
		if !ok {
			return ""
		}
		c := r.GetCell(col)
		if c == nil {
			return ""
		}
		return strings.TrimSpace(c.String())
	}
}

func parseLot(kind domain.LotKind, get func(string) string) (domain.Lot, error) {
	qty, err := parseQuantity(get("quantity"))
	if err != nil {
		return nil, err
	}

	switch kind {
	case domain.LotKindCard:
		foil, err := parseFlag(get("foil"))
		if err != nil {
			return nil, err
		}
		buy, err := parseMoney("buy_price", get("buy_price"))
		if err != nil {
			return nil, err
		}
		sell, err := parseOptionalMoney("sell_price", get("sell_price"))
		if err != nil {
			return nil, err
		}
		return &domain.Card{
			LotBase:         domain.LotBase{Qty: qty, Location: get("location")},
			SetCode:         get("set_code"),
			CollectorNumber: get("collector_number"),
			Name:            get("name"),
			IsFoil:          foil,
			Rarity:          get("rarity"),
			Language:        get("language"),
			Condition:       get("condition"),
			BuyPrice:        buy,
			SellPrice:       sell,
		}, nil

	case domain.LotKindSealed:
		collector, err := parseFlag(get("collector"))
		if err != nil {
			return nil, err
		}
		buy, err := parseMoney("buy_price", get("buy_price"))
		if err != nil {
			return nil, err
		}
		sell, err := parseOptionalMoney("sell_price", get("sell_price"))
		if err != nil {
			return nil, err
		}
		return &domain.SealedProduct{
			LotBase:          domain.LotBase{Qty: qty, Location: get("location")},
			ProductName:      get("product_name"),
			SetName:          get("set_name"),
			ProductType:      get("product_type"),
			Language:         get("language"),
			IsCollectorsItem: collector,
			BuyPrice:         buy,
			SellPrice:        sell,
		}, nil

	default:
		cost, err := parseMoney("cost_per_unit", get("cost_per_unit"))
		if err != nil {
			return nil, err
		}
		return &domain.ShippingSupply{
			LotBase:       domain.LotBase{Qty: qty, Location: get("location")},
			SupplyName:    get("supply_name"),
			Description:   get("description"),
			UnitOfMeasure: get("unit_of_measure"),
			CostPerUnit:   cost,
		}, nil
	}
}

func parseQuantity(s string) (int, error) {
	if s == "" {
		return 1, nil
	}
	// spreadsheets often store integers as "3.0"
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f != float64(int(f)) {
		return 0, domain.ValidationErrorf("Invalid quantity '%s'.", s)
	}
	return int(f), nil
}

func parseFlag(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return domain.ParseYesNo(s)
}

func parseMoney(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(s, "$"))
	if err != nil {
		return decimal.Zero, domain.ValidationErrorf("Invalid %s '%s'.", field, s)
	}
	return d.Round(2), nil
}

func parseOptionalMoney(field, s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := parseMoney(field, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
