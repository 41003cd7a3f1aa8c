package bir

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

// The official 2316 template reserves a shared amount column per part.
const (
	partIVAColumn = "L"
	partIVBColumn = "Q"
)

type templateCell struct {
	Item  int
	Row   int
	Value func(r report.AggregatedEmployeeRecord) decimal.Decimal
}

// partIVA is the Part IV-A summary table of the official 2316 sheet, keyed
// by form item number. One shared amount column.
var partIVA = []templateCell{
	{Item: 19, Row: 36, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return r.GrossCompensation }},
	{Item: 20, Row: 37, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return r.NonTaxable }},
	{Item: 21, Row: 38, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return r.Taxable }},
	{Item: 22, Row: 39, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // previous employer
	{Item: 23, Row: 40, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return r.Taxable }},
	{Item: 24, Row: 41, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return r.WithholdingTax }},
	{Item: 25, Row: 42, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return r.WithholdingTax }},
	{Item: 26, Row: 43, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // previous employer withheld
	{Item: 27, Row: 44, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // tax paid in return
	{Item: 28, Row: 45, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // refunded / credited
}

func exempt13th(r report.AggregatedEmployeeRecord) decimal.Decimal {
	cap90 := decimal.NewFromInt(90000)
	return decimal.Min(r.ThirteenthMonth, cap90)
}

func excess13th(r report.AggregatedEmployeeRecord) decimal.Decimal {
	excess := r.ThirteenthMonth.Sub(decimal.NewFromInt(90000))
	if excess.IsNegative() {
		return decimal.Zero
	}
	return excess
}

// partIVB is the Part IV-B detail table: non-taxable/exempt items, then
// taxable-regular items, then supplementary items, in a second shared amount
// column.
var partIVB = []templateCell{
	// Non-taxable / exempt
	{Item: 29, Row: 48, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // basic SMW
	{Item: 30, Row: 49, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // holiday pay (MWE)
	{Item: 31, Row: 50, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // overtime pay (MWE)
	{Item: 32, Row: 51, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // night diff (MWE)
	{Item: 33, Row: 52, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // hazard pay (MWE)
	{Item: 34, Row: 53, Value: exempt13th},
	{Item: 35, Row: 54, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return r.DeMinimis }},
	{Item: 36, Row: 55, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return r.EmployeeContributions() }},
	{Item: 37, Row: 56, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // other salaries
	{Item: 38, Row: 57, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return r.NonTaxable }},

	// Taxable regular
	{Item: 39, Row: 59, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return r.Taxable }},
	{Item: 40, Row: 60, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // representation
	{Item: 41, Row: 61, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // transportation
	{Item: 42, Row: 62, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // COLA
	{Item: 43, Row: 63, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // fixed housing
	{Item: 44, Row: 64, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // others a
	{Item: 45, Row: 65, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // others b

	// Supplementary
	{Item: 46, Row: 67, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // commission
	{Item: 47, Row: 68, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // profit sharing
	{Item: 48, Row: 69, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // fees / director's
	{Item: 49, Row: 70, Value: excess13th},
	{Item: 50, Row: 71, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // hazard pay
	{Item: 51, Row: 72, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // overtime
	{Item: 52, Row: 73, Value: func(r report.AggregatedEmployeeRecord) decimal.Decimal { return decimal.Zero }}, // others
}

// identityCells are the fixed coordinates of the certificate's identity
// block: filled per employee and per employer, not keyed by item number.
var identityCells = struct {
	Year, EmployeeTIN, EmployeeName, EmployerTIN, EmployerName, EmployerAddress string
}{
	Year:            "C7",
	EmployeeTIN:     "C10",
	EmployeeName:    "C12",
	EmployerTIN:     "C24",
	EmployerName:    "C26",
	EmployerAddress: "C28",
}

// TemplateFiller writes values into fixed cells of the externally supplied
// official BIR 2316 spreadsheet. The template path is configuration; the
// file's absence is a hard failure before any data work begins.
type TemplateFiller struct {
	path string
}

func NewTemplateFiller(path string) (*TemplateFiller, error) {
	if path == "" {
		return nil, report.ErrTemplateNotFound
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", report.ErrTemplateNotFound, path)
	}
	if err := validateCellTable("Part IV-A", partIVA); err != nil {
		return nil, err
	}
	if err := validateCellTable("Part IV-B", partIVB); err != nil {
		return nil, err
	}
	return &TemplateFiller{path: path}, nil
}

// validateCellTable rejects duplicate or gapped item numbers and duplicate
// rows, so a broken mapping constant surfaces at startup rather than as a
// silently misfiled certificate.
func validateCellTable(name string, cells []templateCell) error {
	if len(cells) == 0 {
		return fmt.Errorf("template table %s is empty", name)
	}
	items := make(map[int]bool, len(cells))
	rows := make(map[int]bool, len(cells))
	for _, c := range cells {
		if items[c.Item] {
			return fmt.Errorf("template table %s: duplicate item %d", name, c.Item)
		}
		if rows[c.Row] {
			return fmt.Errorf("template table %s: duplicate row %d", name, c.Row)
		}
		if c.Value == nil {
			return fmt.Errorf("template table %s: item %d has no value mapping", name, c.Item)
		}
		items[c.Item] = true
		rows[c.Row] = true
	}
	first := cells[0].Item
	for i := range cells {
		if !items[first+i] {
			return fmt.Errorf("template table %s: missing item %d", name, first+i)
		}
	}
	return nil
}

// Single fills one certificate sheet for one employee and returns the
// workbook ready for serialization.
func (t *TemplateFiller) Single(tenant report.TenantContext, rec report.AggregatedEmployeeRecord, year int) (*excelize.File, error) {
	f, err := excelize.OpenFile(t.path)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	sheet := f.GetSheetName(0)
	if err := t.fillSheet(f, sheet, tenant, rec, year); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// Batch produces one workbook with one filled sheet per employee. Each sheet
// starts from a pristine copy of the template sheet; the original template
// sheet is removed at the end.
func (t *TemplateFiller) Batch(tenant report.TenantContext, recs []report.AggregatedEmployeeRecord, year int) (*excelize.File, error) {
	if len(recs) == 0 {
		return nil, report.ErrNoDataFound
	}

	f, err := excelize.OpenFile(t.path)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	templateSheet := f.GetSheetName(0)
	templateIdx, err := f.GetSheetIndex(templateSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("locate template sheet: %w", err)
	}

	used := make(map[string]bool, len(recs))
	for _, rec := range recs {
		name := uniqueSheetName(SanitizeSheetName(rec.LastName+"_"+rec.FirstName), used)
		used[name] = true
		idx, err := f.NewSheet(name)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("add sheet %q: %w", name, err)
		}
		if err := f.CopySheet(templateIdx, idx); err != nil {
			f.Close()
			return nil, fmt.Errorf("copy template into %q: %w", name, err)
		}
		if err := t.fillSheet(f, name, tenant, rec, year); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := f.DeleteSheet(templateSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("remove template sheet: %w", err)
	}
	return f, nil
}

func (t *TemplateFiller) fillSheet(f *excelize.File, sheet string, tenant report.TenantContext, rec report.AggregatedEmployeeRecord, year int) error {
	// The template ships with shaded placeholder styling that would leak
	// into filled cells, so every write forces a white fill.
	white, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFFFF"}},
	})
	if err != nil {
		return fmt.Errorf("create white-fill style: %w", err)
	}

	set := func(cell string, v any) error {
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("fill cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, white); err != nil {
			return fmt.Errorf("style cell %s: %w", cell, err)
		}
		return nil
	}

	if err := set(identityCells.Year, year); err != nil {
		return err
	}
	if err := set(identityCells.EmployeeTIN, rec.TIN); err != nil {
		return err
	}
	if err := set(identityCells.EmployeeName, strings.ToUpper(rec.FullName())); err != nil {
		return err
	}
	if err := set(identityCells.EmployerTIN, tenant.TIN); err != nil {
		return err
	}
	if err := set(identityCells.EmployerName, strings.ToUpper(tenant.CompanyName)); err != nil {
		return err
	}
	if err := set(identityCells.EmployerAddress, strings.ToUpper(tenant.Address)); err != nil {
		return err
	}

	for _, c := range partIVA {
		val, _ := c.Value(rec).Float64()
		if err := set(fmt.Sprintf("%s%d", partIVAColumn, c.Row), val); err != nil {
			return err
		}
	}
	for _, c := range partIVB {
		val, _ := c.Value(rec).Float64()
		if err := set(fmt.Sprintf("%s%d", partIVBColumn, c.Row), val); err != nil {
			return err
		}
	}
	return nil
}

// sheetForbidden covers the characters Excel rejects in sheet names plus
// path separators.
var sheetForbidden = strings.NewReplacer(
	"/", "_", "\\", "_", "?", "_", "*", "_",
	"[", "_", "]", "_", ":", "_", "'", "_",
)

// SanitizeSheetName makes a workbook-safe sheet name: forbidden characters
// replaced, length capped at Excel's 31-character limit.
func SanitizeSheetName(name string) string {
	name = sheetForbidden.Replace(strings.TrimSpace(name))
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	return name
}

// uniqueSheetName disambiguates homonymous employees with a numeric suffix;
// a taken base name would otherwise make NewSheet return the existing sheet
// and the second fill would clobber the first certificate. The base is
// shortened so the suffixed name stays within the 31-character cap.
func uniqueSheetName(name string, used map[string]bool) string {
	if !used[name] {
		return name
	}
	base := []rune(name)
	for n := 2; ; n++ {
		suffix := fmt.Sprintf("_%d", n)
		b := base
		if len(b)+len(suffix) > 31 {
			b = b[:31-len(suffix)]
		}
		if candidate := string(b) + suffix; !used[candidate] {
			return candidate
		}
	}
}
