package export

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
)

// Serialize routes an aggregated dataset to the serializer for the requested
// format. The capability check is a declared-interface check, never a trial
// call that catches a not-implemented failure.
func Serialize(g report.Generator, tenant report.TenantContext, ds *report.Dataset, params report.Params, format report.Format) (*report.File, error) {
	def := g.Definition()
	if !report.Supports(g, format) {
		return nil, &report.UnsupportedExportError{Code: def.Code, Format: format}
	}

	switch format {
	case report.FormatExcel:
		return Excel(g, tenant, ds, params)
	case report.FormatPDF:
		return PDF(g, tenant, ds, params)
	case report.FormatCSV:
		return CSV(g, tenant, ds, params)
	case report.FormatDAT:
		return DAT(g, tenant, ds, params)
	case report.FormatFixedWidth:
		return FixedWidth(g, tenant, ds, params)
	}
	return nil, &report.UnsupportedExportError{Code: def.Code, Format: format}
}

// cellString renders one mapped cell value for the text formats. Money is
// always two decimal places with a point separator, independent of locale.
func cellString(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case decimal.Decimal:
		return c.StringFixed(2)
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case float64:
		return decimal.NewFromFloat(c).StringFixed(2)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
