package report

import (
	"context"
	"fmt"
	"time"

	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/talentohr/hris-backend-go/internal/service/report/export"
)

// defaultPreviewLimit bounds preview payloads when the caller sends no limit.
const defaultPreviewLimit = 50

// Dispatcher resolves report codes to concrete generators and runs the
// shared preview/summary/generate operations over them. Each agency service
// embeds one. It is stateless; every call is fully described by its
// parameters.
type Dispatcher struct {
	order      []string
	generators map[string]report.Generator
}

func NewDispatcher(gens ...report.Generator) *Dispatcher {
	d := &Dispatcher{generators: make(map[string]report.Generator, len(gens))}
	for _, g := range gens {
		code := g.Definition().Code
		d.generators[code] = g
		d.order = append(d.order, code)
	}
	return d
}

// Generator resolves a report code.
func (d *Dispatcher) Generator(code string) (report.Generator, error) {
	g, ok := d.generators[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", report.ErrUnknownReportType, code)
	}
	return g, nil
}

// AvailableReports lists the registered forms in registration order.
func (d *Dispatcher) AvailableReports() []report.Definition {
	defs := make([]report.Definition, 0, len(d.order))
	for _, code := range d.order {
		defs = append(defs, d.generators[code].Definition())
	}
	return defs
}

// AvailablePeriods returns the static period metadata offered to the UI.
func (d *Dispatcher) AvailablePeriods() report.AvailablePeriods {
	currentYear := time.Now().Year()
	years := make([]int, 0, currentYear-2019)
	for y := currentYear; y >= 2020; y-- {
		years = append(years, y)
	}
	return report.AvailablePeriods{
		Years:    years,
		Months:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		Quarters: []int{1, 2, 3, 4},
	}
}

// Preview returns data bounded by params.Limit plus totals over the full set.
func (d *Dispatcher) Preview(ctx context.Context, tenant report.TenantContext, code string, params report.Params) (*report.Preview, error) {
	g, err := d.Generator(code)
	if err != nil {
		return nil, err
	}

	ds, err := g.GetData(ctx, tenant, params)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPreviewLimit
	}
	rows := ds.Rows
	if len(rows) > limit {
		rows = rows[:limit]
	}

	def := g.Definition()
	return &report.Preview{
		Code:        def.Code,
		Title:       def.Title,
		PeriodLabel: params.PeriodLabel(def.Granularity),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Headers:     def.Headers,
		Rows:        rows,
		Totals:      ds.Totals,
		TotalRows:   len(ds.Rows),
	}, nil
}

// Summary returns only the control totals.
func (d *Dispatcher) Summary(ctx context.Context, tenant report.TenantContext, code string, params report.Params) (*report.Totals, error) {
	g, err := d.Generator(code)
	if err != nil {
		return nil, err
	}
	return g.GetSummary(ctx, tenant, params)
}

// Generate runs the full pipeline and serializes into the requested format.
func (d *Dispatcher) Generate(ctx context.Context, tenant report.TenantContext, code string, format report.Format, params report.Params) (*report.File, error) {
	g, err := d.Generator(code)
	if err != nil {
		return nil, err
	}

	if !report.Supports(g, format) {
		return nil, &report.UnsupportedExportError{Code: code, Format: format}
	}

	ds, err := g.GetData(ctx, tenant, params)
	if err != nil {
		return nil, err
	}

	return export.Serialize(g, tenant, ds, params, format)
}
