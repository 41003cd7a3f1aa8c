package bir

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
)

// certificatePDF renders one employee's 2316 certificate as an A4 portrait
// document mirroring the template's Part IV-A and Part IV-B amounts.
func certificatePDF(tenant report.TenantContext, rec report.AggregatedEmployeeRecord, year int) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10, text.NewCol(12, "Certificate of Compensation Payment / Tax Withheld", props.Text{
		Size: 13, Style: fontstyle.Bold, Align: align.Center,
	}))
	m.AddRow(6, text.NewCol(12, fmt.Sprintf("BIR Form 2316 - Calendar Year %d", year), props.Text{
		Size: 10, Align: align.Center,
	}))
	m.AddRow(4, col.New(12))

	m.AddRow(14,
		col.New(6).Add(
			text.New("Employee", props.Text{Size: 8, Style: fontstyle.Bold}),
			text.New(rec.FullName(), props.Text{Size: 9, Top: 4}),
			text.New("TIN: "+rec.TIN, props.Text{Size: 8, Top: 9}),
		),
		col.New(6).Add(
			text.New("Employer", props.Text{Size: 8, Style: fontstyle.Bold}),
			text.New(tenant.CompanyName, props.Text{Size: 9, Top: 4}),
			text.New("TIN: "+tenant.TIN, props.Text{Size: 8, Top: 9}),
		),
	)
	m.AddRow(4, col.New(12))

	amount := func(label string, v decimal.Decimal, bold bool) {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		m.AddRow(6,
			text.NewCol(8, label, props.Text{Size: 9, Style: style}),
			text.NewCol(4, v.StringFixed(2), props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}

	m.AddRow(7, text.NewCol(12, "Part IV-A: Summary", props.Text{Size: 10, Style: fontstyle.Bold}))
	amount("Gross Compensation Income", rec.GrossCompensation, false)
	amount("Less: Total Non-Taxable/Exempt Compensation", rec.NonTaxable, false)
	amount("Taxable Compensation Income", rec.Taxable, false)
	amount("Total Taxes Withheld", rec.WithholdingTax, true)

	m.AddRow(4, col.New(12))
	m.AddRow(7, text.NewCol(12, "Part IV-B: Details of Compensation", props.Text{Size: 10, Style: fontstyle.Bold}))
	amount("13th Month Pay and Other Benefits (exempt)", exempt13th(rec), false)
	amount("De Minimis Benefits", rec.DeMinimis, false)
	amount("SSS, GSIS, PHIC, HDMF Contributions (employee share)", rec.EmployeeContributions(), false)
	amount("13th Month Pay in Excess of Threshold", excess13th(rec), false)
	amount("Taxable Basic Salary", rec.Taxable, false)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render certificate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}
