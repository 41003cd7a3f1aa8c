package bir

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	reportsvc "github.com/talentohr/hris-backend-go/internal/service/report"
	"github.com/talentohr/hris-backend-go/internal/service/report/aggregate"
)

const certificateCode = "2316"

// Service is the BIR report dispatcher plus the 2316 certificate operations.
type Service struct {
	*reportsvc.Dispatcher
	payrolls payroll.Repository
	certs    report.CertificateRepository
	filler   *TemplateFiller
}

func NewService(payrolls payroll.Repository, certs report.CertificateRepository, filler *TemplateFiller) report.BIRService {
	return &Service{
		Dispatcher: reportsvc.NewDispatcher(
			NewMonthlyRemittanceGenerator(payrolls),
			NewAnnualReturnGenerator(payrolls),
			NewAlphalistGenerator(payrolls),
		),
		payrolls: payrolls,
		certs:    certs,
		filler:   filler,
	}
}

// annualRecords aggregates the tax year for every employee with a TIN.
func (s *Service) annualRecords(ctx context.Context, tenant report.TenantContext, year int) ([]report.AggregatedEmployeeRecord, error) {
	params := report.Params{Year: year}
	if err := params.Validate(report.GranularityAnnual); err != nil {
		return nil, err
	}

	start, end := params.Window(report.GranularityAnnual)
	entries, err := s.payrolls.ListForWindow(ctx, tenant.CompanyID, start, end, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll data: %w", err)
	}

	recs := aggregate.PayrollEntries(entries)
	return aggregate.RequireID(recs, func(r report.AggregatedEmployeeRecord) string { return r.TIN }), nil
}

// GenerateCertificate fills the official template for one employee, as Excel
// or as an A4 portrait PDF.
func (s *Service) GenerateCertificate(ctx context.Context, tenant report.TenantContext, employeeID string, year int, format report.Format) (*report.File, error) {
	recs, err := s.annualRecords(ctx, tenant, year)
	if err != nil {
		return nil, err
	}

	var rec *report.AggregatedEmployeeRecord
	for i := range recs {
		if recs[i].EmployeeID == employeeID {
			rec = &recs[i]
			break
		}
	}
	if rec == nil {
		return nil, report.ErrEmployeeNotEligible
	}

	name := fmt.Sprintf("bir_%s_%04d_%s", certificateCode, year, SanitizeSheetName(rec.LastName+"_"+rec.FirstName))

	switch format {
	case report.FormatExcel:
		f, err := s.filler.Single(tenant, *rec, year)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		var buf bytes.Buffer
		if _, err := f.WriteTo(&buf); err != nil {
			return nil, fmt.Errorf("write certificate workbook: %w", err)
		}
		return &report.File{
			Content:     buf.Bytes(),
			Name:        name + ".xlsx",
			ContentType: report.FormatExcel.ContentType(),
		}, nil

	case report.FormatPDF:
		content, err := certificatePDF(tenant, *rec, year)
		if err != nil {
			return nil, err
		}
		return &report.File{
			Content:     content,
			Name:        name + ".pdf",
			ContentType: report.FormatPDF.ContentType(),
		}, nil
	}

	return nil, &report.UnsupportedExportError{Code: certificateCode, Format: format}
}

// GenerateCertificateBatch produces one workbook with one sheet per eligible
// employee. Multi-sheet PDF rendering is out of scope, so batch PDF is
// rejected outright instead of silently returning one employee's
// certificate.
func (s *Service) GenerateCertificateBatch(ctx context.Context, tenant report.TenantContext, year int, format report.Format) (*report.File, error) {
	if format != report.FormatExcel {
		return nil, &report.UnsupportedExportError{Code: certificateCode, Format: format}
	}

	recs, err := s.annualRecords(ctx, tenant, year)
	if err != nil {
		return nil, err
	}

	f, err := s.filler.Batch(tenant, recs, year)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write batch workbook: %w", err)
	}
	return &report.File{
		Content:     buf.Bytes(),
		Name:        fmt.Sprintf("bir_%s_%04d.xlsx", certificateCode, year),
		ContentType: report.FormatExcel.ContentType(),
	}, nil
}

// SnapshotCertificates upserts one snapshot per eligible employee,
// sequentially and without a transaction boundary. A mid-batch failure keeps
// prior upserts and aborts the rest; each upsert is idempotent, so the call
// is safely re-runnable.
func (s *Service) SnapshotCertificates(ctx context.Context, tenant report.TenantContext, year int, generatedBy string) (int, error) {
	recs, err := s.annualRecords(ctx, tenant, year)
	if err != nil {
		return 0, err
	}

	written := 0
	now := time.Now()
	for _, rec := range recs {
		snap := &report.CertificateSnapshot{
			ID:                 uuid.NewString(),
			CompanyID:          tenant.CompanyID,
			EmployeeID:         rec.EmployeeID,
			TaxYear:            year,
			GrossCompensation:  rec.GrossCompensation,
			NonTaxable:         rec.NonTaxable,
			Taxable:            rec.Taxable,
			WithholdingTax:     rec.WithholdingTax,
			ThirteenthMonth:    rec.ThirteenthMonth,
			DeMinimis:          rec.DeMinimis,
			SSSEmployee:        rec.SSSEmployee,
			PhilHealthEmployee: rec.PhilHealthEmployee,
			PagIBIGEmployee:    rec.PagIBIGEmployee,
			GeneratedAt:        now,
			GeneratedBy:        generatedBy,
		}
		if err := s.certs.Upsert(ctx, snap); err != nil {
			return written, fmt.Errorf("snapshot employee %s: %w", rec.EmployeeID, err)
		}
		written++
	}
	return written, nil
}
