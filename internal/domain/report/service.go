package report

import "context"

// AgencyService is the per-agency dispatcher: it resolves a report code to a
// concrete generator and exposes the preview, summary, and generate
// operations over it.
type AgencyService interface {
	// AvailableReports lists the forms this agency service can produce.
	AvailableReports() []Definition

	// AvailablePeriods returns static period metadata for the UI.
	AvailablePeriods() AvailablePeriods

	// Preview returns rows bounded by params.Limit plus full totals.
	Preview(ctx context.Context, tenant TenantContext, code string, params Params) (*Preview, error)

	// Summary returns only the control totals.
	Summary(ctx context.Context, tenant TenantContext, code string, params Params) (*Totals, error)

	// Generate runs the full pipeline and serializes into the requested
	// format. Returns ErrUnknownReportType or ErrUnsupportedExport.
	Generate(ctx context.Context, tenant TenantContext, code string, format Format, params Params) (*File, error)
}

// BIRService adds the 2316 certificate operations on top of the common
// dispatcher surface.
type BIRService interface {
	AgencyService

	// GenerateCertificate fills the official 2316 template for one employee.
	// Supported formats: excel, pdf.
	GenerateCertificate(ctx context.Context, tenant TenantContext, employeeID string, year int, format Format) (*File, error)

	// GenerateCertificateBatch produces one workbook with one filled sheet
	// per eligible employee. Excel only; batch PDF is not supported.
	GenerateCertificateBatch(ctx context.Context, tenant TenantContext, year int, format Format) (*File, error)

	// SnapshotCertificates upserts a certificate snapshot for every eligible
	// employee of the tax year. Sequential and non-atomic: a failure aborts
	// the remainder but keeps prior upserts; the call is safely re-runnable.
	// Returns the number of snapshots written.
	SnapshotCertificates(ctx context.Context, tenant TenantContext, year int, generatedBy string) (int, error)
}
