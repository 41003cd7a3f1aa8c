package response

import (
	"errors"
	"net/http"

	"github.com/talentohr/hris-backend-go/internal/domain/company"
	"github.com/talentohr/hris-backend-go/internal/domain/employee"
	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/talentohr/hris-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Report domain errors
	case errors.Is(err, report.ErrUnknownReportType):
		NotFound(w, "Unknown report type")
	case errors.Is(err, report.ErrUnsupportedExport):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrInvalidSchedule):
		BadRequest(w, "Invalid alphalist schedule", nil)
	case errors.Is(err, report.ErrNoDataFound):
		NotFound(w, "No data found for the specified criteria")
	case errors.Is(err, report.ErrSnapshotNotFound):
		NotFound(w, "Certificate snapshot not found")
	case errors.Is(err, report.ErrEmployeeNotEligible):
		BadRequest(w, "Employee has no statutory ID required by this report", nil)
	case errors.Is(err, report.ErrTemplateNotFound):
		InternalServerError(w, "Official template file not available")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrEntryNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
