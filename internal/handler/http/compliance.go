package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/talentohr/hris-backend-go/internal/domain/company"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	"github.com/talentohr/hris-backend-go/internal/handler/http/middleware"
	"github.com/talentohr/hris-backend-go/internal/handler/http/response"
)

type ComplianceHandler interface {
	ListReports(w http.ResponseWriter, r *http.Request)
	GetPeriods(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)

	// BIR 2316 certificate operations
	GenerateCertificate(w http.ResponseWriter, r *http.Request)
	GenerateCertificateBatch(w http.ResponseWriter, r *http.Request)
	SnapshotCertificates(w http.ResponseWriter, r *http.Request)
}

type complianceHandlerImpl struct {
	agencies  map[report.Agency]report.AgencyService
	bir       report.BIRService
	companies company.Repository
}

func NewComplianceHandler(
	bir report.BIRService,
	sss report.AgencyService,
	philhealth report.AgencyService,
	pagibig report.AgencyService,
	companies company.Repository,
) ComplianceHandler {
	return &complianceHandlerImpl{
		agencies: map[report.Agency]report.AgencyService{
			report.AgencyBIR:        bir,
			report.AgencySSS:        sss,
			report.AgencyPhilHealth: philhealth,
			report.AgencyPagIBIG:    pagibig,
		},
		bir:       bir,
		companies: companies,
	}
}

// tenant resolves the company bound to the access token and builds the
// tenant context printed on report headers and control records.
func (h *complianceHandlerImpl) tenant(r *http.Request) (report.TenantContext, error) {
	companyID, ok := middleware.CompanyID(r)
	if !ok {
		return report.TenantContext{}, company.ErrCompanyNotFound
	}

	comp, err := h.companies.GetByID(r.Context(), companyID)
	if err != nil {
		return report.TenantContext{}, err
	}

	address := ""
	if comp.Address != nil {
		address = *comp.Address
	}
	return report.TenantContext{
		CompanyID:                comp.ID,
		CompanyName:              comp.Name,
		Address:                  address,
		TIN:                      comp.TIN,
		RDOCode:                  comp.RDOCode,
		SSSEmployerNumber:        comp.SSSEmployerNumber,
		PhilHealthEmployerNumber: comp.PhilHealthEmployerNumber,
		PagIBIGEmployerNumber:    comp.PagIBIGEmployerNumber,
	}, nil
}

func (h *complianceHandlerImpl) agency(r *http.Request) (report.AgencyService, error) {
	name := report.Agency(chi.URLParam(r, "agency"))
	svc, ok := h.agencies[name]
	if !ok {
		return nil, report.ErrUnknownReportType
	}
	return svc, nil
}

// parseParams reads the report window parameters from the query string.
func parseParams(r *http.Request) (report.Params, error) {
	q := r.URL.Query()
	var params report.Params
	var err error

	if v := q.Get("year"); v != "" {
		params.Year, err = strconv.Atoi(v)
		if err != nil {
			return params, fmt.Errorf("invalid year parameter")
		}
	}
	if v := q.Get("month"); v != "" {
		params.Month, err = strconv.Atoi(v)
		if err != nil {
			return params, fmt.Errorf("invalid month parameter")
		}
	}
	if v := q.Get("quarter"); v != "" {
		params.Quarter, err = strconv.Atoi(v)
		if err != nil {
			return params, fmt.Errorf("invalid quarter parameter")
		}
	}
	if v := q.Get("start_date"); v != "" {
		params.StartDate, err = time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return params, fmt.Errorf("invalid start_date parameter, expected YYYY-MM-DD")
		}
		if params.Year == 0 {
			params.Year = params.StartDate.Year()
		}
	}
	if v := q.Get("end_date"); v != "" {
		params.EndDate, err = time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return params, fmt.Errorf("invalid end_date parameter, expected YYYY-MM-DD")
		}
	}
	if v := q.Get("department_ids"); v != "" {
		params.DepartmentIDs = strings.Split(v, ",")
	}
	if v := q.Get("limit"); v != "" {
		params.Limit, err = strconv.Atoi(v)
		if err != nil {
			return params, fmt.Errorf("invalid limit parameter")
		}
	}
	params.Schedule = q.Get("schedule")

	return params, nil
}

func writeFile(w http.ResponseWriter, file *report.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}

// ListReports handles GET /compliance/{agency}/reports
func (h *complianceHandlerImpl) ListReports(w http.ResponseWriter, r *http.Request) {
	svc, err := h.agency(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	type reportInfo struct {
		Code      string          `json:"code"`
		Title     string          `json:"title"`
		Formats   []report.Format `json:"formats"`
		Schedules []string        `json:"schedules,omitempty"`
	}

	defs := svc.AvailableReports()
	infos := make([]reportInfo, len(defs))
	for i, d := range defs {
		infos[i] = reportInfo{Code: d.Code, Title: d.Title, Formats: d.Formats, Schedules: d.Schedules}
	}

	response.Success(w, infos)
}

// GetPeriods handles GET /compliance/{agency}/periods
func (h *complianceHandlerImpl) GetPeriods(w http.ResponseWriter, r *http.Request) {
	svc, err := h.agency(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, svc.AvailablePeriods())
}

// Preview handles GET /compliance/{agency}/reports/{code}/preview
func (h *complianceHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	svc, err := h.agency(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	tenant, err := h.tenant(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	params, err := parseParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	preview, err := svc.Preview(ctx, tenant, chi.URLParam(r, "code"), params)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, preview)
}

// Summary handles GET /compliance/{agency}/reports/{code}/summary
func (h *complianceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	svc, err := h.agency(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	tenant, err := h.tenant(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	params, err := parseParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	totals, err := svc.Summary(ctx, tenant, chi.URLParam(r, "code"), params)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, totals)
}

// Generate handles GET /compliance/{agency}/reports/{code}
func (h *complianceHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	svc, err := h.agency(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	tenant, err := h.tenant(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	format, ok := report.ParseFormat(r.URL.Query().Get("format"))
	if !ok {
		response.BadRequest(w, "invalid format parameter", nil)
		return
	}

	params, err := parseParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	file, err := svc.Generate(ctx, tenant, chi.URLParam(r, "code"), format, params)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeFile(w, file)
}

// GenerateCertificate handles GET /compliance/bir/certificates/{employeeID}
func (h *complianceHandlerImpl) GenerateCertificate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenant, err := h.tenant(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	format, ok := report.ParseFormat(r.URL.Query().Get("format"))
	if !ok {
		response.BadRequest(w, "invalid format parameter", nil)
		return
	}

	file, err := h.bir.GenerateCertificate(ctx, tenant, chi.URLParam(r, "employeeID"), year, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeFile(w, file)
}

// GenerateCertificateBatch handles GET /compliance/bir/certificates
func (h *complianceHandlerImpl) GenerateCertificateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenant, err := h.tenant(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	format, ok := report.ParseFormat(r.URL.Query().Get("format"))
	if !ok {
		format = report.FormatExcel
	}

	file, err := h.bir.GenerateCertificateBatch(ctx, tenant, year, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeFile(w, file)
}

// SnapshotCertificates handles POST /compliance/bir/certificates/snapshot
func (h *complianceHandlerImpl) SnapshotCertificates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenant, err := h.tenant(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	generatedBy := ""
	if userID, ok := middleware.UserID(r); ok {
		generatedBy = userID
	}

	count, err := h.bir.SnapshotCertificates(ctx, tenant, year, generatedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "certificate snapshots written", map[string]int{"count": count})
}
