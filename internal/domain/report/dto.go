package report

import (
	"fmt"
	"time"

	"github.com/talentohr/hris-backend-go/internal/pkg/validator"
)

// Granularity enum - the reporting window shape a form requires.
type Granularity int

const (
	GranularityMonthly Granularity = iota
	GranularityQuarterly
	GranularityAnnual
	GranularityDateRange
)

// TenantContext identifies the company a report is generated for, together
// with the profile fields printed on report headers. It is built once at the
// edge (from JWT claims plus the company profile) and threaded explicitly into
// every generator and service call.
type TenantContext struct {
	CompanyID                string
	CompanyName              string
	Address                  string
	TIN                      string
	RDOCode                  string
	SSSEmployerNumber        string
	PhilHealthEmployerNumber string
	PagIBIGEmployerNumber    string
}

// Params are the caller-supplied parameters of one report invocation. Year is
// always required; exactly one of Month, Quarter, or StartDate/EndDate is set,
// depending on the form's granularity.
type Params struct {
	Year          int
	Month         int
	Quarter       int
	StartDate     time.Time
	EndDate       time.Time
	DepartmentIDs []string
	Limit         int
	Schedule      string
}

func (p Params) Validate(g Granularity) error {
	var errs validator.ValidationErrors

	currentYear := time.Now().Year()
	if p.Year < 2000 || p.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2000 and %d", currentYear+1),
		})
	}

	switch g {
	case GranularityMonthly:
		if p.Month < 1 || p.Month > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		}
	case GranularityQuarterly:
		if p.Quarter < 1 || p.Quarter > 4 {
			errs = append(errs, validator.ValidationError{
				Field:   "quarter",
				Message: "quarter must be between 1 and 4",
			})
		}
	case GranularityDateRange:
		if p.StartDate.IsZero() {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date is required",
			})
		}
		if p.EndDate.IsZero() {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date is required",
			})
		}
		if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.StartDate.After(p.EndDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be after start_date",
			})
		}
	}

	for _, id := range p.DepartmentIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "department_ids",
				Message: fmt.Sprintf("%q is not a valid department id", id),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Window returns the inclusive date range covered by the parameters.
func (p Params) Window(g Granularity) (time.Time, time.Time) {
	switch g {
	case GranularityMonthly:
		start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.Local)
		return start, start.AddDate(0, 1, -1)
	case GranularityQuarterly:
		start := time.Date(p.Year, time.Month((p.Quarter-1)*3+1), 1, 0, 0, 0, 0, time.Local)
		return start, start.AddDate(0, 3, -1)
	case GranularityDateRange:
		return p.StartDate, p.EndDate
	}
	start := time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(1, 0, -1)
}

// PeriodLabel returns the human-readable period line for report headers.
func (p Params) PeriodLabel(g Granularity) string {
	switch g {
	case GranularityMonthly:
		return fmt.Sprintf("For the month of %s %d", time.Month(p.Month).String(), p.Year)
	case GranularityQuarterly:
		return fmt.Sprintf("For the %s quarter of %d", ordinal(p.Quarter), p.Year)
	case GranularityDateRange:
		return fmt.Sprintf("From %s to %s", p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"))
	}
	return fmt.Sprintf("For calendar year %d", p.Year)
}

// PeriodSlug returns the period encoding used in generated filenames:
// YYYY, YYYY-MM, YYYY-Qn, or <start>_to_<end>.
func (p Params) PeriodSlug(g Granularity) string {
	switch g {
	case GranularityMonthly:
		return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	case GranularityQuarterly:
		return fmt.Sprintf("%04d-Q%d", p.Year, p.Quarter)
	case GranularityDateRange:
		return p.StartDate.Format("2006-01-02") + "_to_" + p.EndDate.Format("2006-01-02")
	}
	return fmt.Sprintf("%04d", p.Year)
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return fmt.Sprintf("%dth", n)
}

// Preview is the bounded dataset returned for UI display.
type Preview struct {
	Code        string   `json:"code"`
	Title       string   `json:"title"`
	PeriodLabel string   `json:"period_label"`
	GeneratedAt string   `json:"generated_at"`
	Headers     []string `json:"headers"`
	Rows        []Row    `json:"rows"`
	Totals      Totals   `json:"totals"`
	TotalRows   int      `json:"total_rows"`
}

// AvailablePeriods is static metadata listing the periods the UI may request.
type AvailablePeriods struct {
	Years    []int `json:"years"`
	Months   []int `json:"months"`
	Quarters []int `json:"quarters"`
}
