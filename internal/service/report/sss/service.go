package sss

import (
	"context"

	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	reportsvc "github.com/talentohr/hris-backend-go/internal/service/report"
)

// Service is the SSS report dispatcher.
type Service struct {
	*reportsvc.Dispatcher
}

func NewService(payrolls payroll.Repository) report.AgencyService {
	return &Service{
		Dispatcher: reportsvc.NewDispatcher(
			NewContributionListGenerator(payrolls),
			NewRemittanceReturnGenerator(payrolls),
			NewBankReceiptGenerator(payrolls),
			NewCollectionListGenerator(payrolls),
		),
	}
}

// Generate routes to the dispatcher, except that the collection list is a
// bank-mandated positional .txt file no matter which text format name the
// caller asked for.
func (s *Service) Generate(ctx context.Context, tenant report.TenantContext, code string, format report.Format, params report.Params) (*report.File, error) {
	if code == "ecl" && (format == report.FormatCSV || format == report.FormatFixedWidth) {
		format = report.FormatFixedWidth
	}
	return s.Dispatcher.Generate(ctx, tenant, code, format, params)
}
