package pagibig

import (
	"github.com/talentohr/hris-backend-go/internal/domain/loan"
	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	reportsvc "github.com/talentohr/hris-backend-go/internal/service/report"
)

// Service is the Pag-IBIG report dispatcher.
type Service struct {
	*reportsvc.Dispatcher
}

func NewService(payrolls payroll.Repository, loans loan.Repository) report.AgencyService {
	return &Service{
		Dispatcher: reportsvc.NewDispatcher(
			NewContributionGenerator(payrolls),
			NewShortTermLoanGenerator(loans),
			NewHousingLoanGenerator(loans),
		),
	}
}
