package philhealth

import (
	"github.com/talentohr/hris-backend-go/internal/domain/employee"
	"github.com/talentohr/hris-backend-go/internal/domain/payroll"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
	reportsvc "github.com/talentohr/hris-backend-go/internal/service/report"
)

// Service is the PhilHealth report dispatcher.
type Service struct {
	*reportsvc.Dispatcher
}

func NewService(payrolls payroll.Repository, employees employee.Repository) report.AgencyService {
	return &Service{
		Dispatcher: reportsvc.NewDispatcher(
			NewRemittanceGenerator(payrolls),
			NewNewHireGenerator(employees),
			NewMemberDataGenerator(employees),
		),
	}
}
