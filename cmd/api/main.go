package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/talentohr/hris-backend-go/internal/config"
	appHTTP "github.com/talentohr/hris-backend-go/internal/handler/http"
	"github.com/talentohr/hris-backend-go/internal/pkg/database"
	"github.com/talentohr/hris-backend-go/internal/pkg/jwt"
	"github.com/talentohr/hris-backend-go/internal/repository/postgresql"
	"github.com/talentohr/hris-backend-go/internal/service/report/bir"
	"github.com/talentohr/hris-backend-go/internal/service/report/pagibig"
	"github.com/talentohr/hris-backend-go/internal/service/report/philhealth"
	"github.com/talentohr/hris-backend-go/internal/service/report/sss"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	certificateRepo := postgresql.NewCertificateRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	templateFiller, err := bir.NewTemplateFiller(cfg.Compliance.BIR2316TemplatePath)
	if err != nil {
		log.Fatal("Failed to load BIR 2316 template:", err)
	}

	birService := bir.NewService(payrollRepo, certificateRepo, templateFiller)
	sssService := sss.NewService(payrollRepo)
	philhealthService := philhealth.NewService(payrollRepo, employeeRepo)
	pagibigService := pagibig.NewService(payrollRepo, loanRepo)

	complianceHandler := appHTTP.NewComplianceHandler(
		birService,
		sssService,
		philhealthService,
		pagibigService,
		companyRepo,
	)

	router := appHTTP.NewRouter(JWTService, complianceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
