package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/openleave/leave-backend-go/internal/config"
	appHTTP "github.com/openleave/leave-backend-go/internal/handler/http"
	"github.com/openleave/leave-backend-go/internal/pkg/database"
	"github.com/openleave/leave-backend-go/internal/pkg/jwt"
	"github.com/openleave/leave-backend-go/internal/pkg/oauth"
	"github.com/openleave/leave-backend-go/internal/pkg/storage"
	"github.com/openleave/leave-backend-go/internal/repository/postgresql"
	authService "github.com/openleave/leave-backend-go/internal/service/auth"
	employeeService "github.com/openleave/leave-backend-go/internal/service/employee"
	"github.com/openleave/leave-backend-go/internal/service/file"
	leaveService "github.com/openleave/leave-backend-go/internal/service/leave"
	"github.com/openleave/leave-backend-go/internal/service/master"
	"github.com/openleave/leave-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	adminRepo := postgresql.NewAdminRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	halfDayRepo := postgresql.NewHalfDayOptionRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	var googleService oauth.GoogleService
	if cfg.GoogleSSOEnabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(adminRepo, employeeRepo, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, db)
	masterSvc := master.NewMasterService(departmentRepo, positionRepo, halfDayRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, fileSvc)
	reportSvc := report.NewReportService()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc, reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		masterHandler,
		leaveHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
