package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/staffhub-dev/hrm-backend-go/internal/config"
	appHTTP "github.com/staffhub-dev/hrm-backend-go/internal/handler/http"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/database"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/jwt"
	"github.com/staffhub-dev/hrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub-dev/hrm-backend-go/internal/service/attendance"
	authService "github.com/staffhub-dev/hrm-backend-go/internal/service/auth"
	departmentService "github.com/staffhub-dev/hrm-backend-go/internal/service/department"
	employeeService "github.com/staffhub-dev/hrm-backend-go/internal/service/employee"
	leaveService "github.com/staffhub-dev/hrm-backend-go/internal/service/leave"
	payrollService "github.com/staffhub-dev/hrm-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtService, refreshTokenRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		departmentHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
