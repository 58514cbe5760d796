package main

import (
	"fmt"
	"net/http"

	"github.com/emstack/employee-records-go/internal/config"
	appHTTP "github.com/emstack/employee-records-go/internal/handler/http"
	"github.com/emstack/employee-records-go/internal/pkg/database"
	"github.com/emstack/employee-records-go/internal/pkg/jwt"
	"github.com/emstack/employee-records-go/internal/repository/postgresql"
	authService "github.com/emstack/employee-records-go/internal/service/auth"
	employeeService "github.com/emstack/employee-records-go/internal/service/employee"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(jwtService, authHandler, employeeHandler, cfg.App.FrontendURL, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
