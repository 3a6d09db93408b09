package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	database "github.com/InfiniteSkipper55/expense-tracker/internal/db"
	"github.com/InfiniteSkipper55/expense-tracker/internal/auth"
	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/application"
	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/infrastructure"
	"github.com/InfiniteSkipper55/expense-tracker/internal/finance/interfaces"
	"github.com/InfiniteSkipper55/expense-tracker/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router          *http.ServeMux
	authHandler     *auth.Handler
	authService     *auth.Service
	userHandler     *user.Handler
	categoryHandler *interfaces.CategoryHandler
	expenseHandler  *interfaces.ExpenseHandler
	reportHandler   *interfaces.ReportHandler
	dbService       *database.DBService
}

func NewServer(
	authHandler *auth.Handler,
	authService *auth.Service,
	userHandler *user.Handler,
	categoryHandler *interfaces.CategoryHandler,
	expenseHandler *interfaces.ExpenseHandler,
	reportHandler *interfaces.ReportHandler,
	dbService *database.DBService,
) *Server {
	return &Server{
		authHandler:     authHandler,
		authService:     authService,
		userHandler:     userHandler,
		categoryHandler: categoryHandler,
		expenseHandler:  expenseHandler,
		reportHandler:   reportHandler,
		dbService:       dbService,
		router:          http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (s *Server) handleAdminHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.dbService.Health())
}

func (s *Server) RegisterRoutes() {
	requireAuth := s.authService.RequireAuth()
	requireAdmin := s.authService.RequireAdmin()

	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("POST /api/users/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Authenticated routes
	protectedRoutes := http.NewServeMux()

	// USERS API
	protectedRoutes.Handle("GET /api/users", requireAuth(http.HandlerFunc(s.userHandler.HandleGetAllUsers)))
	protectedRoutes.Handle("GET /api/users/{userID}", requireAuth(http.HandlerFunc(s.userHandler.HandleGetUserByID)))
	protectedRoutes.Handle("DELETE /api/users/{userID}", requireAuth(http.HandlerFunc(s.userHandler.HandleDeleteUser)))

	// CATEGORIES API
	protectedRoutes.Handle("POST /api/categories", requireAuth(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("GET /api/categories", requireAuth(http.HandlerFunc(s.categoryHandler.GetAllCategories)))
	protectedRoutes.Handle("GET /api/categories/{categoryID}", requireAuth(http.HandlerFunc(s.categoryHandler.GetCategoryByID)))
	protectedRoutes.Handle("PUT /api/categories/{categoryID}", requireAuth(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	protectedRoutes.Handle("DELETE /api/categories/{categoryID}", requireAuth(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// EXPENSES API
	protectedRoutes.Handle("POST /api/expenses", requireAuth(http.HandlerFunc(s.expenseHandler.CreateExpense)))
	protectedRoutes.Handle("GET /api/expenses", requireAuth(http.HandlerFunc(s.expenseHandler.GetExpenses)))
	protectedRoutes.Handle("GET /api/expenses/{expenseID}", requireAuth(http.HandlerFunc(s.expenseHandler.GetExpenseByID)))
	protectedRoutes.Handle("PUT /api/expenses/{expenseID}", requireAuth(http.HandlerFunc(s.expenseHandler.UpdateExpense)))
	protectedRoutes.Handle("DELETE /api/expenses/{expenseID}", requireAuth(http.HandlerFunc(s.expenseHandler.DeleteExpense)))

	// REPORTS API
	protectedRoutes.Handle("GET /api/reports/expenses", requireAuth(http.HandlerFunc(s.reportHandler.GetExpenseReport)))
	protectedRoutes.Handle("GET /api/reports/total", requireAuth(http.HandlerFunc(s.reportHandler.GetTotalExpenses)))

	// Admin routes
	adminRoutes := http.NewServeMux()
	adminRoutes.Handle("GET /api/admin/health", requireAdmin(http.HandlerFunc(s.handleAdminHealth)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/auth/", publicRoutes)
	mainRouter.Handle("/api/ready", publicRoutes)
	mainRouter.Handle("/api/users/register", publicRoutes)
	mainRouter.Handle("/api/admin/", adminRoutes)
	mainRouter.Handle("/api/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	credentials, err := auth.LoadCredentialStore()
	if err != nil {
		log.Fatalf("Could not load credential policy: %v", err)
	}
	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(credentials, jwtManager)
	authHandler := auth.NewHandler(authService)

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	expenseRepo := infrastructure.NewExpenseRepository(dbService.DB)
	expenseService := application.NewExpenseService(expenseRepo, userService)
	expenseHandler := interfaces.NewExpenseHandler(expenseService, respondJSON, respondError)

	reportService := application.NewReportService(expenseRepo)
	reportHandler := interfaces.NewReportHandler(reportService, respondJSON, respondError)

	server := NewServer(authHandler, authService, userHandler, categoryHandler, expenseHandler, reportHandler, dbService)
	server.RegisterRoutes()

	handler := loggingMiddleware(server.router)
	log.Println("Server starting on port 8080...")
	if err := http.ListenAndServe(":8080", handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
