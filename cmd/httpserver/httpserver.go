// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/friendbank/friendbank/internal/accountdelivery"
	"github.com/friendbank/friendbank/internal/accountrepo"
	"github.com/friendbank/friendbank/internal/accountservice"
	"github.com/friendbank/friendbank/internal/auditdelivery"
	"github.com/friendbank/friendbank/internal/auditrepo"
	"github.com/friendbank/friendbank/internal/auditservice"
	"github.com/friendbank/friendbank/internal/ledgerdelivery"
	"github.com/friendbank/friendbank/internal/ledgerrepo"
	"github.com/friendbank/friendbank/internal/ledgerservice"
	"github.com/friendbank/friendbank/internal/middleware"
	"github.com/friendbank/friendbank/internal/sessiondelivery"
	"github.com/friendbank/friendbank/internal/sessionrepo"
	"github.com/friendbank/friendbank/internal/sessionservice"
	"github.com/friendbank/friendbank/internal/supplyrepo"
	"github.com/friendbank/friendbank/internal/transactiondelivery"
	"github.com/friendbank/friendbank/internal/transactionrepo"
	"github.com/friendbank/friendbank/internal/transactionservice"
	"github.com/friendbank/friendbank/internal/userdelivery"
	"github.com/friendbank/friendbank/internal/userrepo"
	"github.com/friendbank/friendbank/internal/userservice"
	"github.com/friendbank/friendbank/pkg/configpkg"
	"github.com/friendbank/friendbank/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)
	auditRepo := auditrepo.NewRepoPGS(conn)
	supplyRepo := supplyrepo.NewRepoPGS(conn)
	sessionRepo := sessionrepo.NewRepoPGS(conn)
	ledgerRepo := ledgerrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userService := userservice.New(userRepo)
	accountService := accountservice.New(accountRepo)
	transactionService := transactionservice.New(transactionRepo)
	auditService := auditservice.New(auditRepo, supplyRepo, transactionRepo)
	ledgerService := ledgerservice.New(ledgerRepo)
	sessionService, err := sessionservice.New(sessionRepo, config, tokenMaker)

	if err != nil {
		return nil, errors.New("cannot initialize session service")
	}

	userHandler := userdelivery.NewHandler(userService, sessionService)
	accountHandler := accountdelivery.NewHandler(accountService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)
	auditHandler := auditdelivery.NewHandler(auditService)
	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/login", userHandler.Login)
	engine.POST("/sessions", sessionHandler.RenewAccessToken)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.GET("/accounts", accountHandler.Get)
	authRoutes.GET("/transactions", transactionHandler.List)
	authRoutes.POST("/transfers", ledgerHandler.Transfer)

	accountantRoutes := engine.Group("/").
		Use(middleware.AuthMiddleware(sessionService.TokenMaker)).
		Use(middleware.AccountantOnly())

	accountantRoutes.POST("/deposits", ledgerHandler.Deposit)
	accountantRoutes.POST("/withdrawals", ledgerHandler.Withdraw)
	accountantRoutes.GET("/supply", auditHandler.Supply)
	accountantRoutes.GET("/audit", auditHandler.ListLog)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("amount", ledgerdelivery.ValidAmount)
		if err != nil {
			return nil, errors.New("cannot register amount validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
