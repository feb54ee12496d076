package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	activationdomain "github.com/smallbiznis/billpoint/internal/activation/domain"
	auditdomain "github.com/smallbiznis/billpoint/internal/audit/domain"
	"github.com/smallbiznis/billpoint/internal/auth"
	"github.com/smallbiznis/billpoint/internal/authorization"
	"github.com/smallbiznis/billpoint/internal/clock"
	"github.com/smallbiznis/billpoint/internal/config"
	historydomain "github.com/smallbiznis/billpoint/internal/history/domain"
	"github.com/smallbiznis/billpoint/internal/observability/logger"
	paymentdomain "github.com/smallbiznis/billpoint/internal/payment/domain"
	receiptdomain "github.com/smallbiznis/billpoint/internal/receipt/domain"
	settingsdomain "github.com/smallbiznis/billpoint/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Config        config.Config
	DB            *gorm.DB
	Log           *zap.Logger
	Clock         clock.Clock
	AuthSvc       auth.Service
	AuthzSvc      authorization.Service
	AuditSvc      auditdomain.Service       `optional:"true"`
	PaymentSvc    paymentdomain.Service
	HistorySvc    historydomain.Service
	SettingsSvc   settingsdomain.Service
	ReceiptSvc    receiptdomain.Service
	ActivationSvc activationdomain.Service
}

type Server struct {
	cfg           config.Config
	db            *gorm.DB
	log           *zap.Logger
	clock         clock.Clock
	engine        *gin.Engine
	loginLimiter  *loginThrottle
	authSvc       auth.Service
	authzSvc      authorization.Service
	auditSvc      auditdomain.Service
	paymentSvc    paymentdomain.Service
	historySvc    historydomain.Service
	settingsSvc   settingsdomain.Service
	receiptSvc    receiptdomain.Service
	activationSvc activationdomain.Service
}

func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		SkipPaths: []string{"/healthz"},
	}))
	return engine
}

func NewServer(p Params, engine *gin.Engine) *Server {
	return &Server{
		cfg:           p.Config,
		db:            p.DB,
		log:           p.Log.Named("server"),
		clock:         p.Clock,
		engine:        engine,
		loginLimiter:  newLoginThrottle(10, time.Minute),
		authSvc:       p.AuthSvc,
		authzSvc:      p.AuthzSvc,
		auditSvc:      p.AuditSvc,
		paymentSvc:    p.PaymentSvc,
		historySvc:    p.HistorySvc,
		settingsSvc:   p.SettingsSvc,
		receiptSvc:    p.ReceiptSvc,
		activationSvc: p.ActivationSvc,
	}
}

func (s *Server) RegisterRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	api.POST("/auth/login", s.Login)

	authed := api.Group("")
	authed.Use(s.SessionRequired())
	{
		authed.POST("/auth/logout", s.Logout)
		authed.GET("/auth/me", s.CurrentOperator)

		authed.POST("/payments/draft", s.CreatePaymentDraft)
		authed.POST("/payments/confirm", s.ConfirmPayment)
		authed.GET("/payments", s.ListPayments)
		authed.GET("/payments/:id", s.GetPayment)
		authed.POST("/payments/:id/mark-paid", s.MarkPaymentPaid)
		authed.DELETE("/payments", s.DeletePayments)
		authed.GET("/payments/:id/receipt", s.RenderReceipt)
		authed.GET("/customers/lookup", s.LookupCustomer)

		authed.GET("/history/report", s.HistoryReport)
		authed.GET("/history/export", s.ExportHistoryCSV)
		authed.GET("/dashboard/today", s.TodayDashboard)

		authed.GET("/settings", s.GetSettings)
		authed.PUT("/settings", s.SaveSettings)

		authed.GET("/activation/status", s.ActivationStatus)
		authed.POST("/activation/activate", s.Activate)

		authed.GET("/audit", s.ListAuditLogs)
	}

	if !s.cfg.IsProduction() {
		api.POST("/test/cleanup", s.TestCleanup)
	}
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTP.Addr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.log.Info("http server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
