package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/auth"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/graph"
	"github.com/BruksfildServices01/table-reservations/internal/handlers"
	"github.com/BruksfildServices01/table-reservations/internal/middleware"
	"github.com/BruksfildServices01/table-reservations/internal/ratelimit"
	ucAuditLog "github.com/BruksfildServices01/table-reservations/internal/usecase/auditlog"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
)

type Deps struct {
	Repo        domain.Repository
	Audit       *audit.Dispatcher
	AuditLogs   audit.Store
	Issuer      *auth.Issuer
	Credentials *auth.Credentials
	Limiter     ratelimit.Limiter
	Registry    *prometheus.Registry
	Log         logrus.FieldLogger
}

func RegisterRoutes(r *gin.Engine, d Deps) error {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	metrics := middleware.NewMetrics(d.Registry)

	r.Use(
		middleware.RequestLogger(d.Log),
		metrics.Middleware(),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// USE CASES - RESERVATIONS
	// ======================================================
	uc := graph.UseCases{
		List:         ucReservation.NewListReservations(d.Repo),
		AdminList:    ucReservation.NewListAdminReservations(d.Repo),
		MyList:       ucReservation.NewListMyReservations(d.Repo),
		Get:          ucReservation.NewGetReservation(d.Repo),
		Create:       ucReservation.NewCreateReservation(d.Repo, d.Audit),
		Update:       ucReservation.NewUpdateReservation(d.Repo, d.Audit),
		Cancel:       ucReservation.NewCancelReservation(d.Repo, d.Audit),
		UpdateStatus: ucReservation.NewUpdateReservationStatus(d.Repo, d.Audit),
	}

	schema, err := graph.NewSchema(graph.NewResolver(uc, d.Log))
	if err != nil {
		return err
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.Credentials, d.Issuer, d.Limiter, d.Log)
	healthHandler := handlers.NewHealthHandler(d.Repo)
	graphqlHandler := handlers.NewGraphQLHandler(schema)
	auditLogsHandler := handlers.NewAuditLogsHandler(ucAuditLog.NewListAuditLogs(d.AuditLogs), d.Log)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	r.POST("/auth/login", authHandler.Login)

	gql := r.Group("/graphql")
	gql.Use(middleware.IdentityMiddleware(d.Issuer))
	{
		gql.POST("", graphqlHandler.Serve)
	}

	auditLogs := r.Group("/audit-logs")
	auditLogs.Use(middleware.IdentityMiddleware(d.Issuer))
	{
		auditLogs.GET("", auditLogsHandler.List)
	}

	return nil
}
