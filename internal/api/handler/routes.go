package handler

import (
	"net/http"

	"github.com/vfg2006/ticket-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/ticket-analytics-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

// Analytics expõe as métricas; o escopo efetivo é decidido pelo motor, não pela rota
func Analytics(service analytics.QueryService) []router.Route {
	metricPaths := []struct {
		path   string
		metric domain.Metric
	}{
		{"/v1/analytics/gross-revenue", domain.MetricGrossRevenue},
		{"/v1/analytics/refunds", domain.MetricRefundAmount},
		{"/v1/analytics/net-revenue", domain.MetricNetRevenue},
		{"/v1/analytics/tickets-sold", domain.MetricTicketsSold},
	}

	routes := make([]router.Route, 0, len(metricPaths))
	for _, mp := range metricPaths {
		routes = append(routes, router.Route{
			Path:        mp.path,
			Method:      http.MethodGet,
			Handler:     GetMetric(service, mp.metric),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		})
	}

	return routes
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
