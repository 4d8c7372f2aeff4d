package handler

import (
	"net/http"

	"github.com/vfg2006/ads-import-api/internal/api/handler/router"
	"github.com/vfg2006/ads-import-api/internal/config"
	"github.com/vfg2006/ads-import-api/internal/usecases/importing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Imports(service importing.Importer, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/imports",
			Method:  http.MethodPost,
			Handler: ImportFile(service, cfg),
		},
		{
			Path:    "/v1/imports",
			Method:  http.MethodGet,
			Handler: ListImports(service),
		},
		{
			Path:    "/v1/imports/:id",
			Method:  http.MethodGet,
			Handler: GetImport(service),
		},
		{
			Path:    "/v1/imports/:id",
			Method:  http.MethodDelete,
			Handler: DeleteImport(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
