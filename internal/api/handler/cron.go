package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-pilot-api/internal/scheduler"
	"github.com/vfg2006/profit-pilot-api/pkg/apiErrors"
)

const (
	CronJobTypeInsights = "insights"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	InsightRefreshService scheduler.Job
}

func (s CronJobServices) jobs() map[string]scheduler.Job {
	jobs := map[string]scheduler.Job{}
	if s.InsightRefreshService != nil {
		jobs[CronJobTypeInsights] = s.InsightRefreshService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		jobs := services.jobs()

		var selected map[string]scheduler.Job
		switch cronType {
		case CronJobTypeAll:
			selected = jobs
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: insights, all", nil)
				return
			}
			selected = map[string]scheduler.Job{cronType: job}
		}

		started := map[string]bool{}
		for name, job := range selected {
			started[name] = job.TriggerManualSync()
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
