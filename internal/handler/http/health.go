package http

import (
	"net/http"
	"time"

	"github.com/greenjets/bladerunner-portal/internal/utils"
	"github.com/greenjets/bladerunner-portal/models"
)

// health reports process liveness plus the most recent database probe
// snapshot. The endpoint itself never touches the database, so it stays fast
// and usable for load-balancer checks even during an outage.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	report := models.Health{
		Status:      "ok",
		Environment: h.cfg.App.Environment,
		Timestamp:   time.Now().UTC(),
	}

	status := http.StatusOK
	if h.dbHealth != nil {
		report.Database = h.dbHealth.Snapshot()
		if !report.Database.Connected {
			report.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
	}

	utils.WriteJSON(w, report, status)
}
