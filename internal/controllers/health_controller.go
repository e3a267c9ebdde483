package controllers

import (
	"context"
	"net/http"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/dtos"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/utils"
)

// Pinger reports whether the backing store is reachable. *pgxpool.Pool
// satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{
		db: db,
	}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	// Check database connectivity
	if err := c.db.Ping(context.Background()); err != nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "Database unreachable", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{
		Status: "OK",
	})
}
