package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Kedza01/Test-AI/internal/models"
	"github.com/Kedza01/Test-AI/internal/services"
)

// targetLayout is the minute-granularity format the desktop UI sends.
const targetLayout = "2006-01-02 15:04"

// PredictionController runs the full prediction request: quota check
// first, then the forecast, then increment and the audit/history
// appends. A quota denial is a normal outcome, not an error.
type PredictionController struct {
	auth     services.AuthService
	quota    services.QuotaService
	forecast services.ForecastService
	audit    services.AuditService
}

func NewPredictionController(auth services.AuthService, quota services.QuotaService, forecast services.ForecastService, audit services.AuditService) *PredictionController {
	return &PredictionController{auth: auth, quota: quota, forecast: forecast, audit: audit}
}

func (ctr *PredictionController) Register(g *echo.Group) {
	g.POST("/predictions", ctr.Predict)
}

type predictResponse struct {
	Forecast  *models.Forecast       `json:"forecast"`
	Profile   models.LocationProfile `json:"profile"`
	Hotspot   string                 `json:"hotspot"`
	Stations  []models.Station       `json:"stations"`
	Remaining int                    `json:"remaining"`
}

func (ctr *PredictionController) Predict(c echo.Context) error {
	req := new(models.PredictRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.UserID == 0 || req.Location == "" || req.Target == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id, location and target are required"})
	}

	target, err := parseTarget(req.Target)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()
	user, err := ctr.auth.GetUser(ctx, req.UserID)
	if errors.Is(err, services.ErrUserNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	// Quota gate runs before any model work; on denial nothing is
	// incremented and no audit or history rows are written.
	allowed, remaining, err := ctr.quota.CheckAndReserve(ctx, user.ID, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if !allowed {
		return ctr.quotaDenied(c)
	}

	forecast, err := ctr.forecast.Predict(ctx, req.Location, target)
	if errors.Is(err, services.ErrModelNotTrained) {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	// Increment is the authoritative gate: a concurrent request that
	// slipped past the advisory check together with this one is denied
	// here.
	if err := ctr.quota.Increment(ctx, user.ID, user.Role); err != nil {
		if errors.Is(err, services.ErrQuotaExhausted) {
			return ctr.quotaDenied(c)
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	crimes := make([]string, len(forecast.RankedCrimes))
	for i, rc := range forecast.RankedCrimes {
		crimes[i] = rc.CrimeType
	}
	if err := ctr.audit.Append(ctx, user.ID, user.Username, "PREDICTION", "forecast for "+forecast.LocationKey); err != nil {
		c.Logger().Warnf("audit append failed: %v", err)
	}
	if err := ctr.audit.RecordPrediction(ctx, user.ID, user.Username, forecast.LocationKey, crimes); err != nil {
		c.Logger().Warnf("prediction history append failed: %v", err)
	}

	// read-side joins for the rendered report
	profile := models.ProfileFor(forecast.LocationKey)
	hotspot := services.NoLocalCluster
	if id, ok, err := ctr.forecast.ClusterForLocation(forecast.LocationKey); err == nil && ok {
		hotspot = fmt.Sprintf("Hotspot %d", id)
	}
	stations := models.NearbyStations(forecast.LocationKey, nil, nil, 0)

	if remaining != services.UnlimitedRemaining {
		remaining--
	}
	return c.JSON(http.StatusOK, predictResponse{
		Forecast:  forecast,
		Profile:   profile,
		Hotspot:   hotspot,
		Stations:  stations,
		Remaining: remaining,
	})
}

// quotaDenied renders the denial outcome. A denial is a normal result,
// not an error: nothing has been incremented or logged.
func (ctr *PredictionController) quotaDenied(c echo.Context) error {
	quota, err := ctr.quota.DailyQuota(c.Request().Context())
	if err != nil {
		quota = services.DefaultDailyQuota
	}
	nextReset := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	return c.JSON(http.StatusTooManyRequests, map[string]any{
		"error":      fmt.Sprintf("daily prediction quota of %d exhausted", quota),
		"remaining":  0,
		"next_reset": nextReset,
	})
}

func parseTarget(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(targetLayout, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("target must be %q or RFC3339, got %q", targetLayout, raw)
}
