package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Kedza01/Test-AI/internal/models"
	"github.com/Kedza01/Test-AI/internal/services"
)

// HotspotController serves the read-only cluster and station data the
// map and report generators consume.
type HotspotController struct {
	forecast services.ForecastService
}

func NewHotspotController(forecast services.ForecastService) *HotspotController {
	return &HotspotController{forecast: forecast}
}

func (ctr *HotspotController) Register(g *echo.Group) {
	g.GET("/hotspots", ctr.ListHotspots)
	g.GET("/locations/:key/stations", ctr.ListStations)
	g.GET("/locations/:key/cluster", ctr.LocationCluster)
}

func (ctr *HotspotController) ListHotspots(c echo.Context) error {
	hotspots, err := ctr.forecast.Hotspots()
	if errors.Is(err, services.ErrModelNotTrained) {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, hotspots)
}

func (ctr *HotspotController) LocationCluster(c echo.Context) error {
	key := models.NormalizeLocationKey(c.Param("key"))
	id, ok, err := ctr.forecast.ClusterForLocation(key)
	if errors.Is(err, services.ErrModelNotTrained) {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{"location": key, "cluster": services.NoLocalCluster})
	}
	return c.JSON(http.StatusOK, map[string]any{"location": key, "cluster": id})
}

func (ctr *HotspotController) ListStations(c echo.Context) error {
	key := models.NormalizeLocationKey(c.Param("key"))

	var lat, lon *float64
	maxKm := 50.0
	if v := c.QueryParam("lat"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid lat"})
		}
		lat = &f
	}
	if v := c.QueryParam("lon"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid lon"})
		}
		lon = &f
	}
	if v := c.QueryParam("max_km"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid max_km"})
		}
		maxKm = f
	}

	return c.JSON(http.StatusOK, models.NearbyStations(key, lat, lon, maxKm))
}
