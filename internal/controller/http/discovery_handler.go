package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"velvet/internal/entity"
	"velvet/internal/usecase"
	"velvet/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	defaultRadiusMiles = 25
	minRadiusMiles     = 5
	maxRadiusMiles     = 300
)

type DiscoveryHandler struct {
	discoveryUseCase usecase.DiscoveryUseCase
	locationTimeout  time.Duration
	logger           *logger.Logger
}

func NewDiscoveryHandler(discoveryUseCase usecase.DiscoveryUseCase, locationTimeout time.Duration, logger *logger.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUseCase: discoveryUseCase,
		locationTimeout:  locationTimeout,
		logger:           logger,
	}
}

type DiscoverRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// noFixSource never produces a position; Discover's deadline turns it into
// the fallback path.
type noFixSource struct{}

func (noFixSource) Locate(ctx context.Context) (entity.LatLng, error) {
	<-ctx.Done()
	return entity.LatLng{}, ctx.Err()
}

// Discover godoc
// @Summary      Discover nearby users
// @Description  Radius search around the supplied position; without a position the result degrades to a general sample
// @Tags         discovery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        radius query number false "Radius in miles"
// @Param        request body DiscoverRequest false "Viewer position"
// @Success      200  {object}  entity.DiscoveryResult
// @Router       /discovery [post]
func (h *DiscoveryHandler) Discover(c *gin.Context) {
	var req DiscoverRequest
	_ = c.ShouldBindJSON(&req)

	radius := float64(defaultRadiusMiles)
	if radiusStr := c.Query("radius"); radiusStr != "" {
		if r, err := strconv.ParseFloat(radiusStr, 64); err == nil && r > 0 {
			switch {
			case r < minRadiusMiles:
				radius = minRadiusMiles
			case r > maxRadiusMiles:
				radius = maxRadiusMiles
			default:
				radius = r
			}
		}
	}

	var source usecase.LocationSource = noFixSource{}
	if req.Latitude != nil && req.Longitude != nil {
		source = usecase.LatLngSource{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.locationTimeout)
	defer cancel()

	result, err := h.discoveryUseCase.Discover(ctx, c.GetString("user_id"), source, radius)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type LocationUpdateRequest struct {
	Latitude  float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

// UpdateLocation godoc
// @Summary      Update own location
// @Tags         discovery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body LocationUpdateRequest true "Position"
// @Success      200  {object}  map[string]string
// @Router       /discovery/location [put]
func (h *DiscoveryHandler) UpdateLocation(c *gin.Context) {
	var req LocationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.discoveryUseCase.UpdateLocation(c.Request.Context(), c.GetString("user_id"), req.Latitude, req.Longitude)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "location updated"})
}
