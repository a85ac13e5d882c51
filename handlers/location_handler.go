package handlers

import (
	"blogicum/helper"
	"blogicum/models"
	"blogicum/services"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locationService services.LocationService
	Helper          *helper.HTTPHelper
}

func NewLocationHandler(locationService services.LocationService, httpHelper *helper.HTTPHelper) *LocationHandler {
	return &LocationHandler{locationService: locationService, Helper: httpHelper}
}

func (h *LocationHandler) GetLocations(c *gin.Context) {
	locations, err := h.locationService.GetLocations(c.Request.Context(), false)
	if err != nil {
		h.Helper.SendInternalError(c, err)
		return
	}
	if locations == nil {
		locations = []models.Location{}
	}

	h.Helper.SendSuccess(c, "Locations loaded", locations)
}

func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req models.LocationRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	location, err := h.locationService.CreateLocation(c.Request.Context(), req)
	if err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	h.Helper.SendSuccess(c, "Location created", location)
}

func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.Helper.SendNotFoundError(c, "location not found", h.Helper.EmptyJsonMap())
		return
	}

	var req models.LocationRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	location, err := h.locationService.UpdateLocation(c.Request.Context(), id, req)
	if err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	h.Helper.SendSuccess(c, "Location updated", location)
}

func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.Helper.SendNotFoundError(c, "location not found", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.locationService.DeleteLocation(c.Request.Context(), id); err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	h.Helper.SendSuccess(c, "Location deleted", h.Helper.EmptyJsonMap())
}
