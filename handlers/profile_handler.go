package handlers

import (
	"blogicum/helper"
	"blogicum/models"
	"blogicum/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService services.ProfileService
	Helper         *helper.HTTPHelper
}

func NewProfileHandler(profileService services.ProfileService, httpHelper *helper.HTTPHelper) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, Helper: httpHelper}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	result, err := h.profileService.GetProfile(c.Request.Context(), requestContext(c), c.Param("username"), helper.PageNumber(c))
	if err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	data := listing(h.Helper, c, result.Page)
	data["profile"] = result.Profile
	data["is_owner"] = result.IsOwner
	h.Helper.SendSuccess(c, "Profile loaded", data)
}

func (h *ProfileHandler) EditForm(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.profileService.EditProfileForm(c.Request.Context(), requestContext(c), username)
	if err != nil {
		respondError(h.Helper, c, err, profileURL(username))
		return
	}

	h.Helper.SendSuccess(c, "Profile form", profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	username := c.Param("username")

	var form models.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.SendBadRequest(c, "Invalid profile form", err.Error())
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), requestContext(c), username, form)
	if err != nil {
		respondError(h.Helper, c, err, profileURL(username))
		return
	}

	h.Helper.Redirect(c, profileURL(profile.Username))
}
