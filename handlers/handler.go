package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"blogicum/helper"
	"blogicum/logger"
	"blogicum/models"
	"blogicum/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

// Now is the clock used for visibility checks. Tests pin it.
var Now = time.Now

func requestContext(c *gin.Context) services.RequestContext {
	rc := services.RequestContext{Now: Now()}
	if userID, exists := c.Get("user_id"); exists {
		rc.UserID, _ = userID.(uint)
	}
	return rc
}

// paramID parses a numeric path parameter. Anything else addresses no
// record at all.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func postURL(id uint) string {
	return fmt.Sprintf("/posts/%d/", id)
}

func profileURL(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}

func listing(h *helper.HTTPHelper, c *gin.Context, page models.Page) gin.H {
	return gin.H{
		"page_obj": page,
		"paging":   h.GeneratePaging(c, page),
	}
}

// respondError writes the response for a failed workflow. Ownership
// failures redirect to fallback when one is given.
func respondError(h *helper.HTTPHelper, c *gin.Context, err error, fallback string) {
	var (
		validationErrors validator.ValidationErrors
		forbidden        models.ErrorForbidden
	)
	switch {
	case errors.As(err, &validationErrors):
		h.SendValidationError(c, validationErrors)
	case errors.As(err, &forbidden) && fallback != "":
		logger.Info.Printf("%s %s by user %v: %s", c.Request.Method, c.Request.URL.Path, c.Value("user_id"), forbidden.Message)
		h.Redirect(c, fallback)
	default:
		h.SendServiceError(c, err)
	}
}
