package handlers

import (
	"blogicum/helper"
	"blogicum/logger"
	"blogicum/models"
	"blogicum/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, httpHelper *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: httpHelper}
}

func (h *CommentHandler) ids(c *gin.Context) (postID, commentID uint, ok bool) {
	postID, ok = paramID(c, "id")
	if !ok {
		return 0, 0, false
	}
	if c.Param("cid") == "" {
		return postID, 0, true
	}
	commentID, ok = paramID(c, "cid")
	return postID, commentID, ok
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	postID, _, ok := h.ids(c)
	if !ok {
		h.Helper.SendNotFoundError(c, "post not found", h.Helper.EmptyJsonMap())
		return
	}

	// An unreadable body goes through as an empty form, which is dropped.
	var form models.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Info.Printf("unreadable comment for post %d: %v", postID, err)
		form = models.CommentForm{}
	}

	if _, err := h.commentService.AddComment(c.Request.Context(), requestContext(c), postID, form); err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	h.Helper.Redirect(c, postURL(postID))
}

func (h *CommentHandler) EditForm(c *gin.Context) {
	postID, commentID, ok := h.ids(c)
	if !ok {
		h.Helper.SendNotFoundError(c, "comment not found", h.Helper.EmptyJsonMap())
		return
	}

	comment, err := h.commentService.EditCommentForm(c.Request.Context(), requestContext(c), postID, commentID)
	if err != nil {
		respondError(h.Helper, c, err, postURL(postID))
		return
	}

	h.Helper.SendSuccess(c, "Comment form", comment)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	postID, commentID, ok := h.ids(c)
	if !ok {
		h.Helper.SendNotFoundError(c, "comment not found", h.Helper.EmptyJsonMap())
		return
	}

	var form models.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.SendBadRequest(c, "Invalid comment form", err.Error())
		return
	}

	if _, err := h.commentService.UpdateComment(c.Request.Context(), requestContext(c), postID, commentID, form); err != nil {
		respondError(h.Helper, c, err, postURL(postID))
		return
	}

	h.Helper.Redirect(c, postURL(postID))
}

func (h *CommentHandler) DeleteConfirmation(c *gin.Context) {
	postID, commentID, ok := h.ids(c)
	if !ok {
		h.Helper.SendNotFoundError(c, "comment not found", h.Helper.EmptyJsonMap())
		return
	}

	comment, err := h.commentService.DeleteConfirmation(c.Request.Context(), requestContext(c), postID, commentID)
	if err != nil {
		respondError(h.Helper, c, err, postURL(postID))
		return
	}

	h.Helper.SendSuccess(c, "Confirm deletion", comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	postID, commentID, ok := h.ids(c)
	if !ok {
		h.Helper.SendNotFoundError(c, "comment not found", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), requestContext(c), postID, commentID); err != nil {
		respondError(h.Helper, c, err, postURL(postID))
		return
	}

	h.Helper.Redirect(c, postURL(postID))
}
