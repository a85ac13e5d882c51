package handlers

import (
	"blogicum/helper"
	"blogicum/models"
	"blogicum/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
	Helper      *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, httpHelper *helper.HTTPHelper) *PostHandler {
	return &PostHandler{postService: postService, Helper: httpHelper}
}

func (h *PostHandler) Index(c *gin.Context) {
	page, err := h.postService.ListPublic(c.Request.Context(), requestContext(c), helper.PageNumber(c))
	if err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	h.Helper.SendSuccess(c, "Posts loaded", listing(h.Helper, c, page))
}

func (h *PostHandler) CategoryPosts(c *gin.Context) {
	result, err := h.postService.ListByCategory(c.Request.Context(), requestContext(c), c.Param("slug"), helper.PageNumber(c))
	if err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	data := listing(h.Helper, c, result.Page)
	data["category"] = result.Category
	h.Helper.SendSuccess(c, "Category loaded", data)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.Helper.SendNotFoundError(c, "post not found", h.Helper.EmptyJsonMap())
		return
	}

	detail, err := h.postService.GetPost(c.Request.Context(), requestContext(c), id)
	if err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	h.Helper.SendSuccess(c, "Post loaded", detail)
}

func (h *PostHandler) CreateForm(c *gin.Context) {
	view, err := h.postService.NewPostForm(c.Request.Context(), requestContext(c))
	if err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	h.Helper.SendSuccess(c, "Post form", view)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), requestContext(c), form)
	if err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	h.Helper.Redirect(c, profileURL(post.Author.Username))
}

func (h *PostHandler) EditForm(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.Helper.SendNotFoundError(c, "post not found", h.Helper.EmptyJsonMap())
		return
	}

	view, err := h.postService.EditPostForm(c.Request.Context(), requestContext(c), id)
	if err != nil {
		respondError(h.Helper, c, err, postURL(id))
		return
	}

	h.Helper.SendSuccess(c, "Post form", view)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.Helper.SendNotFoundError(c, "post not found", h.Helper.EmptyJsonMap())
		return
	}

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		// A non-owner is redirected whatever the body looks like.
		if _, ownErr := h.postService.EditPostForm(c.Request.Context(), requestContext(c), id); ownErr != nil {
			respondError(h.Helper, c, ownErr, postURL(id))
			return
		}
		h.Helper.SendBadRequest(c, "Invalid post form", err.Error())
		return
	}
	clearZeroRefs(&form)

	post, err := h.postService.UpdatePost(c.Request.Context(), requestContext(c), id, form)
	if err != nil {
		respondError(h.Helper, c, err, postURL(id))
		return
	}

	h.Helper.Redirect(c, postURL(post.ID))
}

func (h *PostHandler) DeleteConfirmation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.Helper.SendNotFoundError(c, "post not found", h.Helper.EmptyJsonMap())
		return
	}

	post, err := h.postService.DeleteConfirmation(c.Request.Context(), requestContext(c), id)
	if err != nil {
		respondError(h.Helper, c, err, postURL(id))
		return
	}

	h.Helper.SendSuccess(c, "Confirm deletion", post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.Helper.SendNotFoundError(c, "post not found", h.Helper.EmptyJsonMap())
		return
	}

	post, err := h.postService.DeletePost(c.Request.Context(), requestContext(c), id)
	if err != nil {
		respondError(h.Helper, c, err, postURL(id))
		return
	}

	h.Helper.Redirect(c, profileURL(post.Author.Username))
}

// bindForm accepts JSON, urlencoded and multipart bodies.
func (h *PostHandler) bindForm(c *gin.Context) (models.PostForm, bool) {
	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.SendBadRequest(c, "Invalid post form", err.Error())
		return form, false
	}

	clearZeroRefs(&form)
	return form, true
}

// clearZeroRefs treats a zero id in a select field as "none".
func clearZeroRefs(form *models.PostForm) {
	if form.CategoryID != nil && *form.CategoryID == 0 {
		form.CategoryID = nil
	}
	if form.LocationID != nil && *form.LocationID == 0 {
		form.LocationID = nil
	}
}
