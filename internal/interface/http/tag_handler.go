package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/go-user-api/internal/application"
	"github.com/oksasatya/go-user-api/internal/domain/entity"
	"github.com/oksasatya/go-user-api/internal/interface/middleware"
	"github.com/oksasatya/go-user-api/pkg/response"
	"github.com/oksasatya/go-user-api/pkg/validation"
)

type TagHandler struct {
	Svc    *userapp.TagService
	Logger *logrus.Logger
}

func NewTagHandler(svc *userapp.TagService, logger *logrus.Logger) *TagHandler {
	return &TagHandler{Svc: svc, Logger: logger}
}

type createTagRequest struct {
	Name string `json:"name" form:"name" binding:"required,max=255"`
}

type tagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// List GET /api/recipe/tags
func (h *TagHandler) List(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	tags, err := h.Svc.ListTags(c.Request.Context(), u.ID)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list tags", nil)
		return
	}
	out := make([]tagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, tagResponse{ID: t.ID, Name: t.String()})
	}
	response.Success(c, http.StatusOK, out, "tags", nil)
}

// Create POST /api/recipe/tags
func (h *TagHandler) Create(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req createTagRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.CreateTag(c.Request.Context(), u.ID, req.Name)
	if err != nil {
		if errors.Is(err, entity.ErrTagNameRequired) {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.Field("name", "is required"))
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to create tag", nil)
		return
	}
	response.Success(c, http.StatusCreated, tagResponse{ID: t.ID, Name: t.String()}, "tag created", nil)
}
