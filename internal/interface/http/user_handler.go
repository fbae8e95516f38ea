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

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,pwd"`
	Name     string `json:"name" form:"name" binding:"max=255"`
}

type tokenRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name     *string `json:"name" form:"name" binding:"omitempty,max=255"`
	Password *string `json:"password" form:"password" binding:"omitempty,pwd"`
}

// userResponse never carries the password hash.
type userResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func isPasswordError(err error) bool {
	return errors.Is(err, entity.ErrPasswordTooLong) || errors.Is(err, entity.ErrPasswordRequired)
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{Email: u.Email, Name: u.Name}
}

// Create POST /api/user/create
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.CreateUser(c.Request.Context(), userapp.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	switch {
	case err == nil:
	case errors.Is(err, userapp.ErrEmailTaken):
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.Field("email", err.Error()))
		return
	case errors.Is(err, entity.ErrEmailRequired):
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.Field("email", "is required"))
		return
	case isPasswordError(err):
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.Field("password", err.Error()))
		return
	default:
		response.Error[any](c, http.StatusInternalServerError, "failed to create user", nil)
		return
	}
	response.Success(c, http.StatusCreated, toUserResponse(u), "user created", nil)
}

// Token POST /api/user/token
func (h *UserHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userapp.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusBadRequest, "invalid credentials", validation.Field("non_field_errors", err.Error()))
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to issue token", nil)
		return
	}
	response.Success(c, http.StatusOK, tokenResponse{Token: t.Key}, "token issued", nil)
}

// Me GET /api/user/me
func (h *UserHandler) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u), "profile", nil)
}

// UpdateMe PATCH /api/user/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	updated, err := h.Svc.UpdateProfile(c.Request.Context(), u.ID, userapp.UpdateProfileInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, userapp.ErrUserNotFound) {
			response.Error[any](c, http.StatusUnauthorized, "user inactive or deleted", nil)
			return
		}
		if isPasswordError(err) {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.Field("password", err.Error()))
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update profile", nil)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(updated), "profile updated", nil)
}
