package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-user-api/internal/interface/http"
	"github.com/oksasatya/go-user-api/internal/interface/middleware"
)

// TagModule exposes the caller's tags under /recipe/tags. All routes are protected.
type TagModule struct {
	Handler *handlers.TagHandler
	Auth    middleware.Authenticator
}

func NewTagModule(h *handlers.TagHandler, auth middleware.Authenticator) *TagModule {
	return &TagModule{Handler: h, Auth: auth}
}

func (m *TagModule) Register(rg *gin.RouterGroup) {
	tags := rg.Group("/recipe/tags")
	tags.Use(middleware.TokenAuth(m.Auth))
	{
		tags.GET("", m.Handler.List)
		tags.POST("", m.Handler.Create)
	}
}
