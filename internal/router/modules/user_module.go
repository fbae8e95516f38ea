package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-user-api/internal/interface/http"
	"github.com/oksasatya/go-user-api/internal/interface/middleware"
)

// UserModule wires user HTTP handlers under /user.
// Public: POST /user/create, POST /user/token
// Protected: GET /user/me, PATCH /user/me
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    middleware.Authenticator
}

func NewUserModule(h *handlers.UserHandler, auth middleware.Authenticator) *UserModule {
	return &UserModule{Handler: h, Auth: auth}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	user.POST("/create", m.Handler.Create)
	user.POST("/token", m.Handler.Token)

	me := user.Group("/me")
	me.Use(middleware.TokenAuth(m.Auth))
	{
		me.GET("", m.Handler.Me)
		me.PATCH("", m.Handler.UpdateMe)
	}
}
