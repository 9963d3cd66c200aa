package server

import (
	"fmt"
	"time"

	"pokedex/server/biz/config"
	"pokedex/server/biz/handler"
	"pokedex/server/biz/middleware"
	_ "pokedex/server/docs"

	hertzserver "github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

// NewEngine builds the HTTP engine: middleware suite, the fixed /users
// route table and the swagger UI. Anything that matches no route (or
// no method on a matched route) falls through to the catch-all, which
// answers 200 without touching storage.
func NewEngine() *hertzserver.Hertz {
	serverConf := config.GetServerConf()

	opts := []hertzconfig.Option{
		hertzserver.WithHostPorts(fmt.Sprintf("%s:%d", serverConf.Host, serverConf.Port)),
		hertzserver.WithHandleMethodNotAllowed(true),
	}
	if serverConf.ReadTimeout > 0 {
		// bounds stalled clients while their bodies are buffered
		opts = append(opts, hertzserver.WithReadTimeout(time.Duration(serverConf.ReadTimeout)*time.Second))
	}

	h := hertzserver.New(opts...)
	h.Use(middleware.Suite()...)

	h.GET("/users", handler.GetUsers)
	h.POST("/users", handler.CreateUser)
	h.PUT("/users", handler.UpdateUser)
	h.DELETE("/users", handler.DeleteUser)

	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler, swagger.URL("/swagger/doc.json")))

	h.NoRoute(handler.CatchAll)
	h.NoMethod(handler.CatchAll)

	return h
}
