package middleware

import (
	"pokedex/server/biz/middleware/accesslog"
	"pokedex/server/biz/middleware/cors"
	"pokedex/server/biz/middleware/recovery"
	"pokedex/server/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),  // panic handler
		trace.New(),     // per-request log id
		accesslog.New(), // access log
		cors.New(),      // cross-origin requests
	}
}
