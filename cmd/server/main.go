package main

import (
	"flag"

	server "pokedex/server"
	"pokedex/server/biz/config"
	"pokedex/server/biz/db"
	"pokedex/server/biz/util/logger"
)

// @title			pokedex account server
// @version		1.0
// @description	User account CRUD over salted password digests.
// @BasePath		/
func main() {
	confPath := flag.String("conf", "conf/deploy.yml", "path to the deployment config")
	flag.Parse()

	config.Init(*confPath)
	logger.Init()
	db.Init()

	h := server.NewEngine()
	h.Spin()
}
