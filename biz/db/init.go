package db

import (
	"pokedex/server/biz/db/sqldb"
)

func Init() {
	sqldb.Init()
}
