package sqldb

import (
	"fmt"

	"pokedex/server/biz/config"
	"pokedex/server/biz/model/storage"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var dbConn *gorm.DB

// Init opens the configured database and ensures the users table
// exists. Bootstrap failures are fatal: the service has nothing to do
// without its storage.
func Init() {
	conf := config.GetDatabaseConf()

	dialector, err := newDialector(conf)
	if err != nil {
		panic(err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}

	// idempotent: creates the table only when absent
	if err := db.AutoMigrate(&storage.AccountRecord{}); err != nil {
		panic(err)
	}

	dbConn = db
}

func GetDbConn() *gorm.DB {
	return dbConn
}

func newDialector(conf config.DatabaseConf) (gorm.Dialector, error) {
	switch conf.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			conf.MySQL.Username, conf.MySQL.Password,
			conf.MySQL.IP, conf.MySQL.Port, conf.MySQL.DBName)
		return mysql.Open(dsn), nil
	case "sqlite", "":
		path := conf.SQLite.Path
		if path == "" {
			path = "assets/db.sqlite"
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", conf.Driver)
	}
}
