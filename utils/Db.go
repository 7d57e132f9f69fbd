package utils

import (
	"fmt"
	"sync"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var dbConfig *Config

// DbOpen returns a database connection object by opening one based
// on the configuration
func DbOpen() (*gorm.DB, error) {
	if dbConfig == nil {
		dbConfig = config
	}

	switch dbConfig.DbDriver {
	case "mysql":
		connstr := fmt.Sprintf("%s:%s@%s/%s?charset=utf8mb4&parseTime=true",
			dbConfig.DbUser, dbConfig.DbPassword, dbConfig.DbHost, dbConfig.DbName)
		return gorm.Open("mysql", connstr)
	case "sqlite3", "":
		return gorm.Open("sqlite3", dbConfig.DbName)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", dbConfig.DbDriver)
	}
}

func initDbHelper(config *Config) {
	dbConfig = config
}

var shared = struct {
	sync.Mutex
	db *gorm.DB
}{}

// GetDB returns the process wide connection, opening it on first use
func GetDB() (*gorm.DB, error) {
	shared.Lock()
	defer shared.Unlock()

	if shared.db == nil {
		db, err := DbOpen()
		if err != nil {
			return nil, err
		}
		shared.db = db
	}
	return shared.db, nil
}

// CloseDB closes the connection returned by GetDB. The next GetDB reopens it.
func CloseDB() error {
	shared.Lock()
	defer shared.Unlock()

	if shared.db == nil {
		return nil
	}
	err := shared.db.Close()
	shared.db = nil
	return err
}
