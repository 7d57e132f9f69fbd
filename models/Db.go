// Package models handles everything between the database and the API.
// It owns the labelled post dataset: importing it from CSV, persisting it
// with gorm and keeping a read-only snapshot in memory for the dashboard.
package models

import (
	"github.com/sirupsen/logrus"

	"github.com/delta/pon-sentimen-dashboard/utils"
)

var logger = logrus.NewEntry(utils.Logger)
var getDB = utils.GetDB
var config = utils.GetConfiguration()

// Init configures the models package
func Init(conf *utils.Config) {
	logger = utils.Logger.WithFields(logrus.Fields{
		"module": "models",
	})

	config = conf
}

// Migrate creates or updates the tables used by the models package
func Migrate() error {
	l := logger.WithFields(logrus.Fields{
		"method": "Migrate",
	})

	db, err := getDB()
	if err != nil {
		l.Errorf("Failed opening database: %+v", err)
		return err
	}

	if err := db.AutoMigrate(&Tweet{}).Error; err != nil {
		l.Errorf("Failed migrating Tweets: %+v", err)
		return err
	}

	l.Debugf("Done")
	return nil
}
