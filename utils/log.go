package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is an instance of logrus.Logger
// Logger is to be used for all logging
var Logger = logrus.New()

// initLogger initializes the logger with apropriate configuration options
func initLogger(config *Config) {
	Logger = GetNewFileLogger(config.LogFileName, config.LogMaxSize, config.LogLevel, true)
	Logger.Info("Logger started")
}

// GetNewFileLogger returns a logger writing to fileName, rotated at maxSize MB.
// fileName "stdout" writes to the terminal instead.
func GetNewFileLogger(fileName string, maxSize int, logLevel string, json bool) *logrus.Logger {
	if fileName == "" {
		fileName = "./sentimen.log"
	}

	if maxSize == 0 {
		maxSize = 50
	}

	if logLevel == "" {
		logLevel = "info"
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}

	var out io.Writer = os.Stdout
	if fileName != "stdout" {
		out = &lumberjack.Logger{
			Filename: fileName,
			MaxSize:  maxSize, // MB
		}
	}

	logger := &logrus.Logger{
		Out:       out,
		Hooks:     make(logrus.LevelHooks),
		Level:     level,
		ExitFunc:  os.Exit,
		Formatter: &logrus.TextFormatter{},
	}

	if json {
		logger.Formatter = &logrus.JSONFormatter{}
	}

	return logger
}
