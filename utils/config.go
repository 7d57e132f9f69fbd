package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config contains all the configuration options
type Config struct {
	// Environment related options

	// Stage is the current execution environment. Can be one of "prod", "dev", "docker" or "test"
	Stage string

	// Logging related options

	// LogFileName is the name of the log file name. "stdout" logs to the terminal
	LogFileName string
	// LogMaxSize is the maximum size(MB) of a log file before it gets rotated
	LogMaxSize int
	// LogLevel determines the log level.
	// Can be one of "debug", "info", "warn", "error"
	LogLevel string

	// Database related options

	// DbDriver is the gorm dialect. Can be one of "sqlite3" or "mysql"
	DbDriver string
	// DbUser is the name of the database user
	DbUser string
	// DbPassword is the password of the database user
	DbPassword string
	// DbHost is the host name of the database server
	DbHost string
	// DbName is the name of the database. For sqlite3 it is the file path
	DbName string

	// Dataset and model related options

	// DatasetFile is the labelled CSV used when the database holds no posts
	DatasetFile string
	// ModelFile is the exported vectorizer + classifier artifact
	ModelFile string

	// HTTP Server related options

	// ServerPort is the address to which the HTTP server will bind
	ServerPort string
	// MaxConnections caps concurrently accepted connections. 0 means unlimited
	MaxConnections int
	// CacheSize is the size of the LRU caches (sessions, stems, predictions)
	CacheSize int
	// AllowedOrigins are the websocket origins accepted outside dev stages
	AllowedOrigins []string
	// StaticDir is served under /static/
	StaticDir string
}

// Struct to load configurations of all possible modes i.e dev, docker, prod, test
// Only one of them will be selected based on the environment variable SENTIMEN_ENV
type allConfigurations struct {
	Dev    Config
	Docker Config
	Prod   Config
	Test   Config
}

// setting config defaults for test, because when running tests
// config.json won't get loaded
var config = &Config{
	Stage:          "test",
	LogFileName:    "stdout",
	LogMaxSize:     50,
	LogLevel:       "debug",
	DbDriver:       "sqlite3",
	DbName:         "file::memory:?cache=shared",
	DatasetFile:    "",
	ModelFile:      "",
	ServerPort:     ":8000",
	MaxConnections: 0,
	CacheSize:      1000,
	StaticDir:      "./public",
}

// StageFromEnv returns the stage named by SENTIMEN_ENV, or Dev when unset.
func StageFromEnv() string {
	stage, exists := os.LookupEnv("SENTIMEN_ENV")
	if !exists {
		os.Stderr.WriteString("Set environment variable SENTIMEN_ENV to one of : Dev, Docker, Prod, Test. Taking Dev as default.\n")
		return "Dev"
	}
	return stage
}

// InitConfiguration reads fileName and selects the section for stage.
// For the Test stage a missing file keeps the compiled-in defaults.
// Values can be overridden by environment variables such as SENTIMEN_PROD_SERVERPORT.
func InitConfiguration(fileName, stage string) error {
	v := viper.New()
	v.SetConfigFile(fileName)
	v.SetEnvPrefix("SENTIMEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if strings.EqualFold(stage, "Test") {
			return nil // config is already set to default value for test. nothing to do.
		}
		return fmt.Errorf("failed to open %s: %w", fileName, err)
	}

	var all allConfigurations
	if err := v.Unmarshal(&all); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	switch strings.ToLower(stage) {
	case "docker":
		config = &all.Docker
	case "prod":
		config = &all.Prod
	case "test":
		config = &all.Test
	default:
		// Take Dev as default
		config = &all.Dev
	}

	return nil
}

// GetConfiguration returns the configuration loaded from config.json
func GetConfiguration() *Config {
	return config
}

// Init intializes the utils package. The config is accepted as a parameter for helping with testing.
func Init(config *Config) {
	initDbHelper(config)
	initLogger(config)
}
