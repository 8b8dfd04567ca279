package config

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Options holds the runtime configuration of the service.
type Options struct {
	runAddr     string
	logLevel    string
	dataDir     string
	corsOrigins string
}

// NewOptions creates an empty Options instance
func NewOptions() *Options {
	return new(Options)
}

// ParseFlags loads the .env file, reads environment variables and lets
// command line flags override them.
func (o *Options) ParseFlags() {
	loadEnvFile()

	flag.StringVar(&o.runAddr, "a", getEnvOrDefault("RUN_ADDRESS", ":5000"), "address and port to run server")
	flag.StringVar(&o.logLevel, "l", getEnvOrDefault("LOG_LEVEL", "info"), "log level")
	flag.StringVar(&o.dataDir, "d", getEnvOrDefault("DATA_DIR", "data"), "directory holding the JSON collections")
	flag.StringVar(&o.corsOrigins, "o", getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173,http://localhost:3001"), "comma-separated allowed CORS origins")

	flag.Parse()
}

// RunAddr returns the listen address
func (o *Options) RunAddr() string {
	return o.runAddr
}

// LogLevel returns the log level
func (o *Options) LogLevel() string {
	return o.logLevel
}

// DataDir returns the data directory
func (o *Options) DataDir() string {
	return o.dataDir
}

// CorsOrigins returns the allowed CORS origins
func (o *Options) CorsOrigins() []string {
	return strings.Split(o.corsOrigins, ",")
}

// getEnvOrDefault reads an environment variable or returns a default
// value if the variable is not set or is empty.
func getEnvOrDefault(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// loadEnvFile loads environment variables from a .env file when one
// is present.
func loadEnvFile() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, proceeding without it")
	}
}
