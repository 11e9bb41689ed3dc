package configs

import (
	"log"
	"os"
	"sync"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	ServerPort         string
	SQLiteDBPath       string
	JWTSecret          string
	CORSAllowedOrigins string
}

const (
	defaultServerPort   = "8080"            // Default server port.
	envServerPortKey    = "SERVER_PORT"     // Environment variable name for the server port.
	defaultSQLiteDBPath = "data/railway_complaints.db"
	envSQLiteDBPathKey  = "SQLITE_DB_PATH" // Environment variable name for the database file path.
	defaultJWTSecret    = "railmadad"      // Default JWT secret, used if env var is not set.
	envJWTSecretKey     = "JWT_SECRET_KEY" // Environment variable name for the JWT secret.
	defaultCORSOrigins  = "http://localhost:3000" // Default dashboard origin.
	envCORSOriginsKey   = "CORS_ALLOWED_ORIGINS"  // Comma-separated list of allowed origins.
)

// LoadConfig loads configuration from environment variables or defaults.
// It should be called once at application startup.
func LoadConfig() {
	once.Do(func() {
		serverPort := os.Getenv(envServerPortKey)
		if serverPort == "" {
			serverPort = defaultServerPort
			log.Printf("Info: %s not set, using default port %s.", envServerPortKey, defaultServerPort)
		}

		dbPath := os.Getenv(envSQLiteDBPathKey)
		if dbPath == "" {
			dbPath = defaultSQLiteDBPath
			log.Printf("Info: %s not set, using default database path %s.", envSQLiteDBPathKey, defaultSQLiteDBPath)
		}

		jwtSecret := os.Getenv(envJWTSecretKey)
		if jwtSecret == "" {
			jwtSecret = defaultJWTSecret
			log.Printf("Warning: %s not set, using the default JWT secret. Set this variable in production.", envJWTSecretKey)
		}

		corsOrigins := os.Getenv(envCORSOriginsKey)
		if corsOrigins == "" {
			corsOrigins = defaultCORSOrigins
			log.Printf("Info: %s not set, allowing dashboard origin %s.", envCORSOriginsKey, defaultCORSOrigins)
		}

		AppConfig = Configuration{
			ServerPort:         serverPort,
			SQLiteDBPath:       dbPath,
			JWTSecret:          jwtSecret,
			CORSAllowedOrigins: corsOrigins,
		}

		log.Println("Application configuration loaded.")
	})
}
