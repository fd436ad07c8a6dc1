package cmd

import "fmt"

// Storage backend selectors for Config.StorageBackend.
const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendLocal    = "local"
)

// Config carries the runtime configuration of the storefront, populated from
// environment variables by the entry point.
type Config struct {
	HTTPPort string

	// StorageBackend selects the order store: postgres, mongo or local.
	StorageBackend string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	MongoURI                string
	MongoDB                 string
	MongoOrdersCollection   string
	MongoCountersCollection string

	LocalStorePath string

	AmqpURL      string
	AmqpExchange string

	JWTSecret string
}

// PostgresDSN assembles the GORM connection string for the relational backend.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
