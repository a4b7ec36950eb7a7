// config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Postgres      PostgresConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Lookup        LookupConfiguration
	Proxy         ProxyConfiguration
	Admin         AdminConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port        string
	Environment string
	BaseURLs    []string
	CORSOrigins []string
}

// PostgresConfiguration stores data for database connection
type PostgresConfiguration struct {
	URL string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr            string
	DefaultCacheTTL string
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL string
}

// LookupConfiguration tunes the reference data service
type LookupConfiguration struct {
	CacheTTL         string
	MaxSearchResults int
	PopularLimit     int
}

// ProxyConfiguration stores the image proxy allow-list
type ProxyConfiguration struct {
	AllowedHosts []string
}

// AdminConfiguration stores the shared admin API key
type AdminConfiguration struct {
	APIKey string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.environment", "development")
	viper.SetDefault("server.baseURLs", []string{"http://localhost:8080"})
	viper.SetDefault("server.corsOrigins", []string{"*"})
	viper.SetDefault("postgres.url", "postgres://localhost:5432/kada_connect")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.defaultCacheTTL", "10m")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("lookup.cacheTTL", "5m")
	viper.SetDefault("lookup.maxSearchResults", 20)
	viper.SetDefault("lookup.popularLimit", 10)
	viper.SetDefault("proxy.allowedHosts", []string{
		"images.unsplash.com",
		"res.cloudinary.com",
		"lh3.googleusercontent.com",
		"avatars.githubusercontent.com",
		"i.imgur.com",
	})
	viper.SetDefault("admin.apiKey", "")
	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.window", "1m")
	viper.SetDefault("log.dir", "logs")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetStringSlice retrieves a string slice value from the configuration
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}

// IsProduction reports whether the server runs in production mode
func IsProduction() bool {
	return viper.GetString("server.environment") == "production"
}
