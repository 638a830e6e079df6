package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Env model
type Env struct {
	RootApp     string
	ServiceName string

	// Environment env, development or production
	Environment string
	// DebugMode env, colored console log on/off
	DebugMode bool

	// HTTPPort config
	HTTPPort uint16
	// HTTPRootPath config, optional prefix for all routes
	HTTPRootPath string

	// BasicAuthUsername config, the admin credential
	BasicAuthUsername string
	// BasicAuthPassword config
	BasicAuthPassword string

	// JaegerTracingHost env, empty disables tracing
	JaegerTracingHost string

	// UseRedis env, true when REDIS_WRITE_HOST is set, switch cache backend
	UseRedis bool

	// ServerOrigin env, public origin for event detail urls in the ics feed
	ServerOrigin string

	// LocationIQAPIKey env
	LocationIQAPIKey string
	// LocationIQBaseURL env
	LocationIQBaseURL string

	// QueryCacheTTL env, ttl for whole feed responses
	QueryCacheTTL time.Duration
	// GeocodeCacheTTL env, ttl for geocoder lookups
	GeocodeCacheTTL time.Duration
}

// GlobalEnv global environment
var GlobalEnv Env

func loadEnv(rootApp string) {
	// load .env
	if err := godotenv.Load(rootApp + "/.env"); err != nil {
		log.Println(err)
	}

	os.Setenv("APP_PATH", rootApp)
	GlobalEnv.RootApp = rootApp
	GlobalEnv.ServiceName = "events-api"

	GlobalEnv.Environment = os.Getenv("ENVIRONMENT")
	GlobalEnv.DebugMode, _ = strconv.ParseBool(os.Getenv("DEBUG_MODE"))

	// ------------------------------------

	if port, err := strconv.Atoi(os.Getenv("HTTP_PORT")); err != nil {
		panic("missing HTTP_PORT environment")
	} else {
		GlobalEnv.HTTPPort = uint16(port)
	}
	GlobalEnv.HTTPRootPath = os.Getenv("HTTP_ROOT_PATH")

	// ------------------------------------

	var ok bool
	GlobalEnv.BasicAuthUsername, ok = os.LookupEnv("BASIC_AUTH_USERNAME")
	if !ok {
		panic("missing BASIC_AUTH_USERNAME environment")
	}
	GlobalEnv.BasicAuthPassword, ok = os.LookupEnv("BASIC_AUTH_PASS")
	if !ok {
		panic("missing BASIC_AUTH_PASS environment")
	}

	GlobalEnv.JaegerTracingHost = os.Getenv("JAEGER_TRACING_HOST")

	if _, ok = os.LookupEnv("MONGODB_HOST_WRITE"); !ok {
		panic("missing MONGODB_HOST_WRITE environment")
	}
	GlobalEnv.UseRedis = os.Getenv("REDIS_WRITE_HOST") != ""

	GlobalEnv.ServerOrigin, ok = os.LookupEnv("SERVER_ORIGIN")
	if !ok {
		panic("missing SERVER_ORIGIN environment")
	}

	GlobalEnv.LocationIQAPIKey, ok = os.LookupEnv("LOCATIONIQ_API_KEY")
	if !ok {
		panic("missing LOCATIONIQ_API_KEY environment")
	}
	GlobalEnv.LocationIQBaseURL = os.Getenv("LOCATIONIQ_BASE_URL")
	if GlobalEnv.LocationIQBaseURL == "" {
		GlobalEnv.LocationIQBaseURL = "https://api.locationiq.com/v1/search"
	}

	GlobalEnv.QueryCacheTTL = parseDurationEnv("QUERY_CACHE_TTL", 10*time.Minute)
	GlobalEnv.GeocodeCacheTTL = parseDurationEnv("GEOCODE_CACHE_TTL", 24*time.Hour)
}

func parseDurationEnv(key string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		panic("invalid duration in " + key + " environment")
	}
	return d
}
