package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv    string
	Port      string
	DataDir   string
	Templates string
	Admin     AdminConfig
	Cookie    CookieConfig
	CORS      CORSConfig
	Telemetry TelemetryConfig
}

// AdminConfig is the seed record written to admins.json on first start.
// In prod the values come from Secrets Manager (see main.go).
type AdminConfig struct {
	Username string
	Password string
}

type CookieConfig struct {
	Name     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
	Path     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type TelemetryConfig struct {
	ServiceName          string
	ServiceVersion       string
	OTLPEndpoint         string
	OTLPTracesEndpoint   string
	OTLPMetricsEndpoint  string
	OTLPProtocol         string
	OTLPHeaders          map[string]string
	OTLPInsecure         bool
	ExportTimeout        time.Duration
	MetricExportInterval time.Duration
}

func Load() (Config, error) {
	appEnv := getEnv("APP_ENV", "dev")

	cookieSecure := getEnvBool("COOKIE_SECURE", appEnv == "prod")
	sameSite, err := parseSameSite(getEnv("COOKIE_SAMESITE", "lax"))
	if err != nil {
		return Config{}, err
	}

	exportTimeout, err := time.ParseDuration(getEnv("OTEL_EXPORT_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid OTEL_EXPORT_TIMEOUT: %w", err)
	}
	metricInterval, err := time.ParseDuration(getEnv("OTEL_METRIC_EXPORT_INTERVAL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid OTEL_METRIC_EXPORT_INTERVAL: %w", err)
	}

	cfg := Config{
		AppEnv:    appEnv,
		Port:      getEnv("APP_PORT", "8080"),
		DataDir:   getEnv("DATA_DIR", "data"),
		Templates: getEnv("TEMPLATES_DIR", "templates"),
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Cookie: CookieConfig{
			Name:     getEnv("SESSION_COOKIE_NAME", "campus_session"),
			Domain:   getEnv("COOKIE_DOMAIN", ""),
			Secure:   cookieSecure,
			SameSite: sameSite,
			Path:     getEnv("COOKIE_PATH", "/"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Telemetry: TelemetryConfig{
			ServiceName:          getEnv("OTEL_SERVICE_NAME", "campus-events"),
			ServiceVersion:       getEnv("OTEL_SERVICE_VERSION", "dev"),
			OTLPEndpoint:         os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			OTLPTracesEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"),
			OTLPMetricsEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT"),
			OTLPProtocol:         getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
			OTLPHeaders:          parseHeaders(os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")),
			OTLPInsecure:         getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", appEnv != "prod"),
			ExportTimeout:        exportTimeout,
			MetricExportInterval: metricInterval,
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(value string) []string {
	parts := strings.Split(value, ",")
	var results []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func parseHeaders(value string) map[string]string {
	headers := make(map[string]string)
	for _, pair := range parseCSV(value) {
		key, val, found := strings.Cut(pair, "=")
		if found && key != "" {
			headers[key] = val
		}
	}
	return headers
}

func parseSameSite(value string) (http.SameSite, error) {
	switch strings.ToLower(value) {
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return http.SameSiteDefaultMode, fmt.Errorf("invalid COOKIE_SAMESITE: %s", value)
	}
}
