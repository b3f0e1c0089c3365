package config

import (
	"os"
	"strconv"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get environment variable as float with fallback
func GetEnvAsFloat(key string, fallback float64) float64 {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// SiteTimezone is the fixed timezone of the construction site. Every
// "today" computation in the backend resolves in this zone, never in the
// server locale.
func SiteTimezone() string {
	return GetEnv("SITE_TIMEZONE", "America/New_York")
}

// OvertimeThreshold is the weekly hour total above which additional hours
// are classified as overtime. One canonical value for every report path.
func OvertimeThreshold() float64 {
	return GetEnvAsFloat("OVERTIME_WEEKLY_THRESHOLD", 44)
}

func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "fieldops-dev-secret"))
}
