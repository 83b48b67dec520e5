package utils

import (
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("CONTACTCLEANER_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("CONTACTCLEANER_JWT_ISSUER")
	if issuer == "" {
		issuer = "contactcleaner"
	}

	duration := 24 * time.Hour
	if ttl := os.Getenv("CONTACTCLEANER_JWT_TTL_HOURS"); ttl != "" {
		if hours, err := strconv.Atoi(ttl); err == nil && hours > 0 {
			duration = time.Duration(hours) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: duration,
	}
}

type ServerConfig struct {
	HTTPAddr       string
	TCPAddr        string
	MaxUploadBytes int64
	TempDir        string
}

func LoadServerConfig() ServerConfig {
	httpAddr := os.Getenv("CONTACTCLEANER_HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	tcpAddr := os.Getenv("CONTACTCLEANER_TCP_ADDR")
	if tcpAddr == "" {
		tcpAddr = ":7070"
	}

	// upload cap in megabytes, default 50
	maxMB := int64(50)
	if raw := os.Getenv("CONTACTCLEANER_MAX_UPLOAD_MB"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			maxMB = n
		}
	}

	tempDir := os.Getenv("CONTACTCLEANER_TMP_DIR")
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	return ServerConfig{
		HTTPAddr:       httpAddr,
		TCPAddr:        tcpAddr,
		MaxUploadBytes: maxMB << 20,
		TempDir:        tempDir,
	}
}

type CleanConfig struct {
	DedupPolicy string
	ReadpstPath string
}

func LoadCleanConfig() CleanConfig {
	return CleanConfig{
		DedupPolicy: os.Getenv("CONTACTCLEANER_DEDUP_POLICY"),
		ReadpstPath: os.Getenv("CONTACTCLEANER_READPST_PATH"),
	}
}
