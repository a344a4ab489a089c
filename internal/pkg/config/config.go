package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Downloader DownloaderConfig
	Web        WebConfig
	Cleanup    CleanupConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type DownloaderConfig struct {
	BinaryPath    string // yt-dlp binary
	TempDir       string // job başına temp klasörlerin açıldığı kök
	SocketTimeout int    // saniye
}

type WebConfig struct {
	AssetsDir string
}

type CleanupConfig struct {
	Schedule string        // cron spec
	MaxAge   time.Duration // bu yaştan eski temp klasörler süpürülür
}

func LoadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5000"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Downloader: DownloaderConfig{
			BinaryPath:    getEnv("YTDLP_PATH", "yt-dlp"),
			TempDir:       getEnv("DOWNLOAD_TEMP_DIR", "temp_downloads"),
			SocketTimeout: getEnvAsInt("YTDLP_SOCKET_TIMEOUT", 60),
		},
		Web: WebConfig{
			AssetsDir: getEnv("WEB_ASSETS_DIR", "web"),
		},
		Cleanup: CleanupConfig{
			Schedule: getEnv("CLEANUP_SCHEDULE", "@every 1h"),
			MaxAge:   getEnvAsDuration("CLEANUP_MAX_AGE", 2*time.Hour),
		},
	}

	// Göreli yollar proje köküne göre çözülür
	if !filepath.IsAbs(config.Downloader.TempDir) {
		projectRoot, err := findProjectRoot()
		if err != nil {
			panic(err)
		}
		config.Downloader.TempDir = filepath.Join(projectRoot, config.Downloader.TempDir)
	}

	if err := os.MkdirAll(config.Downloader.TempDir, 0755); err != nil {
		panic(err)
	}

	return config
}

func findProjectRoot() (string, error) {
	current, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Root'a ulaştık, go.mod bulunamadı
			return os.Getwd()
		}
		current = parent
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
