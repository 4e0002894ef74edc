package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	RedisAddr     string
	RedisPassword string

	UploadDir   string
	SubtitleDir string
	VPNDir      string

	MaxUploadSize   int64
	MaxSubtitleSize int64

	PlaylistFetchTimeout time.Duration
	BrowseFetchTimeout   time.Duration
	ProxyFetchTimeout    time.Duration

	OpenVPNBinary string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	if !viper.IsSet("MARIADB_DSN") {
		return nil, fmt.Errorf("MARIADB_DSN is required")
	}
	if !viper.IsSet("MARIADB_MAX_OPEN_CONN") {
		return nil, fmt.Errorf("MARIADB_MAX_OPEN_CONN is required")
	}
	if !viper.IsSet("MARIADB_MAX_IDLE_CONNS") {
		return nil, fmt.Errorf("MARIADB_MAX_IDLE_CONNS is required")
	}
	if !viper.IsSet("MARIADB_CONN_MAX_LIFETIME") {
		return nil, fmt.Errorf("MARIADB_CONN_MAX_LIFETIME is required")
	}
	if !viper.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}

	viper.SetDefault("UPLOAD_DIR", "./data/uploads")
	viper.SetDefault("SUBTITLE_DIR", "./data/subtitles")
	viper.SetDefault("VPN_DIR", "./data/vpn")
	viper.SetDefault("MAX_UPLOAD_SIZE", 100*1024*1024)
	viper.SetDefault("MAX_SUBTITLE_SIZE", 5*1024*1024)
	viper.SetDefault("PLAYLIST_FETCH_TIMEOUT", 10)
	viper.SetDefault("BROWSE_FETCH_TIMEOUT", 15)
	viper.SetDefault("PROXY_FETCH_TIMEOUT", 30)
	viper.SetDefault("OPENVPN_BINARY", "openvpn")

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),

		UploadDir:   viper.GetString("UPLOAD_DIR"),
		SubtitleDir: viper.GetString("SUBTITLE_DIR"),
		VPNDir:      viper.GetString("VPN_DIR"),

		MaxUploadSize:   viper.GetInt64("MAX_UPLOAD_SIZE"),
		MaxSubtitleSize: viper.GetInt64("MAX_SUBTITLE_SIZE"),

		PlaylistFetchTimeout: time.Duration(viper.GetInt("PLAYLIST_FETCH_TIMEOUT")) * time.Second,
		BrowseFetchTimeout:   time.Duration(viper.GetInt("BROWSE_FETCH_TIMEOUT")) * time.Second,
		ProxyFetchTimeout:    time.Duration(viper.GetInt("PROXY_FETCH_TIMEOUT")) * time.Second,

		OpenVPNBinary: viper.GetString("OPENVPN_BINARY"),
	}, nil
}
