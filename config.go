package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

// ReadConfig reads the YAML config file and applies environment overrides.
// A missing file yields the defaults.
func ReadConfig(file string) (Config, error) {
	slog.Info("Reading config file " + file)
	config := DefaultConfig()
	data, err := os.ReadFile(file)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else {
		slog.Warn("config file not found, using defaults")
	}
	if err := ApplyEnv(&config); err != nil {
		return config, err
	}
	return config, nil
}

// ApplyEnv loads .env (if present) and lets environment variables override
// the file based settings.
func ApplyEnv(config *Config) error {
	_ = godotenv.Load()
	if port := os.Getenv("PORT"); port != "" {
		config.Server.Port = port
	}
	if dir := os.Getenv("UPLOAD_FOLDER"); dir != "" {
		config.Datasets.UploadFolder = dir
	}
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		config.Server.StaticDir = dir
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.Server.AllowedOrigins = strings.Split(origins, ",")
	}
	if size := os.Getenv("MAX_UPLOAD_BYTES"); size != "" {
		n, err := strconv.ParseInt(size, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_BYTES: %w", err)
		}
		config.Server.MaxUploadBytes = n
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		lvl, err := LogLevelFromString(level)
		if err != nil {
			return err
		}
		config.Logging.Level = lvl
	}
	return nil
}

type Config struct {
	Server   ServerOptions  `yaml:"server"`
	Datasets DatasetOptions `yaml:"datasets"`
	Logging  struct {
		Level LogLevel `yaml:"level"`
	} `yaml:"logging"`
}

type ServerOptions struct {
	Port           string   `yaml:"port"`
	StaticDir      string   `yaml:"static-dir"`
	AllowedOrigins []string `yaml:"allowed-origins"`
	MaxUploadBytes int64    `yaml:"max-upload-bytes"`
}

type DatasetOptions struct {
	UploadFolder string `yaml:"upload-folder"`
	// keep built graphs in memory, keyed by dataset name and modification time
	Cache bool `yaml:"cache"`
	// evict cached graphs when their file changes
	Watch bool `yaml:"watch"`
}

func DefaultConfig() Config {
	config := Config{}
	config.Server = ServerOptions{
		Port:           "5000",
		AllowedOrigins: []string{"*"},
		MaxUploadBytes: 16 * 1024 * 1024,
	}
	config.Datasets = DatasetOptions{
		UploadFolder: "uploads",
		Cache:        false,
		Watch:        false,
	}
	config.Logging.Level = INFO
	return config
}

//**********************************************************
// enums
//**********************************************************

type LogLevel byte

const (
	DEBUG LogLevel = 0
	INFO  LogLevel = 1
	WARN  LogLevel = 2
	ERROR LogLevel = 3
)

func (self LogLevel) String() string {
	switch self {
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case WARN:
		return "warn"
	case ERROR:
		return "error"
	default:
		panic("unknown log level")
	}
}

func (self LogLevel) SlogLevel() slog.Level {
	switch self {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (self LogLevel) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *LogLevel) UnmarshalYAML(value *yaml.Node) error {
	lvl, err := LogLevelFromString(value.Value)
	if err != nil {
		return err
	}
	*self = lvl
	return nil
}

func LogLevelFromString(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	default:
		return INFO, errors.New("unknown log level " + s)
	}
}
