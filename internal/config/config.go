package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AppConf struct {
	Env            string `mapstructure:"env"`
	Port           int    `mapstructure:"port"`
	BaseURL        string `mapstructure:"base_url"`
	ShutdownSecond int    `mapstructure:"shutdown_seconds"`
}

type DatabaseConf struct {
	Driver         string `mapstructure:"driver"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	Name           string `mapstructure:"name"`
	SSLMode        string `mapstructure:"sslmode"`
	MaxConns       int    `mapstructure:"max_conns"`
	ConnectSeconds int    `mapstructure:"connect_timeout_seconds"`
}

type StorageConf struct {
	Driver      string `mapstructure:"driver"`
	UploadDir   string `mapstructure:"upload_dir"`
	MaxUploadMB int64  `mapstructure:"max_upload_mb"`
}

type S3Conf struct {
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Endpoint        string `mapstructure:"endpoint"`
}

type JWTConf struct {
	Secret   string `mapstructure:"secret"`
	TTLHours int    `mapstructure:"ttl_hours"`
}

type AdminConf struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type CORSConf struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type Config struct {
	App      AppConf      `mapstructure:"app"`
	Database DatabaseConf `mapstructure:"database"`
	Storage  StorageConf  `mapstructure:"storage"`
	S3       S3Conf       `mapstructure:"s3"`
	JWT      JWTConf      `mapstructure:"jwt"`
	Admin    AdminConf    `mapstructure:"admin"`
	CORS     CORSConf     `mapstructure:"cors"`

	// derived
	ShutdownTimeout time.Duration
	ConnectTimeout  time.Duration
	TokenTTL        time.Duration
}

func (c *Config) Development() bool { return c.App.Env == "development" }

func (c *Config) MaxUploadBytes() int64 { return c.Storage.MaxUploadMB << 20 }

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.base_url", "http://localhost:8080")
	v.SetDefault("app.shutdown_seconds", 15)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "wedding")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.connect_timeout_seconds", 30)

	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.upload_dir", "uploads")
	v.SetDefault("storage.max_upload_mb", 50)

	v.SetDefault("s3.region", "")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.endpoint", "")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.ttl_hours", 24)

	v.SetDefault("admin.username", "")
	v.SetDefault("admin.password", "")

	v.SetDefault("cors.allow_origins", []string{"http://localhost:3000", "http://localhost:5173"})
}

// Load reads defaults, then the optional file at path, then the environment
// (DATABASE_HOST overrides database.host).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.CORS.AllowOrigins = splitNonEmpty(cfg.CORS.AllowOrigins)

	if cfg.App.ShutdownSecond <= 0 {
		cfg.App.ShutdownSecond = 15
	}
	if cfg.JWT.TTLHours <= 0 {
		cfg.JWT.TTLHours = 24
	}
	cfg.ShutdownTimeout = time.Duration(cfg.App.ShutdownSecond) * time.Second
	cfg.ConnectTimeout = time.Duration(cfg.Database.ConnectSeconds) * time.Second
	cfg.TokenTTL = time.Duration(cfg.JWT.TTLHours) * time.Hour

	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt.secret (JWT_SECRET) must be set")
	}
	return &cfg, nil
}

// splitNonEmpty accepts both a YAML list and a comma separated env value.
func splitNonEmpty(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
