package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env                string
		Build              string
		Debug              bool
		TestMode           bool
		AppName            string
		SecretKey          string
		JWTExpirationDelta time.Duration
		BoardTTL           time.Duration
		RollbarToken       string
		DefaultFromEmail   string
		Server             ServerConfig
		OAuth              OAuthConfig
	}

	ServerConfig struct {
		Host            string
		Address         string
		DebugHost       string
		DisableReqLogs  bool
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
	}

	OAuthConfig struct {
		CallbackBaseURL    string
		GoogleClientID     string
		GoogleClientSecret string
		GitLabClientID     string
		GitLabClientSecret string
	}
)

// NewConfig loads the app configuration: defaults, then `config/.env.<env>` (if any), then env vars.
// Env vars are prefixed with the current env, e.g. `PROD_SECRETKEY`.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("build", "develop")
	v.SetDefault("appName", "Campus Connect")
	v.SetDefault("secretKey", "k2#9xq!lw0)rv4$c&8az^m=e7(tt1@huyo5%b_dj3s+p6nf")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("boardTTL", 12*time.Hour)
	v.SetDefault("rollbarToken", "")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.debugHost", ":4000")
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("server.readTimeout", 5*time.Second)
	v.SetDefault("server.writeTimeout", 5*time.Second)
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("oauth.callbackBaseURL", "http://localhost:8000/v1/auth")
	v.SetDefault("oauth.googleClientID", "")
	v.SetDefault("oauth.googleClientSecret", "")
	v.SetDefault("oauth.gitlabClientID", "")
	v.SetDefault("oauth.gitlabClientSecret", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	case "QA", "PROD":
		v.SetDefault("debug", false)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		Env:                env,
		Build:              v.GetString("build"),
		Debug:              v.GetBool("debug"),
		TestMode:           v.GetBool("testMode"),
		AppName:            v.GetString("appName"),
		SecretKey:          v.GetString("secretKey"),
		JWTExpirationDelta: v.GetDuration("jwtExpirationDelta"),
		BoardTTL:           v.GetDuration("boardTTL"),
		RollbarToken:       v.GetString("rollbarToken"),
		DefaultFromEmail:   v.GetString("defaultFromEmail"),
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Address:         v.GetString("server.address"),
			DebugHost:       v.GetString("server.debugHost"),
			DisableReqLogs:  v.GetBool("server.disableReqLogs"),
			ReadTimeout:     v.GetDuration("server.readTimeout"),
			WriteTimeout:    v.GetDuration("server.writeTimeout"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
		},
		OAuth: OAuthConfig{
			CallbackBaseURL:    v.GetString("oauth.callbackBaseURL"),
			GoogleClientID:     v.GetString("oauth.googleClientID"),
			GoogleClientSecret: v.GetString("oauth.googleClientSecret"),
			GitLabClientID:     v.GetString("oauth.gitlabClientID"),
			GitLabClientSecret: v.GetString("oauth.gitlabClientSecret"),
		},
	}
}
