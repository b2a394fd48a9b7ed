package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type ServerConfig struct {
	Port          int
	DatabaseURL   string
	JWTSecret     string
	AdminUser     string
	AdminPassHash []byte
	SeedDemoData  bool

	// SMTP settings for the monthly report mail. Empty host disables it.
	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailTo   string
}

var instance *ServerConfig
var once sync.Once

func GetServerConfig() *ServerConfig {
	once.Do(func() {
		instance = &ServerConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Infof("no .env file loaded: %s", err.Error())
		}

		instance.Port = int(getEnvAsInt("PORT", 8080))

		// The default DSN keeps the store session-ephemeral, matching the
		// dashboard's in-memory lifetime. Point it at a file to persist.
		instance.DatabaseURL = getEnv("DATABASE_URL", "file::memory:?cache=shared")

		instance.JWTSecret = getEnv("JWT_SECRET", "")
		if instance.JWTSecret == "" {
			logrus.Fatal("could not get jwt secret")
		}

		instance.AdminUser = getEnv("ADMIN_USER", "admin")
		adminPass := getEnv("ADMIN_PASSWORD", "")
		if adminPass == "" {
			logrus.Fatal("could not get admin password")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
		if err != nil {
			logrus.Fatalf("could not hash admin password: %s", err.Error())
		}
		instance.AdminPassHash = hash

		instance.SeedDemoData = getEnvAsBool("SEED_DEMO_DATA", false)

		instance.MailHost = getEnv("MAIL_HOST", "")
		instance.MailPort = int(getEnvAsInt("MAIL_PORT", 587))
		instance.MailUser = getEnv("MAIL_USER", "")
		instance.MailPass = getEnv("MAIL_PASS", "")
		instance.MailTo = getEnv("MAIL_TO", "")
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
