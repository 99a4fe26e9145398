package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret          string
	TokenTTL           time.Duration
	OTPTTL             time.Duration
	StudentEmailDomain string
	SectionMaxLen      int
	ImportMaxRows      int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}

	TokenTTL = time.Duration(GetEnvInt("TOKEN_TTL_HOURS", 168)) * time.Hour
	OTPTTL = time.Duration(GetEnvInt("OTP_TTL_MINUTES", 10)) * time.Minute
	StudentEmailDomain = GetEnv("STUDENT_EMAIL_DOMAIN", "iiitranchi.ac.in")
	SectionMaxLen = GetEnvInt("SECTION_MAX_LEN", 1)
	ImportMaxRows = GetEnvInt("IMPORT_MAX_ROWS", 500)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("⚠️ %s=%q is not a positive integer, using default %d", key, v, defaultValue)
		return defaultValue
	}
	return n
}

// =======================
// SMTP (OTP delivery)
// =======================
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func LoadSMTP() SMTPConfig {
	cfg := SMTPConfig{
		Host: GetEnv("SMTP_HOST", "smtp.gmail.com"),
		Port: GetEnvInt("SMTP_PORT", 587),
		User: GetEnv("SMTP_USER"),
		Pass: GetEnv("SMTP_PASS"),
		From: GetEnv("SMTP_FROM"),
	}
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	if cfg.User == "" {
		log.Println("⚠️ SMTP_USER is not set; OTP emails will fail to send")
	}
	return cfg
}
