package infra

import (
	"errors"
	"os"
	"strings"
)

// Default admin accounts; override with ADMIN_EMAILS (comma separated).
var defaultAdminEmails = []string{"admin@gmail.com", "admin@example.com"}

// Config carries everything the service constructors need, so no package
// reaches for process-wide state after startup.
type Config struct {
	Port        string
	SecretKey   string
	AdminEmails map[string]bool
	UploadDir   string
}

func LoadConfig() (*Config, error) {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return nil, errors.New("SECRET_KEY is not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	admins := defaultAdminEmails
	if raw := os.Getenv("ADMIN_EMAILS"); raw != "" {
		admins = strings.Split(raw, ",")
	}

	// Emails are normalized to lower case everywhere (registration, login,
	// admin matching), so the set is lower-cased once here.
	adminSet := make(map[string]bool, len(admins))
	for _, email := range admins {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			adminSet[email] = true
		}
	}

	return &Config{
		Port:        port,
		SecretKey:   secret,
		AdminEmails: adminSet,
		UploadDir:   uploadDir,
	}, nil
}
