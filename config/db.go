package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"charter-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "charter_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase ensures the default admin, the default site settings and the
// fixed four-offering service catalog exist. Idempotent.
func SeedDatabase() {
	// ---------------- Admin ----------------
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		email := envOrDefault("ADMIN_EMAIL", "admin@charter.local")
		password := envOrDefault("ADMIN_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin",
				Email:    email,
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Site settings ----------------
	defaults := map[string]string{
		"site_name":      "Charter del Golfo",
		"hero_image":     "/uploads/defaults/hero.jpg",
		"contact_phone":  "+39 333 000 0000",
		"contact_email":  "info@charter.local",
		"instagram_url":  "",
		"facebook_url":   "",
		"whatsapp_phone": "",
		"theme":          "classic",
	}
	for key, value := range defaults {
		var count int64
		DB.Model(&models.SiteSetting{}).Where("setting_key = ?", key).Count(&count)
		if count == 0 {
			if err := DB.Create(&models.SiteSetting{Key: key, Value: value}).Error; err != nil {
				log.Printf("warning: failed to seed setting %s: %v", key, err)
			}
		}
	}

	// ---------------- Service catalog ----------------
	var svcCount int64
	DB.Model(&models.Service{}).Count(&svcCount)
	if svcCount == 0 {
		offerings := []models.Service{
			{Slug: "skipper", Name: "Skipper professionista", NameEn: "Professional skipper", Icon: "captain", DisplayOrder: 1, IsActive: true},
			{Slug: "aperitivo-in-barca", Name: "Aperitivo in barca", NameEn: "Aperitivo on board", Icon: "cocktail", DisplayOrder: 2, IsActive: true},
			{Slug: "eventi", Name: "Eventi privati", NameEn: "Private events", Icon: "party", DisplayOrder: 3, IsActive: true},
			{Slug: "tour-della-costa", Name: "Tour della costa", NameEn: "Coast tours", Icon: "map", DisplayOrder: 4, IsActive: true},
		}
		if err := DB.Create(&offerings).Error; err != nil {
			log.Printf("warning: failed to seed service catalog: %v", err)
		} else {
			log.Println("Service catalog seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.AdminSession{},
		&models.SiteSetting{},
		&models.Boat{},
		&models.Booking{},
		&models.Customer{},
		&models.Article{},
		&models.Service{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
