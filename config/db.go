package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dropu-backend/models"
	"dropu-backend/utils"
)

var DB *gorm.DB

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

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "root")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "dropudb")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedSuperAdmin ensures one super admin account exists. Credentials come
// from env; defaults only make sense for local development.
func SeedSuperAdmin() {
	var count int64
	DB.Model(&models.Admin{}).Where("role = ?", models.RoleSuperAdmin).Count(&count)
	if count > 0 {
		log.Println("Super admin already exists")
		return
	}

	email := utils.EnvOrDefault("SUPER_ADMIN_EMAIL", "super@dropu.local")
	password := utils.EnvOrDefault("SUPER_ADMIN_PASSWORD", "changeme")
	name := utils.EnvOrDefault("SUPER_ADMIN_NAME", "Super Admin")

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("warning: failed to hash super admin password: %v", err)
		return
	}

	admin := models.Admin{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleSuperAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("warning: failed to create super admin: %v", err)
		return
	}
	log.Printf("Super admin seeded (%s)", utils.MaskEmail(email))
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

	// AutoMigrate in parent->child order.
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.Rider{},
		&models.Agent{},
		&models.Customer{},
		&models.Issue{},
		&models.Feedback{},
		&models.VerificationCode{},
		&models.ResetToken{},
	); err != nil {
		return err
	}

	SeedSuperAdmin()
	return nil
}
