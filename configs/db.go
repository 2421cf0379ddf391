package configs

import (
	"fmt"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB เปิด connection ตาม DB_DRIVER (sqlite สำหรับ dev, mysql สำหรับ prod)
func ConnectionDB(cfg *Config) error {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "mysql":
		database, err = gorm.Open(mysql.Open(cfg.DBSource), &gorm.Config{})
	case "sqlite":
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

func SetupDatabase() error {

	// Migrate the schema
	return db.AutoMigrate(
		&entity.SuperAdmin{}, &entity.Admin{}, &entity.User{},
		&entity.PendingPost{},
		&entity.Job{}, &entity.Internship{},
		&entity.Form{},
		&entity.Plan{}, &entity.Payment{},
		&entity.Placement{}, &entity.MockInterview{},
		&entity.ForgotPasswordOtp{},
	)
}
