package configs

import (
	"log"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// สร้าง super admin ครั้งแรก
func SeedSuperAdmin() error {
	db := DB()
	username := getEnv("SUPERADMIN_USERNAME", "")
	email := getEnv("SUPERADMIN_EMAIL", "")
	pass := getEnv("SUPERADMIN_PASSWORD", "")
	if username == "" || email == "" || pass == "" {
		log.Println("skip seeding super admin: missing SUPERADMIN_USERNAME/EMAIL/PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.SuperAdmin{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("super admin already exists:", username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	sa := entity.SuperAdmin{
		SuperAdminName: "Super Admin",
		Username:       username,
		Email:          email,
		Password:       string(hash),
	}
	return db.Create(&sa).Error
}

// Seed แผน subscription เริ่มต้น
func SeedPlans() error {
	db := DB()

	plans := []entity.Plan{
		{
			Name:        "Free",
			Description: "Browse jobs and internships",
			Price:       0,
			Duration:    "unlimited",
			Features:    datatypes.JSON([]byte(`["browse listings","apply with CV"]`)),
		},
		{
			Name:        "Basic",
			Description: "Everything in Free plus application tracking",
			Price:       499,
			Duration:    "3 months",
			Features:    datatypes.JSON([]byte(`["browse listings","apply with CV","application tracking"]`)),
		},
		{
			Name:        "Premium",
			Description: "Everything in Basic plus mock interviews",
			Price:       999,
			Duration:    "6 months",
			Features:    datatypes.JSON([]byte(`["browse listings","apply with CV","application tracking","mock interviews","placement support"]`)),
		},
	}
	for _, p := range plans {
		if err := db.Where(entity.Plan{Name: p.Name}).FirstOrCreate(&p).Error; err != nil {
			return err
		}
	}
	return nil
}
