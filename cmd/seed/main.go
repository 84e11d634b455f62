// Command seed migrates the schema and inserts the starter catalog plus the
// default admin account. It is idempotent and safe to rerun.
package main

import (
	"log/slog"
	"os"

	"chocoshop/config"
	"chocoshop/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&model.ChocolateModel{},
		&model.CartModel{},
		&model.ContactModel{},
		&model.AdminModel{},
		&model.SessionModel{},
	); err != nil {
		slog.Error("Failed to migrate schema", slog.Any("error", err))
		os.Exit(1)
	}

	if err := seedChocolates(db); err != nil {
		slog.Error("Failed to seed chocolates", slog.Any("error", err))
		os.Exit(1)
	}

	if err := seedAdmin(db, cfg); err != nil {
		slog.Error("Failed to seed admin", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Seed completed")
}

// seedChocolates inserts the starter catalog, but only into an empty table so
// admin edits survive reruns.
func seedChocolates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.ChocolateModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Chocolates already present, skipping", slog.Int64("count", count))

		return nil
	}

	chocolates := []model.ChocolateModel{
		{Name: "Dark Chocolate", Price: "₹120", Img: "images/chocolate1.jpg"},
		{Name: "Milk Chocolate", Price: "₹100", Img: "images/chocolate2.jpg"},
		{Name: "White Chocolate", Price: "₹110", Img: "images/chocolate3.jpg"},
		{Name: "Hazelnut Crunch", Price: "₹150", Img: "images/chocolate4.jpg"},
		{Name: "Caramel Delight", Price: "₹140", Img: "images/chocolate5.jpg"},
		{Name: "Almond Bliss", Price: "₹160", Img: "images/chocolate6.jpg"},
		{Name: "Fruit & Nut", Price: "₹130", Img: "images/chocolate7.jpg"},
		{Name: "Mint Fusion", Price: "₹125", Img: "images/chocolate8.jpg"},
		{Name: "Espresso Dark", Price: "₹170", Img: "images/chocolate9.jpg"},
		{Name: "Double Cocoa", Price: "₹200", Img: "images/chocolate10.jpg"},
	}

	if err := db.Create(&chocolates).Error; err != nil {
		return err
	}

	slog.Info("Seeded chocolates", slog.Int("count", len(chocolates)))

	return nil
}

// seedAdmin creates the default admin account if no row with that username
// exists yet.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&model.AdminModel{}).
		Where("username = ?", defaultAdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Admin already present, skipping", slog.String("username", defaultAdminUsername))

		return nil
	}

	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), cost)
	if err != nil {
		return err
	}

	admin := model.AdminModel{
		Username:     defaultAdminUsername,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	slog.Info("Seeded admin", slog.String("username", defaultAdminUsername))

	return nil
}
