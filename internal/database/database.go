package database

import (
	"fmt"
	"time"

	"property-portfolio/internal/config"
	"property-portfolio/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the shared gorm handle. It is built once at startup and injected
// into every repository; the underlying pool is safe for concurrent use.
type DB struct {
	db *gorm.DB
}

// New opens a database connection based on configuration
func New(cfg config.DatabaseConfig) (*DB, error) {
	var dialector gorm.Dialector

	switch cfg.Type {
	case "mysql":
		mc := cfg.MySQL
		port := mc.Port
		if port == 0 {
			port = 3306
		}
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			mc.User, mc.Password, mc.Host, port, mc.Database)
		dialector = mysql.Open(dsn)
	case "sqlite", "":
		path := cfg.SQLite.Path
		if path == "" {
			path = "portfolio.db"
		}
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	// Test connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &DB{db: db}, nil
}

// NewFromGorm wraps an existing gorm.DB instance
func NewFromGorm(db *gorm.DB) *DB {
	return &DB{db: db}
}

// Gorm returns the underlying gorm.DB instance
func (d *DB) Gorm() *gorm.DB {
	return d.db
}

func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InitSchema creates tables using GORM AutoMigrate
func (d *DB) InitSchema() error {
	return d.db.AutoMigrate(
		&models.Owner{},
		&models.OwnerImage{},
		&models.Property{},
		&models.PropertyImage{},
		&models.PropertyTrace{},
	)
}
