package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"parkirku_backend/internals/configs"
	blockModel "parkirku_backend/internals/features/parking/block/model"
	bookingModel "parkirku_backend/internals/features/parking/booking/model"
	locationModel "parkirku_backend/internals/features/parking/location/model"
	userModel "parkirku_backend/internals/features/users/user/model"
)

// ConnectDB membuka koneksi PostgreSQL dan mengembalikan handle-nya.
// Handle ini di-inject ke routes/controllers, tidak disimpan sebagai global.
func ConnectDB() (*gorm.DB, error) {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=parkirku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return nil, err
	}
	log.Println("✅ DB connected.")
	return db, nil
}

// Migrate sinkronkan skema lewat GORM AutoMigrate. Dipanggil sekali saat
// startup; aman diulang karena AutoMigrate idempoten.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.VehicleModel{},
		&locationModel.ParkingLocationModel{},
		&blockModel.ParkingBlockModel{},
		&blockModel.ParkingSlotModel{},
		&bookingModel.BookingModel{},
	)
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUp ping ringan supaya pool keisi sebelum trafik masuk.
func WarmUp(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("warm-up err: %v", err)
			return
		}
		if err := sqlDB.Ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
