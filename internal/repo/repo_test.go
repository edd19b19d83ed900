package repo_test

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"user-address-service/internal/domain"
	"user-address-service/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Address{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func mustCreateUser(t *testing.T, users *repo.UserRepo, email string) *domain.User {
	t.Helper()
	u := &domain.User{FirstName: "Ann", LastName: "Lee", Email: email}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func mustCreateAddress(t *testing.T, addrs *repo.AddressRepo, userID uint, pincode string) *domain.Address {
	t.Helper()
	a := &domain.Address{
		UserID:  userID,
		Street:  "Main St",
		City:    "Pune",
		State:   "MH",
		Pincode: pincode,
	}
	if err := addrs.Create(context.Background(), a); err != nil {
		t.Fatalf("create address: %v", err)
	}
	return a
}
