package domain

import (
	"context"
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:64;not null" json:"first_name"`
	LastName  string    `gorm:"size:64;not null" json:"last_name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Addresses []Address `gorm:"foreignKey:UserID" json:"addresses,omitempty"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	// FindByID returns (nil, nil) when no row matches. Addresses are loaded.
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// List returns all users with their addresses.
	List(ctx context.Context) ([]User, error)
	// ListOnly returns all users, core columns only.
	ListOnly(ctx context.Context) ([]User, error)
	// ListWithoutAddresses returns users that own zero address rows.
	ListWithoutAddresses(ctx context.Context) ([]User, error)
	// Update applies only the given columns; returns rows affected.
	Update(ctx context.Context, id uint, fields map[string]any) (int64, error)
	// Delete returns rows affected; 0 means the row did not exist.
	Delete(ctx context.Context, id uint) (int64, error)
}
