package domain

import (
	"context"
	"time"
)

// Address belongs to one User via UserID. The column carries no database
// foreign-key constraint: deleting a user leaves its addresses in place,
// which is the documented behavior of this service.
type Address struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Street    string    `gorm:"size:255;not null" json:"street"`
	City      string    `gorm:"size:128;not null" json:"city"`
	State     string    `gorm:"size:128;not null" json:"state"`
	Block     string    `gorm:"size:64" json:"block,omitempty"`
	Pincode   string    `gorm:"size:6;not null" json:"pincode"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Address) TableName() string { return "addresses" }

type AddressRepository interface {
	Create(ctx context.Context, a *Address) error
	// FindByID returns (nil, nil) when no row matches.
	FindByID(ctx context.Context, id uint) (*Address, error)
	// List returns all addresses; a non-empty pincode filters by exact match.
	List(ctx context.Context, pincode string) ([]Address, error)
	ListByUserID(ctx context.Context, userID uint) ([]Address, error)
	ListByPincode(ctx context.Context, pincode string) ([]Address, error)
	// Update applies only the given columns; returns rows affected.
	Update(ctx context.Context, id uint, fields map[string]any) (int64, error)
	// Delete returns rows affected; 0 means the row did not exist.
	Delete(ctx context.Context, id uint) (int64, error)
}
