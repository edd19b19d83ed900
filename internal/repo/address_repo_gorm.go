package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"user-address-service/internal/domain"
)

type AddressRepo struct{ db *gorm.DB }

func NewAddressRepo(db *gorm.DB) *AddressRepo { return &AddressRepo{db: db} }

func (r *AddressRepo) Create(ctx context.Context, a *domain.Address) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AddressRepo) FindByID(ctx context.Context, id uint) (*domain.Address, error) {
	var a domain.Address
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepo) List(ctx context.Context, pincode string) ([]domain.Address, error) {
	q := r.db.WithContext(ctx).Order("id")
	if pincode != "" {
		q = q.Where("pincode = ?", pincode)
	}
	var addrs []domain.Address
	err := q.Find(&addrs).Error
	return addrs, err
}

func (r *AddressRepo) ListByUserID(ctx context.Context, userID uint) ([]domain.Address, error) {
	var addrs []domain.Address
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&addrs).Error
	return addrs, err
}

func (r *AddressRepo) ListByPincode(ctx context.Context, pincode string) ([]domain.Address, error) {
	var addrs []domain.Address
	err := r.db.WithContext(ctx).Where("pincode = ?", pincode).Order("id").Find(&addrs).Error
	return addrs, err
}

func (r *AddressRepo) Update(ctx context.Context, id uint, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.Address{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *AddressRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Address{})
	return res.RowsAffected, res.Error
}
