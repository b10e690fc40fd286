package reservationService

import (
	"booksly/apperror"
	"booksly/models"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// UpsertSettingInput mirrors the reservation-setting request body.
type UpsertSettingInput struct {
	RegisterMin *int `json:"registerMin"`
	RegisterHr  *int `json:"registerHr"`
	IsAuto      bool `json:"isAuto"`
	MaxCapacity *int `json:"maxCapacity"`
}

// UpsertSetting validates and upserts the one reservation setting a shop may
// have. An existing row is updated in place, preserving its identity. The
// unique index on shop_id closes the check-then-act race: a concurrent create
// that loses surfaces as Conflict rather than a duplicate row.
func UpsertSetting(db *gorm.DB, shopID, ownerID uint, in UpsertSettingInput) (*models.ReservationSetting, error) {
	var shop models.Shop
	if err := db.First(&shop, "id = ? AND is_deleted = false", shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrShopNotFound
		}
		return nil, err
	}
	if shop.OwnerID != ownerID {
		return nil, apperror.ErrShopNotOwned
	}

	if in.RegisterMin == nil && in.RegisterHr == nil {
		return nil, apperror.ErrMissingLeadTime
	}
	if in.IsAuto && in.MaxCapacity == nil {
		return nil, apperror.ErrMissingCapacity
	}

	var setting models.ReservationSetting
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("shop_id = ?", shopID).First(&setting).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		setting.ShopID = shopID
		setting.RegisterMin = in.RegisterMin
		setting.RegisterHr = in.RegisterHr
		setting.IsAutoAccept = in.IsAuto
		setting.MaxCapacity = in.MaxCapacity
		return tx.Save(&setting).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apperror.ErrReservationSettingConflict
		}
		return nil, err
	}
	return &setting, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
