package repository

import (
	"context"

	"event-voting-backend/internal/database/models"

	"gorm.io/gorm"
)

// DeviceRepository handles database operations for voter devices
type DeviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository creates a new device repository
func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

// GetByHash retrieves a device by its hash
func (r *DeviceRepository) GetByHash(ctx context.Context, deviceHash string) (*models.Device, error) {
	var device models.Device
	err := r.db.WithContext(ctx).First(&device, "device_hash = ?", deviceHash).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

// Create registers a device. A device is never renamed once created.
// Votes register first-time devices through VoteRepository.Insert; Create completes the
// device store interface and is used to seed fixtures.
func (r *DeviceRepository) Create(ctx context.Context, device *models.Device) error {
	err := r.db.WithContext(ctx).Create(device).Error
	if isUniqueViolation(err, devicePrimaryKey) {
		return ErrDeviceExists
	}
	return err
}

// DeleteAll removes every device. Votes must be removed first.
func (r *DeviceRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Device{})
	return result.RowsAffected, result.Error
}
