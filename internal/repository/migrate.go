package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table this package persists to.
// Used by cmd/seed and the test suites; production schemas are managed the
// same way on boot.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&addressModel{},
		&placeModel{},
		&equipmentModel{},
		&rentModel{},
		&rentScheduleModel{},
		&ratingModel{},
	)
}
