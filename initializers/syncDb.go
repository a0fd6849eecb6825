package initializers

import (
	"github.com/ecobites/ecobites-api/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.FoodDonation{},
		&models.FoodItem{},
		&models.NonFoodDonation{},
		&models.NonFoodItem{},
		&models.PickupRequest{},
	)
	if err != nil {
		Log.Fatal("Database migration failed: ", err)
	}
	Log.Println("Database synced successfully.")
}
