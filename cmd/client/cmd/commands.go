package cmd

import (
	"ridejournal/cmd/client/cmd/photos"
	"ridejournal/cmd/client/cmd/rides"
)

func init() {
	// Команды работы с поездками
	rootCmd.AddCommand(rides.RideCmd)

	// Команды работы с фотографиями
	rootCmd.AddCommand(photos.PhotoCmd)

	rootCmd.AddCommand(mapCmd, searchCmd, statusCmd)
}
