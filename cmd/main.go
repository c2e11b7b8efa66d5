package main

import (
	"os"

	"user-admin-service/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize application with all dependencies
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	// Run the requested command
	if err := app.Run(os.Args[1:]); err != nil {
		logrus.Fatalf("Command failed: %v", err)
	}
}
