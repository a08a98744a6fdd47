package main

import (
	"flag"

	"product-api/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

//go:generate swag init --dir ../ --generalInfo cmd/main.go --output ../docs --outputTypes go

// @title Product Management API
// @version 1.0
// @description APIs for Creating, Reading, Updating, and Deleting Products
// @BasePath /
func main() {
	configPath := flag.String("config", ".env", "path to the .env configuration file")
	flag.Parse()

	// Initialize application with all dependencies
	app, err := bootstrap.New(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	// Run the application
	if err := app.Run(); err != nil {
		logrus.Fatalf("Server stopped with error: %v", err)
	}
}
