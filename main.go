package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/campusarena/competition-api/cmd/app"
)

// @title           Competition participation API
// @version         1.0
// @description     Registrations, teams, submissions and evaluations of campus competitions.
// @BasePath        /api/v1
//
// @contact.name   Campus Arena platform team
// @contact.email  platform@campusarena.dev
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
