package main

import (
	"time"

	"github.com/placehub/placehub/config"
	"github.com/placehub/placehub/models"
	"github.com/placehub/placehub/routes"
	"github.com/placehub/placehub/seeder"
	"github.com/placehub/placehub/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}
	defer utils.Logger.Sync()

	db := config.InitDatabase(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Album{},
		&models.Photo{},
		&models.Todo{},
	)

	client := seeder.NewClient(cfg.SeedBaseURL, time.Duration(cfg.SeedTimeoutSec)*time.Second)
	seed := seeder.New(db, client)

	router := routes.SetupRouter(cfg, db, seed)

	addr := ":" + cfg.AppPort
	utils.Sugar.Infof("listening on %s", addr)
	if err := utils.GraceServer(addr, router); err != nil {
		utils.Sugar.Fatalf("server exited: %v", err)
	}
}
