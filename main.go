package main

import (
	"github.com/supanugit/Blog-Frontend/api"
	"github.com/supanugit/Blog-Frontend/config"
	"github.com/supanugit/Blog-Frontend/routes"
	"github.com/supanugit/Blog-Frontend/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	client, err := api.New(cfg.BackendURL, cfg.SessionCookieName)
	if err != nil {
		utils.Sugar.Fatalf("invalid backend url %q: %v", cfg.BackendURL, err)
	}

	r := routes.SetupRouter(client)

	utils.Sugar.Infof("Starting server on port %s (graceful), backend %s", cfg.AppPort, cfg.BackendURL)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
