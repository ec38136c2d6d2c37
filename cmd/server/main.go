package main

import (
	"fmt"
	"log"

	"eizer/internal/config"
	"eizer/internal/database"
	"eizer/internal/email"
	"eizer/internal/server"
)

func main() {
	cfg := config.Load()

	store := database.New(database.Options{
		DSN:           cfg.DBDSN,
		OwnerOpenID:   cfg.OwnerOpenID,
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
	})
	if !store.Available() {
		// keep serving in degraded mode: reads come back empty, writes fail
		log.Println("starting without a reachable database")
	}

	mailer := email.NewMailer()

	r := server.NewRouter(cfg, store, mailer)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
