package main

import (
	"context"
	"fmt"
	"net/http"

	"biltyledger/config"
	"biltyledger/db"
	"biltyledger/db/mongo"
	"biltyledger/db/postgres"
	"biltyledger/handlers"
	"biltyledger/repository"
	"biltyledger/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var store db.DB
	var biltyRepo repository.BiltyRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		store = pg
		biltyRepo = repository.NewPostgresBiltyRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		store = mg

		repo := repository.NewMongoBiltyRepo(mg.Client)
		if err := repo.EnsureIndexes(context.Background()); err != nil {
			panic(err)
		}
		biltyRepo = repo

	default:
		panic("DB_TYPE not supported")
	}
	defer store.Disconnect()

	biltyHandler := &handlers.BiltyHandler{Repo: biltyRepo}
	pdfHandler := &handlers.PDFHandler{
		Repo:        biltyRepo,
		CompanyName: cfg.CompanyName,
	}

	mux := routes.SetupRoutes(cfg.AllowedOrigins, biltyHandler, pdfHandler)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		panic(err)
	}
}
