package main

import (
	"flag"

	migrate "github.com/golang-migrate/migrate/v4"
	// Enregistrent le driver postgres et la source file de golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/anmolvishvas/gestion-entreprise-sub000/pkg/config"
	"github.com/anmolvishvas/gestion-entreprise-sub000/pkg/logger"
)

// Applique (ou annule avec -down) les migrations SQL du dossier migrations/.
func main() {
	down := flag.Bool("down", false, "annuler la dernière migration au lieu d'appliquer")
	source := flag.String("source", "file://migrations", "source des migrations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration : " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	m, err := migrate.New(*source, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("initialiser golang-migrate")
	}
	defer m.Close()

	if *down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}
	if err != nil && err != migrate.ErrNoChange {
		log.Fatal().Err(err).Msg("exécuter les migrations")
	}
	log.Info().Bool("down", *down).Msg("migrations terminées")
}
