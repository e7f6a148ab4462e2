// Comando seed: crea las hojas de la planilla que falten y escribe sus
// encabezados. Es idempotente, las hojas existentes solo se reescriben con
// el encabezado si se pasa --reset.
package main

import (
	"context"
	"flag"

	"github.com/csm-sistemas/controlfin-api/internal/domain/schema"
	"github.com/csm-sistemas/controlfin-api/internal/infrastructure/gsheets"
	"github.com/csm-sistemas/controlfin-api/internal/infrastructure/sheetstore"
	"github.com/csm-sistemas/controlfin-api/pkg/config"
	"github.com/csm-sistemas/controlfin-api/pkg/logger"
)

func main() {
	reset := flag.Bool("reset", false, "reescribe cada hoja dejando solo el encabezado (borra los datos)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	remote, err := gsheets.New(ctx, gsheets.Config{
		CredentialsFile: cfg.Sheets.CredentialsFile,
		SpreadsheetURL:  cfg.Sheets.SpreadsheetURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la planilla")
	}

	schemas := schema.NewRegistry()
	store := sheetstore.New(remote, schemas, sheetstore.Config{Logger: log.Zerolog()})

	for _, name := range schemas.Names() {
		if err := remote.EnsureSheet(ctx, name); err != nil {
			log.Fatal().Err(err).Str("hoja", name).Msg("crear hoja")
		}
		log.Info().Str("hoja", name).Msg("hoja verificada")

		if *reset {
			if err := store.Writer().Overwrite(ctx, name, nil); err != nil {
				log.Fatal().Err(err).Str("hoja", name).Msg("escribir encabezado")
			}
			log.Info().Str("hoja", name).Msg("encabezado reescrito")
		}
	}
	log.Info().Msg("planilla lista")
}
