package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/urfave/cli/v2"

	"studycards/internal/datastore"
	"studycards/internal/models"
	"studycards/internal/services"
)

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	app := &cli.App{
		Name: "migrate",
		Commands: []*cli.Command{
			commandMigration(),
			commandConfigMigration(),
			commandSeedCatalog(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandMigration() *cli.Command {
	return &cli.Command{
		Name: "migrate",
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableStudyUser(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableItemCategory(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableItemModel(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableCollectedItem(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableConfig(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			log.Println("migration done")
			return nil
		},
	}
}

func commandConfigMigration() *cli.Command {
	return &cli.Command{
		Name:        "migrate-config",
		Description: "Insert default configs to db",
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			configs := []models.Config{
				{Key: services.CONFIG_SERVER_MODE, Value: "production"},
				{Key: services.CONFIG_STUDY_REPORT_LIMIT_PER_MINUTE, Value: "12"},
				{Key: services.CONFIG_CRONJOB_TIME_STREAK_SWEEP, Value: "5 0 * * *"},
			}

			for _, config := range configs {
				err = datastore.InsertConfig(ctx, db, config)
				if err != nil {
					log.Println(config.Key, err)
				}
			}

			return nil
		},
	}
}

type catalogFile struct {
	Categories []*models.ItemCategory `json:"categories"`
	Models     []*models.ItemModel    `json:"models"`
}

func commandSeedCatalog() *cli.Command {
	return &cli.Command{
		Name:        "seed-catalog",
		Description: "Upsert item categories and models from a JSON file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "path to the catalog JSON file",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			raw, err := os.ReadFile(c.String("input"))
			if err != nil {
				return err
			}

			var catalog catalogFile
			if err := json.Unmarshal(raw, &catalog); err != nil {
				return err
			}

			for _, category := range catalog.Categories {
				if err := datastore.UpsertItemCategory(ctx, db, category); err != nil {
					return err
				}
				log.Println("category:", category.CategoryID)
			}

			for _, model := range catalog.Models {
				if err := datastore.UpsertItemModel(ctx, db, model); err != nil {
					return err
				}
				log.Println("model:", model.ModelID)
			}

			log.Printf("seeded %d categories, %d models\n", len(catalog.Categories), len(catalog.Models))
			return nil
		},
	}
}

func getDb() (*bun.DB, error) {
	//nolint:errcheck
	godotenv.Load()
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(os.Getenv("DB_DSN")),
		pgdriver.WithPassword(os.Getenv("DB_PASSWORD")),
	))

	return bun.NewDB(sqldb, pgdialect.New()), nil
}
