package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"prode-api/config"
	"prode-api/migrations"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal("Database connection failed:", err)
	}

	migrator, err := migrations.NewMigrator(db)
	if err != nil {
		log.Fatal(err)
	}
	for _, migration := range migrations.All() {
		migrator.AddMigration(migration)
	}

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	command := os.Args[1]

	switch command {
	case "migrate":
		if err := migrator.Migrate(); err != nil {
			log.Fatal("Migration failed:", err)
		}
	case "rollback":
		steps := 1
		if len(os.Args) > 2 {
			if s, err := strconv.Atoi(os.Args[2]); err == nil {
				steps = s
			}
		}
		if err := migrator.Rollback(steps); err != nil {
			log.Fatal("Rollback failed:", err)
		}
	case "status":
		if err := showStatus(migrator); err != nil {
			log.Fatal("Status failed:", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/migrate migrate          - Run pending migrations")
	fmt.Println("  go run ./cmd/migrate rollback [steps] - Rollback migration batches (default: 1)")
	fmt.Println("  go run ./cmd/migrate status           - Show migration status")
}

func showStatus(migrator *migrations.Migrator) error {
	records, err := migrator.Status()
	if err != nil {
		return err
	}
	pending, err := migrator.Pending()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No migrations have been run yet.")
	} else {
		fmt.Println("Migration Status:")
		fmt.Println("Batch | Name")
		fmt.Println("------|-----")
		for _, record := range records {
			fmt.Printf("%-5d | %s\n", record.Batch, record.Name)
		}
	}

	for _, name := range pending {
		fmt.Printf("pending | %s\n", name)
	}
	return nil
}
