package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	path := flag.String("path", "migrations", "directory with migration files")
	down := flag.Bool("down", false, "roll back all migrations")
	flag.Parse()

	url := os.Getenv("POSTGRESQL_URL")
	if url == "" {
		fmt.Fprintln(os.Stderr, "error: POSTGRESQL_URL must be set")
		os.Exit(1)
	}

	m, err := migrate.New("file://"+*path, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	version, dirty, _ := m.Version()
	fmt.Printf("Migrations applied, version %d, dirty %v\n", version, dirty)
}
