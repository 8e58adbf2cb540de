package main

import (
	"fmt"
	"os"
)

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}

// checkDriver rejects databases the migrations are not written for. SQLite
// stores create their tables when opened.
func checkDriver(driver string) error {
	if driver != "postgres" {
		return fmt.Errorf("migrations target postgres, configured driver is %q", driver)
	}
	return nil
}
