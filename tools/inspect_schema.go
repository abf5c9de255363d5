package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/localnerve/appearancedb/internal/database"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Prints the tables AutoMigrate creates, using an in-memory SQLite database
func main() {
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "log gorm statements")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	if verbose {
		db = db.Debug()
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	var tables []string
	db.Raw("SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name").Scan(&tables)

	zlog := zap.NewExample()
	defer func() { _ = zlog.Sync() }()
	zlog.Info("migrated schema", zap.Int("tables", len(tables)))

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		var ddl string
		db.Raw("SELECT sql FROM sqlite_master WHERE name = ?", table).Scan(&ddl)
		fmt.Println(ddl)

		var indexes []string
		db.Raw("SELECT sql FROM sqlite_master WHERE type='index' AND tbl_name = ? AND sql IS NOT NULL", table).Scan(&indexes)
		for _, idx := range indexes {
			fmt.Println(idx)
		}
	}
}
