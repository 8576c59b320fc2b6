package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/labstock-backend/internal/domain/inventory"
)

// Pre-web databases named concentration columns differently and predate the
// supplier/notes fields. Each rename maps a legacy column onto the current
// schema; date_created becomes preparation_date because the desktop app
// stored the prep date there.
var legacyRenames = []struct {
	from, to string
}{
	{"concentration", "stock_concentration"},
	{"conc_unit", "stock_unit"},
	{"date_created", "preparation_date"},
}

func main() {
	var dbPath string
	var dryRun bool
	flag.StringVar(&dbPath, "db", "lab_management.db", "path to the sqlite database file")
	flag.BoolVar(&dryRun, "dry-run", false, "print planned changes without applying them")
	flag.Parse()

	if _, err := os.Stat(dbPath); err != nil {
		fmt.Printf("database not found: %s\n", dbPath)
		os.Exit(1)
	}

	if !dryRun {
		backup := filepath.Join(
			filepath.Dir(dbPath),
			fmt.Sprintf("lab_management_backup_%s.db", time.Now().Format("20060102_150405")),
		)
		if err := copyFile(dbPath, backup); err != nil {
			fmt.Printf("create backup: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("backed up %s -> %s\n", dbPath, backup)
	}

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{Logger: gormLog})
	if err != nil {
		fmt.Printf("open database: %v\n", err)
		os.Exit(1)
	}

	migrator := db.Migrator()
	if !migrator.HasTable("drugs") {
		fmt.Printf("no drugs table in %s\n", dbPath)
		os.Exit(1)
	}

	var before int64
	if err := db.Table("drugs").Count(&before).Error; err != nil {
		fmt.Printf("count records: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("found %d records in drugs table\n", before)

	existing, err := tableColumns(db, "drugs")
	if err != nil {
		fmt.Printf("inspect schema: %v\n", err)
		os.Exit(1)
	}

	renamed := 0
	for _, r := range legacyRenames {
		switch {
		case !existing[r.from]:
			continue
		case existing[r.to]:
			// Both generations present. Backfill empty targets from the
			// legacy column instead of renaming over live data.
			if dryRun {
				fmt.Printf("[dry-run] backfill %s from %s\n", r.to, r.from)
				continue
			}
			res := db.Exec(
				fmt.Sprintf("UPDATE drugs SET %s = %s WHERE %s IS NULL OR %s = ''", r.to, r.from, r.to, r.to),
			)
			if res.Error != nil {
				fmt.Printf("backfill %s: %v\n", r.to, res.Error)
				os.Exit(1)
			}
			fmt.Printf("backfilled %s from %s (%d rows)\n", r.to, r.from, res.RowsAffected)
		default:
			if dryRun {
				fmt.Printf("[dry-run] rename column %s -> %s\n", r.from, r.to)
				continue
			}
			if err := migrator.RenameColumn("drugs", r.from, r.to); err != nil {
				fmt.Printf("rename %s: %v\n", r.from, err)
				os.Exit(1)
			}
			fmt.Printf("renamed column %s -> %s\n", r.from, r.to)
			renamed++
			delete(existing, r.from)
			existing[r.to] = true
		}
	}

	added := 0
	for _, col := range modelColumns(db) {
		if existing[col] {
			continue
		}
		if dryRun {
			fmt.Printf("[dry-run] add column %s\n", col)
			continue
		}
		if err := migrator.AddColumn(&inventory.Drug{}, col); err != nil {
			fmt.Printf("add column %s: %v\n", col, err)
			os.Exit(1)
		}
		fmt.Printf("added column %s\n", col)
		added++
	}

	if dryRun {
		fmt.Println("[dry-run] no changes applied")
		return
	}

	coerced, err := coerceConcentrations(db)
	if err != nil {
		fmt.Printf("coerce concentrations: %v\n", err)
		os.Exit(1)
	}
	if coerced > 0 {
		fmt.Printf("coerced %d concentration values\n", coerced)
	}

	var after int64
	if err := db.Table("drugs").Count(&after).Error; err != nil {
		fmt.Printf("verify records: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("migration complete: %d columns renamed, %d added, %d records verified\n", renamed, added, after)
	if after != before {
		fmt.Printf("record count changed during migration (%d -> %d)\n", before, after)
		os.Exit(1)
	}
}

// tableColumns reads the live column set straight from sqlite so the plan
// reflects the file on disk rather than the model.
func tableColumns(db *gorm.DB, table string) (map[string]bool, error) {
	var names []string
	if err := db.Raw("SELECT name FROM pragma_table_info(?)", table).Scan(&names).Error; err != nil {
		return nil, err
	}
	cols := make(map[string]bool, len(names))
	for _, n := range names {
		cols[n] = true
	}
	return cols, nil
}

func modelColumns(db *gorm.DB) []string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(&inventory.Drug{}); err != nil {
		return nil
	}
	return stmt.Schema.DBNames
}

// coerceConcentrations turns text concentration values into REAL so the
// nullable float column scans cleanly. Values with a numeric prefix keep the
// number ("10 mM" -> 10); anything else becomes NULL, matching how the
// desktop importer treated unparseable concentrations.
func coerceConcentrations(db *gorm.DB) (int64, error) {
	res := db.Exec(`UPDATE drugs
		SET stock_concentration = CAST(stock_concentration AS REAL)
		WHERE typeof(stock_concentration) = 'text'
		  AND stock_concentration GLOB '*[0-9]*'`)
	if res.Error != nil {
		return 0, res.Error
	}
	coerced := res.RowsAffected

	res = db.Exec(`UPDATE drugs
		SET stock_concentration = NULL
		WHERE typeof(stock_concentration) = 'text'`)
	if res.Error != nil {
		return coerced, res.Error
	}
	return coerced + res.RowsAffected, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
