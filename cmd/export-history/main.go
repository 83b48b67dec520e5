package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"contactcleaner/pkg/database"
)

func main() {
	var (
		out = flag.String("out", "data/clean_jobs.csv", "output CSV path for job history")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db, database.DefaultSchemaPath); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := exportJobs(ctx, db, *out); err != nil {
		log.Fatalf("export job history failed: %v", err)
	}

	log.Printf("✅ exported job history to %s", *out)
}

func exportJobs(ctx context.Context, db *sql.DB, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "user_id", "filename", "source_type", "total_records", "unique_contacts", "duplicates", "rejected", "created_at"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT id, user_id, filename, source_type, total_records, unique_contacts, duplicates, rejected, created_at
        FROM clean_jobs
        ORDER BY created_at DESC
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id             string
			userID         string
			filename       string
			sourceType     string
			totalRecords   int64
			uniqueContacts int64
			duplicates     int64
			rejected       int64
			createdAt      sql.NullTime
		)

		if err := rows.Scan(&id, &userID, &filename, &sourceType, &totalRecords, &uniqueContacts, &duplicates, &rejected, &createdAt); err != nil {
			return err
		}

		created := ""
		if createdAt.Valid {
			created = createdAt.Time.Format(time.RFC3339)
		}

		if err := w.Write([]string{
			id,
			userID,
			filename,
			sourceType,
			strconv.FormatInt(totalRecords, 10),
			strconv.FormatInt(uniqueContacts, 10),
			strconv.FormatInt(duplicates, 10),
			strconv.FormatInt(rejected, 10),
			created,
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}
