package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"poi-finder-api/internal/config"
	"poi-finder-api/internal/models"
	"poi-finder-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Expected columns: user_id, query, display_name, lat, lon, created_at (RFC 3339)
const columns = 6

func main() {
	file := flag.String("file", "", "Path to the search history CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	f, err := os.Open(*file)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	records, err := parseCSV(f, time.Now())
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	_ = godotenv.Load()
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.DBSource == "" {
		fmt.Println("Error: DB_SOURCE is not set")
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	inserted, err := repo.ImportSearches(ctx, records)
	if err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records\n", inserted)
}

// parseCSV reads history rows after the header line. Rows without a
// created_at get now.
func parseCSV(r io.Reader, now time.Time) ([]models.SearchRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []models.SearchRecord
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < columns-1 {
			return nil, fmt.Errorf("line %d: invalid record length: %d, expected at least %d columns", line, len(record), columns-1)
		}

		userID := strings.TrimSpace(record[0])
		if userID == "" {
			return nil, fmt.Errorf("line %d: user_id is empty", line)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, record[3])
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, record[4])
		}

		center := models.Coordinate{Lat: lat, Lon: lon}
		if !center.Valid() {
			return nil, fmt.Errorf("line %d: coordinate out of range: %f,%f", line, lat, lon)
		}

		createdAt := now
		if len(record) >= columns && strings.TrimSpace(record[5]) != "" {
			createdAt, err = time.Parse(time.RFC3339, strings.TrimSpace(record[5]))
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid created_at: %s", line, record[5])
			}
		}

		records = append(records, models.SearchRecord{
			UserID:      userID,
			Query:       record[1],
			DisplayName: record[2],
			Center:      center,
			CreatedAt:   createdAt,
		})
	}

	return records, nil
}
