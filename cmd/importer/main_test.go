package main

import (
	"strings"
	"testing"
	"time"

	"poi-finder-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	now := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)

	t.Run("valid rows", func(t *testing.T) {
		input := "user_id,query,display_name,lat,lon,created_at\n" +
			"user-1,Hội An,\"Hội An, Quảng Nam\",15.8801,108.338,2026-09-01T10:00:00Z\n" +
			"user-2,Đà Lạt,Đà Lạt,11.9404,108.4583,\n"

		records, err := parseCSV(strings.NewReader(input), now)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "user-1", records[0].UserID)
		assert.Equal(t, "Hội An, Quảng Nam", records[0].DisplayName)
		assert.Equal(t, models.Coordinate{Lat: 15.8801, Lon: 108.338}, records[0].Center)
		assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), records[0].CreatedAt)
		assert.Equal(t, now, records[1].CreatedAt)
	})

	tests := []struct {
		name    string
		row     string
		wantErr string
	}{
		{"too few columns", "user-1,Hội An,Hội An,15.88", "invalid record length"},
		{"missing user", ",Hội An,Hội An,15.88,108.33,", "user_id is empty"},
		{"bad latitude", "user-1,Hội An,Hội An,abc,108.33,", "invalid latitude"},
		{"bad longitude", "user-1,Hội An,Hội An,15.88,xyz,", "invalid longitude"},
		{"out of range", "user-1,Hội An,Hội An,95,108.33,", "coordinate out of range"},
		{"bad timestamp", "user-1,Hội An,Hội An,15.88,108.33,yesterday", "invalid created_at"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCSV(strings.NewReader("header\n"+tt.row+"\n"), now)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("empty file", func(t *testing.T) {
		_, err := parseCSV(strings.NewReader(""), now)
		assert.Error(t, err)
	})
}
