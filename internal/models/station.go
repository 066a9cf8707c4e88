package models

import "time"

// StationDB represents a kitchen station row.
type StationDB struct {
	StationID   string    `json:"id" db:"station_id"`
	StationName string    `json:"station_name" db:"station_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
