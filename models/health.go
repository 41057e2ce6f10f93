package models

import "time"

// DatabaseHealth describes the last observed state of the database backend.
type DatabaseHealth struct {
	Connected bool      `json:"connected"`
	CheckedAt time.Time `json:"checked_at"`
}

// Health is the body of GET /api/health.
type Health struct {
	Status      string         `json:"status"`
	Environment string         `json:"environment"`
	Timestamp   time.Time      `json:"timestamp"`
	Database    DatabaseHealth `json:"database"`
}
