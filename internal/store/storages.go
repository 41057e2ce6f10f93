package store

import (
	"github.com/greenjets/bladerunner-portal/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository
}

// NewStorages wires all repositories onto a single database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating storages")
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}
