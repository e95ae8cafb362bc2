package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/adnangitonga/diagnoxis/internal/pkg/database"
	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
)

// DirectoryRepo implements directory.DirectoryRepo over PostgreSQL and Redis
type DirectoryRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewDirectoryRepo creates a new directory repository instance
func NewDirectoryRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *DirectoryRepo {
	return &DirectoryRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
