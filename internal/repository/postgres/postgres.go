package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/nixjke/baz-car/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.CartRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:             db,
		CartRepository: NewCartRepository(db),
	}
}
