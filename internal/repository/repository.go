package repository

import (
	"context"
	"database/sql"
	"time"

	"lawncare"
	"lawncare/internal/repository/db"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*lawncare.User, error)
}

// RequestRepo persists support requests submitted through the intake system.
type RequestRepo interface {
	Insert(ctx context.Context, r lawncare.SupportRequest) error
	List(ctx context.Context, f RequestFilter) ([]lawncare.SupportRequest, error)
}

// RequestFilter narrows support request listing; zero values match all.
type RequestFilter struct {
	Priority   string
	Department string
}

// EventRepo is the append-only log of timer lifecycle events.
type EventRepo interface {
	Append(ctx context.Context, e lawncare.TimerEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]lawncare.TimerEvent, error)
}

type Repository struct {
	Requests RequestRepo
	Events   EventRepo
	Auth     Authorization
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Requests: NewRequestSQLite(sqlDB),
		Events:   NewEventSQLite(sqlDB),
		Auth:     NewUserRepository(sqlDB),
	}
}

// InitDB opens the SQLite database and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
