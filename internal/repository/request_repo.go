package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"lawncare"
)

type RequestSQLite struct {
	db *sql.DB
}

func NewRequestSQLite(db *sql.DB) *RequestSQLite { return &RequestSQLite{db: db} }

var _ RequestRepo = (*RequestSQLite)(nil)

const insertRequestSQL = `
	INSERT INTO support_requests (id, name, email, department, priority, subject, description, submitted_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

// Insert stores a new support request. SubmittedAt is persisted as UTC; set
// to now when zero.
func (r *RequestSQLite) Insert(ctx context.Context, req lawncare.SupportRequest) error {
	ts := req.SubmittedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertRequestSQL,
		req.RequestID,
		req.Name,
		req.Email,
		req.Department,
		req.Priority,
		req.Subject,
		req.Description,
		ts,
	)
	return err
}

// List returns requests matching the filter, oldest first.
func (r *RequestSQLite) List(ctx context.Context, f RequestFilter) ([]lawncare.SupportRequest, error) {
	var (
		conds []string
		args  []any
	)
	if p := strings.TrimSpace(f.Priority); p != "" {
		conds = append(conds, "priority = ?")
		args = append(args, p)
	}
	if d := strings.TrimSpace(f.Department); d != "" {
		conds = append(conds, "department = ?")
		args = append(args, d)
	}

	q := `SELECT id, name, email, department, priority, subject, description, submitted_at FROM support_requests`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY submitted_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]lawncare.SupportRequest, 0, 32)
	for rows.Next() {
		var req lawncare.SupportRequest
		if err := rows.Scan(
			&req.RequestID,
			&req.Name,
			&req.Email,
			&req.Department,
			&req.Priority,
			&req.Subject,
			&req.Description,
			&req.SubmittedAt,
		); err != nil {
			return nil, err
		}
		req.SubmittedAt = req.SubmittedAt.UTC()
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
