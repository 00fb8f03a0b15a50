package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/internal/repository"
)

type noteRepository struct {
	db *sqlx.DB
}

func NewNoteRepository(db *sqlx.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	query := r.db.Rebind(`
		INSERT INTO notes (patient_id, note, created_by, created_at)
		VALUES (?, ?, ?, ?) RETURNING id
	`)
	note.CreatedAt = time.Now().UTC()

	err := r.db.QueryRowContext(ctx, query,
		note.PatientID, note.Note, note.CreatedBy, note.CreatedAt,
	).Scan(&note.ID)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

func (r *noteRepository) List(ctx context.Context) ([]*model.Note, error) {
	query := `
		SELECT n.id, n.patient_id, p.name AS patient_name, n.note, n.created_by, n.created_at
		FROM notes n
		JOIN patients p ON p.id = n.patient_id
		ORDER BY n.id DESC
	`

	notes := []*model.Note{}
	if err := r.db.SelectContext(ctx, &notes, query); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}
