package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cv-intake-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// cvRepository persists candidate records as whole JSON documents:
//
//	CREATE TABLE cvs (
//	    id  TEXT  PRIMARY KEY,
//	    doc JSONB NOT NULL
//	);
//
// The schema-less document keeps the record shape an application concern;
// lookups beyond the primary key use equality on JSON fields. Note there is
// no unique index on doc->>'dni' - the intake usecase serializes on the DNI
// key instead.
type cvRepository struct {
	db *pgxpool.Pool
}

func NewCVRepository(db *pgxpool.Pool) domain.CVRepository {
	return &cvRepository{db: db}
}

func (r *cvRepository) GetByID(ctx context.Context, id string) (*domain.CV, error) {
	var doc []byte
	err := r.db.QueryRow(ctx, `SELECT doc FROM cvs WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return unmarshalCV(id, doc)
}

// FindByDNI returns the first record whose DNI field equals dni, or nil when
// none exists. At most one match is expected.
func (r *cvRepository) FindByDNI(ctx context.Context, dni string) (*domain.CV, error) {
	var (
		id  string
		doc []byte
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, doc FROM cvs WHERE doc->>'dni' = $1 LIMIT 1`, dni).Scan(&id, &doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return unmarshalCV(id, doc)
}

// Create inserts the record under a freshly minted identifier and returns it.
func (r *cvRepository) Create(ctx context.Context, cv *domain.CV) (string, error) {
	id := uuid.NewString()
	doc, err := marshalCV(cv)
	if err != nil {
		return "", err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO cvs (id, doc) VALUES ($1, $2)`, id, doc)
	if err != nil {
		return "", err
	}
	cv.ID = id
	return id, nil
}

// Update replaces the whole document, preserving the identifier.
func (r *cvRepository) Update(ctx context.Context, cv *domain.CV) error {
	doc, err := marshalCV(cv)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `UPDATE cvs SET doc = $2 WHERE id = $1`, cv.ID, doc)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *cvRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cvs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// List returns all records ordered by submission time descending. RFC 3339
// timestamps sort chronologically as text, so the JSON field is usable as an
// ordering key directly.
func (r *cvRepository) List(ctx context.Context) ([]domain.CV, error) {
	rows, err := r.db.Query(ctx, `SELECT id, doc FROM cvs ORDER BY doc->>'uploadedAt' DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cvs := []domain.CV{}
	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, err
		}
		cv, err := unmarshalCV(id, doc)
		if err != nil {
			return nil, err
		}
		cvs = append(cvs, *cv)
	}
	return cvs, rows.Err()
}

// marshalCV serializes the record body; the identifier lives in its own
// column, not inside the document.
func marshalCV(cv *domain.CV) ([]byte, error) {
	body := *cv
	body.ID = ""
	doc, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cv document: %w", err)
	}
	return doc, nil
}

func unmarshalCV(id string, doc []byte) (*domain.CV, error) {
	var cv domain.CV
	if err := json.Unmarshal(doc, &cv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cv document %s: %w", id, err)
	}
	cv.ID = id
	return &cv, nil
}
