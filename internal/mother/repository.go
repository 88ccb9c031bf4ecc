package mother

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error)
	SaveProfile(ctx context.Context, p *Profile) error
	ListProfiles(ctx context.Context) ([]Profile, error)
	SaveAssessment(ctx context.Context, motherID uuid.UUID, assessment any) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	query := `SELECT id, name, phone, age, bmi, location, preferred_language, telegram_chat_id, due_date, created_at, updated_at
		FROM mothers WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)

	var p Profile
	var chatID sql.NullInt64
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Phone,
		&p.Age,
		&p.BMI,
		&p.Location,
		&p.Language,
		&chatID,
		&p.DueDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("mother not found")
		}
		return nil, err
	}
	if chatID.Valid {
		p.TelegramChatID = chatID.Int64
	}
	return &p, nil
}

func (r *postgresRepo) SaveProfile(ctx context.Context, p *Profile) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = time.Now()

	query := `
		INSERT INTO mothers (id, name, phone, age, bmi, location, preferred_language, telegram_chat_id, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = $2,
			phone = $3,
			age = $4,
			bmi = $5,
			location = $6,
			preferred_language = $7,
			telegram_chat_id = $8,
			due_date = $9,
			updated_at = $11
	`
	var chatID sql.NullInt64
	if p.TelegramChatID != 0 {
		chatID = sql.NullInt64{Int64: p.TelegramChatID, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Phone, p.Age, p.BMI, p.Location, p.Language, chatID, p.DueDate, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *postgresRepo) ListProfiles(ctx context.Context) ([]Profile, error) {
	query := `SELECT id, name, phone, age, bmi, location, preferred_language, telegram_chat_id, due_date, created_at, updated_at
		FROM mothers ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		var chatID sql.NullInt64
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Phone, &p.Age, &p.BMI, &p.Location,
			&p.Language, &chatID, &p.DueDate, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if chatID.Valid {
			p.TelegramChatID = chatID.Int64
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// SaveAssessment stores one full assessment result as a JSONB audit record.
// The assessment itself is computed in memory and returned to the caller
// before this runs; persistence failures degrade, they do not fail the call.
func (r *postgresRepo) SaveAssessment(ctx context.Context, motherID uuid.UUID, assessment any) error {
	payload, err := json.Marshal(assessment)
	if err != nil {
		return fmt.Errorf("failed to marshal assessment: %w", err)
	}

	query := `INSERT INTO assessments (id, mother_id, result, created_at) VALUES ($1, $2, $3, $4)`
	_, err = r.db.ExecContext(ctx, query, uuid.New(), motherID, payload, time.Now())
	return err
}
