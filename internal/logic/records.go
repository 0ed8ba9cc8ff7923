package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/rankedlab/forecast-api/internal/models"
)

// ErrRecordNotFound is returned when a delete targets a missing record or one
// the caller does not own.
var ErrRecordNotFound = errors.New("record not found")

const recordColumns = `id, user_id, played_at, mode, map_one, map_two, weapon,
	wins, losses, fatigue, irritability, concentration, start_xp, end_xp, note`

type recordService struct {
	pg PgPool
}

func NewRecordService(pg PgPool) RecordService {
	return &recordService{pg: pg}
}

func (s *recordService) ListRecords(ctx context.Context) ([]models.MatchRecord, error) {
	rows, err := s.pg.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM match_records
		ORDER BY played_at, id
	`, recordColumns))
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *recordService) ListUserRecords(ctx context.Context, userID int64) ([]models.MatchRecord, error) {
	rows, err := s.pg.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM match_records
		WHERE user_id = $1
		ORDER BY played_at, id
	`, recordColumns), userID)
	if err != nil {
		return nil, fmt.Errorf("list user records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *recordService) CreateRecord(ctx context.Context, record *models.MatchRecord) error {
	err := s.pg.QueryRow(ctx, `
		INSERT INTO match_records (
			user_id, played_at, mode, map_one, map_two, weapon,
			wins, losses, fatigue, irritability, concentration,
			start_xp, end_xp, note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`,
		record.UserID, record.PlayedAt, record.Mode, record.MapOne, record.MapTwo,
		record.Weapon, record.Wins, record.Losses, record.Fatigue,
		record.Irritability, record.Concentration, record.StartXP, record.EndXP,
		record.Note,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// DeleteRecord removes a record. With a non-nil ownerID the delete is scoped
// to that owner; a nil ownerID is an administrative delete.
func (s *recordService) DeleteRecord(ctx context.Context, id int64, ownerID *int64) error {
	if ownerID != nil {
		res, err := s.pg.Exec(ctx, `DELETE FROM match_records WHERE id = $1 AND user_id = $2`, id, *ownerID)
		if err != nil {
			return fmt.Errorf("delete record: %w", err)
		}
		if res.RowsAffected() == 0 {
			return ErrRecordNotFound
		}
		return nil
	}

	res, err := s.pg.Exec(ctx, `DELETE FROM match_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

type recordRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanRecords(rows recordRows) ([]models.MatchRecord, error) {
	records := make([]models.MatchRecord, 0)
	for rows.Next() {
		var r models.MatchRecord
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.PlayedAt, &r.Mode, &r.MapOne, &r.MapTwo,
			&r.Weapon, &r.Wins, &r.Losses, &r.Fatigue, &r.Irritability,
			&r.Concentration, &r.StartXP, &r.EndXP, &r.Note,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}
