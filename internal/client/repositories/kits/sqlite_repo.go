package kits

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/common"
	"github.com/thronos/careerforge/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, kit *CachedKit) error {
	payload, err := json.Marshal(kit.Result)
	if err != nil {
		return fmt.Errorf("encode kit %s: %w", kit.ID, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO kits (id, kind, job_id, credits_charged, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			job_id = excluded.job_id,
			credits_charged = excluded.credits_charged,
			result = excluded.result
	`, kit.ID, string(kit.Kind), kit.JobID, kit.CreditsCharged, payload, kit.CreatedAt)
	if err != nil {
		return fmt.Errorf("save kit %s: %w", kit.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*CachedKit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, kind, job_id, credits_charged, result, created_at
		FROM kits WHERE id = ?`, id)

	kit, err := scanKit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("kit %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get kit %s: %w", id, err)
	}
	return kit, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]CachedKit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, job_id, credits_charged, result, created_at
		FROM kits ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list kits: %w", err)
	}
	defer rows.Close()

	result := []CachedKit{}
	for rows.Next() {
		kit, err := scanKit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan kit row: %w", err)
		}
		result = append(result, *kit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kit rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kits WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete kit %s: %w", id, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanKit(s scanner) (*CachedKit, error) {
	var (
		kit     CachedKit
		kind    string
		payload []byte
	)
	if err := s.Scan(&kit.ID, &kind, &kit.JobID, &kit.CreditsCharged, &payload, &kit.CreatedAt); err != nil {
		return nil, err
	}
	kit.Kind = models.KitKind(kind)

	kit.Result = &models.KitResult{}
	if err := json.Unmarshal(payload, kit.Result); err != nil {
		return nil, fmt.Errorf("decode kit %s: %w", kit.ID, err)
	}
	return &kit, nil
}
