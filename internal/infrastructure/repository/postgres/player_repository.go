package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/baseball-stats/internal/domain/player"
	qb "github.com/riskibarqy/baseball-stats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db sqlx.ExtContext
}

var playerSelectColumns = qb.ModelColumns(playerTableModel{}, "")

func NewPlayerRepository(db sqlx.ExtContext) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	return r.getOne(ctx, "id", qb.Eq("id", id))
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (player.Player, bool, error) {
	return r.getOne(ctx, "name", qb.Eq("name", name))
}

func (r *PlayerRepository) getOne(ctx context.Context, key string, cond qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(cond).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by %s query: %w", key, err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by %s: %w", key, err)
	}

	return mapPlayerRow(row), true, nil
}

func (r *PlayerRepository) UpsertByName(ctx context.Context, name string) (player.Player, error) {
	query, args, err := qb.InsertInto("players").
		Columns("name").
		Values(name).
		OnConflictUpdate([]string{"name"}, "updated_at").
		Returning(playerSelectColumns...).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build upsert player query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("upsert player: %w", err)
	}
	return mapPlayerRow(row), nil
}

func (r *PlayerRepository) UpdateName(ctx context.Context, id int64, name string) error {
	query, args, err := qb.Update("players").
		Set("name", name).
		SetNow("updated_at").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player name query: %w", err)
	}

	return r.execOne(ctx, "update player name", id, query, args)
}

func (r *PlayerRepository) UpdateDescription(ctx context.Context, id int64, description string) error {
	query, args, err := qb.Update("players").
		Set("description", description).
		SetNow("updated_at").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player description query: %w", err)
	}

	return r.execOne(ctx, "update player description", id, query, args)
}

func (r *PlayerRepository) execOne(ctx context.Context, op string, id int64, query string, args []any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: player %d not found", op, id)
	}
	return nil
}

func (r *PlayerRepository) DeleteAll(ctx context.Context) error {
	query, args, err := qb.DeleteFrom("players").ToSQL()
	if err != nil {
		return fmt.Errorf("build delete players query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete players: %w", err)
	}
	return nil
}

func mapPlayerRow(row playerTableModel) player.Player {
	return player.Player{
		ID:          row.ID,
		Name:        row.Name,
		Description: nullString(row.Description),
	}
}
