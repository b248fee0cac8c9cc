package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/baseball-stats/internal/domain/position"
	qb "github.com/riskibarqy/baseball-stats/internal/platform/querybuilder"
)

type PositionRepository struct {
	db sqlx.ExtContext
}

func NewPositionRepository(db sqlx.ExtContext) *PositionRepository {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) GetByAbbreviation(ctx context.Context, abbreviation string) (position.Position, bool, error) {
	query, args, err := qb.Select(qb.ModelColumns(positionTableModel{}, "")...).From("positions").
		Where(qb.Eq("abbreviation", abbreviation)).
		Limit(1).
		ToSQL()
	if err != nil {
		return position.Position{}, false, fmt.Errorf("build select position query: %w", err)
	}

	var row positionTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return position.Position{}, false, nil
		}
		return position.Position{}, false, fmt.Errorf("select position: %w", err)
	}

	return position.Position{
		ID:           row.ID,
		Abbreviation: row.Abbreviation,
		Name:         row.Name,
	}, true, nil
}

// FirstOrCreate inserts p unless its abbreviation already exists, then reads
// the stored row back.
func (r *PositionRepository) FirstOrCreate(ctx context.Context, p position.Position) (position.Position, error) {
	query, args, err := qb.InsertModel("positions", positionInsertModel{
		Abbreviation: p.Abbreviation,
		Name:         p.Name,
	}).OnConflictDoNothing("abbreviation").ToSQL()
	if err != nil {
		return position.Position{}, fmt.Errorf("build insert position query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return position.Position{}, fmt.Errorf("insert position: %w", err)
	}

	stored, exists, err := r.GetByAbbreviation(ctx, p.Abbreviation)
	if err != nil {
		return position.Position{}, err
	}
	if !exists {
		return position.Position{}, fmt.Errorf("position %q missing after insert", p.Abbreviation)
	}
	return stored, nil
}

func (r *PositionRepository) DeleteAll(ctx context.Context) error {
	query, args, err := qb.DeleteFrom("positions").ToSQL()
	if err != nil {
		return fmt.Errorf("build delete positions query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete positions: %w", err)
	}
	return nil
}
