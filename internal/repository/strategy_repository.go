package repository

import (
	"database/sql"

	"github.com/unclebandit/campaign-planner/internal/model"
)

type StrategyRepositoryInterface interface {
	ListByUser(userID string) ([]model.Strategy, error)
	Exists(id string) (bool, error)
}

type StrategyRepository struct {
	DB *sql.DB
}

func (r *StrategyRepository) ListByUser(userID string) ([]model.Strategy, error) {
	query := `SELECT id, user_id, name, goal, created_at FROM strategies WHERE user_id=$1 ORDER BY created_at`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	strategies := []model.Strategy{}
	for rows.Next() {
		var s model.Strategy
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Goal, &s.CreatedAt); err != nil {
			return nil, err
		}
		strategies = append(strategies, s)
	}
	return strategies, rows.Err()
}

func (r *StrategyRepository) Exists(id string) (bool, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM strategies WHERE id=$1`, id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ StrategyRepositoryInterface = (*StrategyRepository)(nil)
