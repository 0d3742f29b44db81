// Package goals provides database operations for reading goals.
package goals

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foliolib/folio/internal/entities"
)

// ErrNotFound is returned when a goal does not exist.
var ErrNotFound = errors.New("goal not found")

// Repository handles reading-goal database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new goals repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateGoal creates a goal over the given window.
func (r *Repository) CreateGoal(goalType entities.GoalType, target int, start, end time.Time) (*entities.ReadingGoal, error) {
	goal := &entities.ReadingGoal{
		ID:        uuid.NewString(),
		Type:      goalType,
		Target:    target,
		StartDate: start,
		EndDate:   end,
	}
	if err := r.db.Create(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// GetGoalByID retrieves a single goal.
func (r *Repository) GetGoalByID(id string) (*entities.ReadingGoal, error) {
	var goal entities.ReadingGoal
	err := r.db.First(&goal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetAllGoals returns every goal, newest window first.
func (r *Repository) GetAllGoals() ([]entities.ReadingGoal, error) {
	var goals []entities.ReadingGoal
	err := r.db.Order("start_date DESC").Find(&goals).Error
	return goals, err
}

// GetActiveGoals returns goals not yet completed, soonest deadline first.
func (r *Repository) GetActiveGoals() ([]entities.ReadingGoal, error) {
	var goals []entities.ReadingGoal
	err := r.db.Where("is_completed = ?", false).Order("end_date ASC").Find(&goals).Error
	return goals, err
}

// UpdateProgress stores a recomputed progress value. Completion is derived,
// never set directly.
func (r *Repository) UpdateProgress(id string, current int) error {
	goal, err := r.GetGoalByID(id)
	if err != nil {
		return err
	}

	return r.db.Model(goal).Updates(map[string]any{
		"current":      current,
		"is_completed": current >= goal.Target,
	}).Error
}

// DeleteGoal removes a goal.
func (r *Repository) DeleteGoal(id string) error {
	result := r.db.Delete(&entities.ReadingGoal{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
