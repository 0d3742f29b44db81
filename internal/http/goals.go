package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foliolib/folio/internal/database/books"
	"github.com/foliolib/folio/internal/database/goals"
	"github.com/foliolib/folio/internal/database/sessions"
	"github.com/foliolib/folio/internal/entities"
	"github.com/foliolib/folio/internal/streaks"
)

type GoalsController struct {
	goals    *goals.Repository
	sessions *sessions.Repository
	books    *books.Repository
}

func NewGoalsController(goalRepo *goals.Repository, sessionRepo *sessions.Repository, bookRepo *books.Repository) *GoalsController {
	return &GoalsController{goals: goalRepo, sessions: sessionRepo, books: bookRepo}
}

type createGoalRequest struct {
	Type      entities.GoalType `json:"type" binding:"required"`
	Target    int               `json:"target" binding:"required"`
	StartDate time.Time         `json:"start_date"`
	EndDate   time.Time         `json:"end_date" binding:"required"`
}

func validGoalType(t entities.GoalType) bool {
	switch t {
	case entities.GoalBooksPerYear, entities.GoalBooksPerMonth,
		entities.GoalPagesPerDay, entities.GoalPagesPerWeek,
		entities.GoalMinutesPerDay:
		return true
	}
	return false
}

func (controller *GoalsController) CreateGoal(c *gin.Context) {
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "type, target and end_date are required"})
		return
	}
	if !validGoalType(req.Type) {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "unknown goal type"})
		return
	}
	if req.Target <= 0 {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "target must be positive"})
		return
	}

	start := req.StartDate
	if start.IsZero() {
		start = time.Now()
	}
	if !req.EndDate.After(start) {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "end_date must be after start_date"})
		return
	}

	goal, err := controller.goals.CreateGoal(req.Type, req.Target, start, req.EndDate)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusCreated, goal)
}

// GetAllGoals lists goals with progress freshly recomputed from the logs.
// Pass ?active=true to restrict to goals not yet completed.
func (controller *GoalsController) GetAllGoals(c *gin.Context) {
	var (
		result []entities.ReadingGoal
		err    error
	)
	if c.Query("active") == "true" {
		result, err = controller.goals.GetActiveGoals()
	} else {
		result, err = controller.goals.GetAllGoals()
	}
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	refreshed, err := controller.refreshProgress(result)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"goals": refreshed, "count": len(refreshed)})
}

func (controller *GoalsController) DeleteGoal(c *gin.Context) {
	err := controller.goals.DeleteGoal(c.Param("id"))
	if err != nil {
		if errors.Is(err, goals.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// refreshProgress recomputes each goal's progress from the session and book
// logs and writes the new value back.
func (controller *GoalsController) refreshProgress(goalList []entities.ReadingGoal) ([]entities.ReadingGoal, error) {
	if len(goalList) == 0 {
		return goalList, nil
	}

	sessionLog, err := controller.sessions.GetAllSessions()
	if err != nil {
		return nil, err
	}
	bookList, err := controller.books.GetAllBooks()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range goalList {
		current := streaks.GoalProgress(goalList[i], sessionLog, bookList, now)
		if current != goalList[i].Current {
			if err := controller.goals.UpdateProgress(goalList[i].ID, current); err != nil {
				return nil, err
			}
		}
		goalList[i].Current = current
		goalList[i].IsCompleted = current >= goalList[i].Target
	}
	return goalList, nil
}
