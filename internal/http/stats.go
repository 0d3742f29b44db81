package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foliolib/folio/internal/database/sessions"
	"github.com/foliolib/folio/internal/entities"
	"github.com/foliolib/folio/internal/streaks"
)

type StatsController struct {
	sessions *sessions.Repository
}

func NewStatsController(sessionRepo *sessions.Repository) *StatsController {
	return &StatsController{sessions: sessionRepo}
}

// GetStats recomputes streaks and aggregates from the full session log.
// Scope can be narrowed to one book with ?book_id=.
func (controller *StatsController) GetStats(c *gin.Context) {
	sessionLog, err := controller.loadScope(c.Query("book_id"))
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summary := streaks.Summarize(sessionLog, time.Now())
	c.IndentedJSON(http.StatusOK, summary)
}

// GetStreaks returns only the current and longest streak values.
func (controller *StatsController) GetStreaks(c *gin.Context) {
	sessionLog, err := controller.loadScope(c.Query("book_id"))
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	c.IndentedJSON(http.StatusOK, gin.H{
		"current_streak": streaks.CurrentStreak(sessionLog, now),
		"longest_streak": streaks.LongestStreak(sessionLog),
	})
}

func (controller *StatsController) loadScope(bookID string) ([]entities.ReadingSession, error) {
	if bookID != "" {
		return controller.sessions.GetSessionsForBook(bookID)
	}
	return controller.sessions.GetAllSessions()
}
