package handlers

import (
	"errors"
	"net/http"

	"github.com/Zoh007/WealthScore/logger"
	"github.com/Zoh007/WealthScore/models"
	"github.com/Zoh007/WealthScore/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleListEvents returns the stored events array.
func HandleListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, EventStore.Events())
}

// HandleCreateEvent appends an event, assigning a timestamp id when absent.
func HandleCreateEvent(c *gin.Context) {
	var event models.CalendarEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		logger.Get().Error("error binding calendar event", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := EventStore.AddEvent(event)
	if err != nil {
		logger.Get().Error("error saving calendar event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// HandleUpdateEvent replaces an event matched by id.
func HandleUpdateEvent(c *gin.Context) {
	var event models.CalendarEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		logger.Get().Error("error binding calendar event", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := EventStore.UpdateEvent(event); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		logger.Get().Error("error updating calendar event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

// HandleDeleteEvent removes an event by the id query parameter.
func HandleDeleteEvent(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := EventStore.DeleteEvent(id); err != nil {
		logger.Get().Error("error deleting calendar event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleListUsers returns the calendar users.
func HandleListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, EventStore.Users())
}
