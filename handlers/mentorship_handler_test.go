package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/careerbridge/backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestBookSlotErrorStatus(t *testing.T) {
	t.Run("taken slot is a conflict", func(t *testing.T) {
		status, message := bookSlotErrorStatus(models.ErrSlotBooked)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Slot is already booked", message)
	})

	t.Run("missing slot is not found", func(t *testing.T) {
		status, _ := bookSlotErrorStatus(gorm.ErrRecordNotFound)
		assert.Equal(t, fiber.StatusNotFound, status)

		status, _ = bookSlotErrorStatus(fmt.Errorf("locked fetch: %w", gorm.ErrRecordNotFound))
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("everything else is a server failure", func(t *testing.T) {
		dbErr := errors.New("connection reset by peer")
		status, message := bookSlotErrorStatus(dbErr)
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, dbErr.Error(), message)
	})
}
