package handlers

import (
	"errors"
	"time"

	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
	"github.com/careerbridge/backend/notifications"
	"github.com/careerbridge/backend/payments"
	"github.com/careerbridge/backend/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateProgramRequest struct {
	MentorID     string   `json:"mentor_id" validate:"required,uuid"`
	Title        string   `json:"title" validate:"required"`
	Description  *string  `json:"description"`
	ProgramImage *string  `json:"program_image"`
	Price        float64  `json:"price" validate:"gte=0"`
	Currency     *string  `json:"currency"`
	Duration     int      `json:"duration" validate:"required,gt=0"`
}

func CreateProgram(c *fiber.Ctx) error {
	var req CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mentorID, _ := uuid.Parse(req.MentorID)
	var mentor models.Mentor
	if err := database.DB.First(&mentor, "id = ?", mentorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}

	program := models.Mentorship{
		MentorID:     mentorID,
		Title:        req.Title,
		Description:  req.Description,
		ProgramImage: req.ProgramImage,
		Price:        req.Price,
		Duration:     req.Duration,
	}
	if req.Currency != nil {
		program.Currency = *req.Currency
	}

	if err := database.DB.Create(&program).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create program"})
	}
	return c.Status(fiber.StatusCreated).JSON(program)
}

type SlotRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type AddSlotsRequest struct {
	Slots []SlotRequest `json:"slots" validate:"required,min=1,dive"`
}

// AddSlots appends raw slot specs to a program. Overlapping or duplicate
// slots are accepted; mentors manage their own calendars.
func AddSlots(c *fiber.Ctx) error {
	var program models.Mentorship
	if err := database.DB.First(&program, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentorship program not found"})
	}

	var req AddSlotsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slots := make([]models.MentorshipSlot, 0, len(req.Slots))
	for _, s := range req.Slots {
		date, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid slot date: " + s.Date})
		}
		slots = append(slots, models.MentorshipSlot{
			MentorshipID: program.ID,
			Date:         date,
			StartTime:    s.StartTime,
			EndTime:      s.EndTime,
		})
	}

	if err := database.DB.Create(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add slots"})
	}

	database.DB.Preload("AvailableSlots").First(&program, "id = ?", program.ID)
	return c.JSON(program)
}

func GetPrograms(c *fiber.Ctx) error {
	query := database.DB.Preload("Mentor").Preload("AvailableSlots")
	if mentorID := c.Query("mentor_id"); mentorID != "" {
		query = query.Where("mentor_id = ?", mentorID)
	}

	var programs []models.Mentorship
	query.Order("created_at desc").Find(&programs)
	return c.JSON(programs)
}

func GetProgramByID(c *fiber.Ctx) error {
	var program models.Mentorship
	err := database.DB.
		Preload("Mentor").
		Preload("AvailableSlots").
		First(&program, "id = ?", c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Program not found"})
	}
	return c.JSON(program)
}

type BookSlotRequest struct {
	MentorshipID string  `json:"mentorship_id" validate:"required,uuid"`
	SlotID       string  `json:"slot_id" validate:"required,uuid"`
	UserNotes    *string `json:"user_notes"`
}

// bookSlotErrorStatus maps a failed booking transaction to a response.
// A missing slot is the caller's mistake; anything else besides a taken slot
// is a real failure.
func bookSlotErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrSlotBooked):
		return fiber.StatusBadRequest, "Slot is already booked"
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound, "Slot not found"
	default:
		return fiber.StatusInternalServerError, err.Error()
	}
}

// BookSlot claims a slot for the logged-in user. The whole sequence runs in
// one transaction with the slot row locked FOR UPDATE, so two concurrent
// bookings of the same slot serialize and the loser sees isBooked already
// set. A simulated gateway failure compensates: the transaction is kept as
// Failed, the booking as Cancelled, and the slot is never claimed.
func BookSlot(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req BookSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var program models.Mentorship
	if err := database.DB.First(&program, "id = ?", req.MentorshipID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentorship program not found"})
	}

	var booking models.MentorshipBooking
	var transaction models.Transaction
	var failedCharge error

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var slot models.MentorshipSlot
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, "id = ? AND mentorship_id = ?", req.SlotID, program.ID).Error; err != nil {
			return err
		}

		if err := slot.Claim(userID); err != nil {
			return err
		}

		method := "Card"
		transaction = models.Transaction{
			UserID:        userID,
			Amount:        program.Price,
			Currency:      program.Currency,
			Status:        models.TxnPending,
			PaymentMethod: &method,
			Related:       models.MentorshipRef(program.ID),
		}
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		booking = models.MentorshipBooking{
			UserID:        userID,
			MentorID:      program.MentorID,
			MentorshipID:  program.ID,
			SlotDate:      slot.Date,
			SlotTime:      slot.StartTime,
			Status:        models.BookingPending,
			TransactionID: &transaction.ID,
			UserNotes:     req.UserNotes,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		// Gateway callback simulated inline; there is no pending window.
		if _, err := payments.Charge(payments.PaymentDetails{
			Amount:   program.Price,
			Currency: program.Currency,
			Method:   method,
		}); err != nil {
			failedCharge = err
			transaction.Status = models.TxnFailed
			booking.Status = models.BookingCancelled
			if err := tx.Save(&transaction).Error; err != nil {
				return err
			}
			// Commit the failed transaction and cancelled booking as an audit
			// trail; the slot row is never written, so it stays open.
			return tx.Save(&booking).Error
		}

		transaction.Status = models.TxnSuccess
		if err := tx.Save(&transaction).Error; err != nil {
			return err
		}

		meetingLink := utils.GenerateMeetingLink()
		booking.Status = models.BookingConfirmed
		booking.MeetingLink = &meetingLink
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		return tx.Save(&slot).Error
	})

	if err != nil {
		status, message := bookSlotErrorStatus(err)
		return c.Status(status).JSON(fiber.Map{"error": message})
	}
	if failedCharge != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payment failed: " + failedCharge.Error()})
	}

	go func() {
		var user models.User
		if err := database.DB.First(&user, "id = ?", userID).Error; err == nil {
			notifications.Send(notifications.BookingConfirmedMail(user, program.Title, *booking.MeetingLink))
		}
	}()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Booking confirmed",
		"booking":     booking,
		"transaction": transaction,
	})
}

func GetMyBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var bookings []models.MentorshipBooking
	database.DB.
		Preload("Mentor").
		Preload("Mentorship").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings)
	return c.JSON(bookings)
}

// GetBookingByID is visible to the mentee or to the user owning the mentor
// profile the booking points at.
func GetBookingByID(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	requesterID, _ := uuid.Parse(claims["user_id"].(string))

	var booking models.MentorshipBooking
	err := database.DB.
		Preload("User").
		Preload("Mentor").
		Preload("Mentorship").
		Preload("Transaction").
		First(&booking, "id = ?", c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	if booking.UserID == requesterID {
		return c.JSON(booking)
	}

	var mentorProfile models.Mentor
	if err := database.DB.First(&mentorProfile, "user_id = ?", requesterID).Error; err == nil {
		if booking.MentorID == mentorProfile.ID {
			return c.JSON(booking)
		}
	}

	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized to view this booking"})
}

func GetMentorBookings(c *fiber.Ctx) error {
	var bookings []models.MentorshipBooking
	database.DB.
		Preload("User").
		Preload("Mentorship").
		Where("mentor_id = ?", c.Params("mentorId")).
		Order("slot_date asc").
		Find(&bookings)
	return c.JSON(bookings)
}
