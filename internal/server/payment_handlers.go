// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"talkora/internal/models"
	"talkora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePaymentIntent handles POST /api/create-payment-intent
// @Summary Open a Stripe payment intent
// @Tags payments
// @Accept json
// @Produce json
// @Param request body object{price=number} true "Price in dollars"
// @Success 200 {object} object{clientSecret=string}
// @Failure 400 {object} models.ErrorResponse
// @Router /create-payment-intent [post]
func (s *Server) CreatePaymentIntent(c *fiber.Ctx) error {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	clientSecret, err := s.paymentService.CreateIntent(c.UserContext(), req.Price)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}

// RecordPayment handles POST /api/payments. The caller's verified email wins
// over whatever the body claims.
func (s *Server) RecordPayment(c *fiber.Ctx) error {
	var req struct {
		Amount        int64  `json:"amount"`
		TransactionID string `json:"transactionId"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	payment, err := s.paymentService.RecordPayment(c.UserContext(), service.RecordPaymentInput{
		Email:         callerEmail(c),
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}
