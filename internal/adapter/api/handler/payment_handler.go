package handler

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/usecase"
	"picklrzone/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type checkoutItemRequest struct {
	CourseID     string  `json:"courseId" validate:"required"`
	Title        string  `json:"title"`
	Price        float64 `json:"price"`
	ThumbnailURL string  `json:"thumbnailUrl"`
}

type createCheckoutRequest struct {
	Items []checkoutItemRequest `json:"items" validate:"dive"`
}

type confirmPaymentRequest struct {
	SessionID string `json:"sessionId"`
}

type confirmPaymentResponse struct {
	Enrollments []*entity.Enrollment `json:"enrollments"`
}

func (h *PaymentHandler) CreateCheckoutSession(c echo.Context) error {
	var req createCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	items := make([]usecase.CheckoutItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.CheckoutItemInput{
			CourseID:     item.CourseID,
			Title:        item.Title,
			Price:        item.Price,
			ThumbnailURL: item.ThumbnailURL,
		})
	}

	result, err := h.paymentUseCase.CreateCheckoutSession(c.Request().Context(), identity, items)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	enrollments, err := h.paymentUseCase.ConfirmPayment(c.Request().Context(), identity, req.SessionID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, confirmPaymentResponse{Enrollments: enrollments})
}

func (h *PaymentHandler) ListEnrollments(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	enrollments, err := h.paymentUseCase.ListEnrollments(c.Request().Context(), identity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, enrollments)
}
