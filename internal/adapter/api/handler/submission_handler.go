package handler

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/usecase"
	"picklrzone/pkg/response"
)

type SubmissionHandler struct {
	submissionUseCase *usecase.SubmissionUseCase
}

func NewSubmissionHandler(submissionUseCase *usecase.SubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUseCase: submissionUseCase,
	}
}

type createSubmissionRequest struct {
	VideoURL string `json:"videoUrl"`
	Notes    string `json:"notes" validate:"max=2000"`
}

type uploadURLRequest struct {
	ContentType string `json:"contentType" validate:"required"`
}

type evaluateSubmissionRequest struct {
	VendorFeedback string `json:"vendorFeedback"`
	VendorRating   *int   `json:"vendorRating"`
}

func (h *SubmissionHandler) CreateSubmission(c echo.Context) error {
	var req createSubmissionRequest
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

	submission, err := h.submissionUseCase.CreateSubmission(c.Request().Context(), identity, c.Param("courseId"), usecase.CreateSubmissionInput{
		VideoURL: req.VideoURL,
		Notes:    req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, submission)
}

// RequestUploadURL hands out a signed PUT URL so the client can upload a
// practice video straight to the bucket.
func (h *SubmissionHandler) RequestUploadURL(c echo.Context) error {
	var req uploadURLRequest
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

	upload, err := h.submissionUseCase.RequestUploadURL(c.Request().Context(), identity, req.ContentType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, upload)
}

func (h *SubmissionHandler) ListMySubmissions(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	submissions, err := h.submissionUseCase.ListMySubmissions(c.Request().Context(), identity, c.Param("courseId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, submissions)
}

func (h *SubmissionHandler) ListVendorSubmissions(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	submissions, err := h.submissionUseCase.ListVendorSubmissions(c.Request().Context(), identity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, submissions)
}

func (h *SubmissionHandler) EvaluateSubmission(c echo.Context) error {
	var req evaluateSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	submission, err := h.submissionUseCase.EvaluateSubmission(c.Request().Context(), identity, c.Param("id"), usecase.EvaluateSubmissionInput{
		VendorFeedback: req.VendorFeedback,
		VendorRating:   req.VendorRating,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, submission)
}
