package handler

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/usecase"
	"picklrzone/pkg/response"
	"picklrzone/pkg/utils"
)

type CourseHandler struct {
	courseUseCase *usecase.CourseUseCase
}

func NewCourseHandler(courseUseCase *usecase.CourseUseCase) *CourseHandler {
	return &CourseHandler{
		courseUseCase: courseUseCase,
	}
}

type lessonRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl"`
	Duration    int    `json:"duration" validate:"gte=0"`
	Order       int    `json:"order" validate:"gte=0"`
}

type createCourseRequest struct {
	Title            string          `json:"title" validate:"required,notblank"`
	Description      string          `json:"description" validate:"required"`
	ShortDescription string          `json:"shortDescription" validate:"required"`
	Price            *float64        `json:"price" validate:"required"`
	ThumbnailURL     string          `json:"thumbnailUrl"`
	IntroVideoURL    string          `json:"introVideoUrl"`
	Category         string          `json:"category" validate:"required"`
	Level            string          `json:"level" validate:"required"`
	Lessons          []lessonRequest `json:"lessons" validate:"dive"`
}

type updateCourseRequest struct {
	Title            *string          `json:"title" validate:"omitempty,notblank"`
	Description      *string          `json:"description"`
	ShortDescription *string          `json:"shortDescription"`
	Price            *float64         `json:"price"`
	ThumbnailURL     *string          `json:"thumbnailUrl"`
	IntroVideoURL    *string          `json:"introVideoUrl"`
	Category         *string          `json:"category"`
	Level            *string          `json:"level"`
	Lessons          *[]lessonRequest `json:"lessons" validate:"omitempty,dive"`
}

func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.courseUseCase.ListCourses(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	if page, ok := utils.GetPaginationParams(c); ok {
		courses = utils.Paginate(courses, page)
	}
	return response.Success(c, courses)
}

func (h *CourseHandler) GetCourse(c echo.Context) error {
	course, err := h.courseUseCase.GetCourse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, course)
}

func (h *CourseHandler) CreateCourse(c echo.Context) error {
	var req createCourseRequest
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

	course, err := h.courseUseCase.CreateCourse(c.Request().Context(), identity, usecase.CreateCourseInput{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            *req.Price,
		ThumbnailURL:     req.ThumbnailURL,
		IntroVideoURL:    req.IntroVideoURL,
		Category:         req.Category,
		Level:            req.Level,
		Lessons:          toLessons(req.Lessons),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, course)
}

func (h *CourseHandler) UpdateCourse(c echo.Context) error {
	var req updateCourseRequest
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

	input := usecase.UpdateCourseInput{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            req.Price,
		ThumbnailURL:     req.ThumbnailURL,
		IntroVideoURL:    req.IntroVideoURL,
		Category:         req.Category,
		Level:            req.Level,
	}
	if req.Lessons != nil {
		lessons := toLessons(*req.Lessons)
		input.Lessons = &lessons
	}

	course, err := h.courseUseCase.UpdateCourse(c.Request().Context(), identity, c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, course)
}

func (h *CourseHandler) DeleteCourse(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.courseUseCase.DeleteCourse(c.Request().Context(), identity, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Course deleted")
}

func toLessons(reqs []lessonRequest) []entity.Lesson {
	lessons := make([]entity.Lesson, 0, len(reqs))
	for _, l := range reqs {
		lessons = append(lessons, entity.Lesson{
			Title:       l.Title,
			Description: l.Description,
			VideoURL:    l.VideoURL,
			Duration:    l.Duration,
			Order:       l.Order,
		})
	}
	return lessons
}
