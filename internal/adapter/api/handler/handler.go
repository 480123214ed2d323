package handler

import (
	"picklrzone/internal/usecase"
)

var (
	authHandler       *AuthHandler
	userHandler       *UserHandler
	courseHandler     *CourseHandler
	reviewHandler     *ReviewHandler
	paymentHandler    *PaymentHandler
	bookingHandler    *BookingHandler
	submissionHandler *SubmissionHandler
	chatHandler       *ChatHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	courseUseCase *usecase.CourseUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	paymentUseCase *usecase.PaymentUseCase,
	bookingUseCase *usecase.BookingUseCase,
	submissionUseCase *usecase.SubmissionUseCase,
	chatUseCase *usecase.ChatUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	courseHandler = NewCourseHandler(courseUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
	bookingHandler = NewBookingHandler(bookingUseCase)
	submissionHandler = NewSubmissionHandler(submissionUseCase)
	chatHandler = NewChatHandler(chatUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetCourseHandler() *CourseHandler {
	return courseHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetBookingHandler() *BookingHandler {
	return bookingHandler
}

func GetSubmissionHandler() *SubmissionHandler {
	return submissionHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}
