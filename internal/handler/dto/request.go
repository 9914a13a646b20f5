package dto

import "github.com/shopspring/decimal"

type SignUpRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Username       string `json:"username" binding:"required"`
	Role           string `json:"role" binding:"omitempty,oneof=user creator"`
	PhotoURL       string `json:"photo_url"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateEventRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"`
	Time        string          `json:"time" binding:"required"`
	Category    string          `json:"category" binding:"omitempty,oneof=normal premium"`
	Price       decimal.Decimal `json:"price"`
	PosterURL   string          `json:"poster_url"`
	VideoLink   string          `json:"video_link"`
	SpeakerName string          `json:"speaker_name"`
}

// UpdateEventRequest changes only the fields that are present.
type UpdateEventRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
	Time        *string          `json:"time"`
	Category    *string          `json:"category" binding:"omitempty,oneof=normal premium"`
	Price       *decimal.Decimal `json:"price"`
	PosterURL   *string          `json:"poster_url"`
	VideoLink   *string          `json:"video_link"`
	SpeakerName *string          `json:"speaker_name"`
}

type EnquiryRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
	// EnquiryID pins the reply to the enquiry the creator saw at that position.
	EnquiryID string `json:"enquiry_id"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

type VIPCheckoutRequest struct {
	Months int `json:"months" binding:"required,oneof=1 3 6"`
}
