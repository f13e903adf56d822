package dto

import "time"

type SubscriptionResponseDTO struct {
	Feature   string    `json:"feature" example:"chatbot"`
	Status    string    `json:"status" example:"active"`
	ExpiresAt time.Time `json:"expires_at" example:"2021-01-08T16:09:57+03:00"`
}

type SSOTokenResponseDTO struct {
	Token string `json:"token"`
}
