package dto

import "time"

type CreateShopRequestDTO struct {
	ShopName      string `json:"shop_name" example:"My Coffee Shop" validate:"required,min=3,max=60"`
	Plan          string `json:"plan" example:"basic"`
	CustomDomain  string `json:"custom_domain,omitempty" example:"shop.example.com"`
	AdminEmail    string `json:"admin_email" example:"owner@example.com" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=8"`
}

type CreateShopResponseDTO struct {
	Shop         ShopResponseDTO `json:"shop"`
	DeploymentID int             `json:"deployment_id" example:"11"`
	Charged      bool            `json:"charged" example:"false"`
}

type ShopResponseDTO struct {
	ID             int        `json:"id" example:"7"`
	ShopName       string     `json:"shop_name" example:"My Coffee Shop"`
	Slug           string     `json:"slug" example:"my-coffee-shop"`
	AppName        string     `json:"app_name" example:"sf-my-coffee-shop"`
	Status         string     `json:"status" example:"creating"`
	Plan           string     `json:"plan" example:"basic"`
	MaxProducts    int        `json:"max_products" example:"100"`
	MaxOrders      int        `json:"max_orders" example:"1000"`
	CustomDomain   string     `json:"custom_domain,omitempty" example:"shop.example.com"`
	ChatbotEnabled bool       `json:"chatbot_enabled" example:"false"`
	CreatedAt      time.Time  `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

type ShopDetailResponseDTO struct {
	Shop       ShopResponseDTO        `json:"shop"`
	Deployment *DeploymentResponseDTO `json:"deployment,omitempty"`
}

type DeploymentResponseDTO struct {
	ID            int                  `json:"id" example:"11"`
	Status        string               `json:"status" example:"running"`
	ExternalRunID string               `json:"external_run_id,omitempty" example:"9134752"`
	ErrorMessage  string               `json:"error_message,omitempty"`
	Events        []DeploymentEventDTO `json:"events,omitempty"`
	CreatedAt     time.Time            `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
	CompletedAt   *time.Time           `json:"completed_at,omitempty"`
}

type DeploymentEventDTO struct {
	Type    string    `json:"type" example:"dispatched"`
	Message string    `json:"message,omitempty"`
	At      time.Time `json:"at" example:"2020-12-09T16:09:57+03:00"`
}
