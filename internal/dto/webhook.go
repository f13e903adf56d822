package dto

type DeploymentWebhookRequestDTO struct {
	AppName string `json:"app_name" example:"sf-my-coffee-shop"`
	RunID   string `json:"run_id" example:"9134752"`
	Status  string `json:"status" example:"success"`
	Message string `json:"message,omitempty"`
}