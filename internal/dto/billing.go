package dto

type RunBatchResponseDTO struct {
	Success        bool `json:"success" example:"true"`
	ProcessedUsers int  `json:"processedUsers" example:"2"`
	FailedUsers    int  `json:"failedUsers" example:"0"`
}

type WebhookResponseDTO struct {
	Received bool `json:"received" example:"true"`
}
