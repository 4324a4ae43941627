package dto

type ConfirmWithdrawalInput struct {
	WithdrawerName    string `json:"withdrawer_name" validate:"required"`
	WithdrawerSection string `json:"withdrawer_section" validate:"required"`
	Notes             string `json:"notes"`
}
