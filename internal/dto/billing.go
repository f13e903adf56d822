package dto

import "time"

type BalanceResponseDTO struct {
	Credits int64 `json:"credits" example:"5000"`
}

type TopupRequestDTO struct {
	VoucherCode string `json:"voucher_code" example:"2377225624"`
}

type TopupResponseDTO struct {
	Credits int64 `json:"credits" example:"6000"`
}

type InsufficientCreditsResponseDTO struct {
	Message string `json:"message" example:"insufficient credits"`
	Need    int64  `json:"need" example:"1000"`
	Have    int64  `json:"have" example:"250"`
}

type TransactionResponseDTO struct {
	ID            int       `json:"id" example:"42"`
	Amount        int64     `json:"amount" example:"-1000"`
	Reason        string    `json:"reason" example:"shop_creation"`
	RelatedShopID *int      `json:"related_shop_id,omitempty" example:"7"`
	BalanceAfter  int64     `json:"balance_after" example:"4000"`
	CreatedAt     time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
