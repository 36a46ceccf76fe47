package account

type CreateAccountSchema struct {
	OwnerName string `json:"owner_name" validate:"required"`
}
