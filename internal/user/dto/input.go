package dto

type CreateUserInput struct {
	Username                   string  `json:"username"`
	CompanyName                string  `json:"companyName"`
	IsAdmin                    bool    `json:"isAdmin"`
	IsClient                   bool    `json:"isClient"`
	HasLotNumbers              bool    `json:"hasLotNumbers"`
	PerOrderFee                float64 `json:"perOrderFee"`
	PerOrderUnitFee            float64 `json:"perOrderUnitFee"`
	PerUnitFBAPackPrep         float64 `json:"perUnitFbaPackPrep"`
	PerUnitWFSPackPrep         float64 `json:"perUnitWfsPackPrep"`
	B2BFreightPercentageMarkup float64 `json:"b2bFreightPercentageMarkup"`
	StripeCustomerID           string  `json:"stripeCustomerId"`
}

type EditUserInput struct {
	ID string `json:"id"`
	CreateUserInput
}
