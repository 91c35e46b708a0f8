package model

import "time"

// User is a warehouse client account. Username is an email address and doubles
// as the client id on shipment and inventory rows. The fee fields feed the
// monthly invoicing run.
type User struct {
	ID                         string    `db:"id" json:"id"`
	Username                   string    `db:"username" json:"username"`
	CompanyName                string    `db:"company_name" json:"company_name"`
	IsAdmin                    bool      `db:"isadmin" json:"isadmin"`
	IsClient                   bool      `db:"isclient" json:"isclient"`
	HasLotNumbers              bool      `db:"has_lot_numbers" json:"has_lot_numbers"`
	PerOrderFee                float64   `db:"per_order_fee" json:"per_order_fee"`
	PerOrderUnitFee            float64   `db:"per_order_unit_fee" json:"per_order_unit_fee"`
	PerUnitFBAPackPrep         float64   `db:"per_unit_fba_pack_prep" json:"per_unit_fba_pack_prep"`
	PerUnitWFSPackPrep         float64   `db:"per_unit_wfs_pack_prep" json:"per_unit_wfs_pack_prep"`
	B2BFreightPercentageMarkup float64   `db:"b2b_freight_percentage_markup" json:"b2b_freight_percentage_markup"`
	StripeCustomerID           *string   `db:"stripe_customer_id" json:"stripe_customer_id"`
	CreatedAt                  time.Time `db:"created_at" json:"created_at"`
}
