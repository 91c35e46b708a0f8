package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hometown-industries/warehouse-service/internal/model"
	"github.com/hometown-industries/warehouse-service/internal/shipment"
	"github.com/jmoiron/sqlx"
)

type OutboundPGRepository struct {
	DB *sqlx.DB
}

func NewOutboundPGRepository(db *sqlx.DB) *OutboundPGRepository {
	return &OutboundPGRepository{DB: db}
}

const outboundInsert = `
    INSERT INTO outbound_shipments (
        id, created_at, client_id, shipment_number, carrier, tracking_number, po_number,
        destination, requires_amazon_labeling, shipment_type, status, date_of_last_change,
        asin, product_title, sku, product_image_url, quantity,
        buyer_name, buyer_email, recipient_name, recipient_company, recipient_address_line_1,
        recipient_city, recipient_state, recipient_postal_code, recipient_country,
        lot_number, cost_of_shipment, notes
    )
    VALUES (
        :id, :created_at, :client_id, :shipment_number, :carrier, :tracking_number, :po_number,
        :destination, :requires_amazon_labeling, :shipment_type, :status, :date_of_last_change,
        :asin, :product_title, :sku, :product_image_url, :quantity,
        :buyer_name, :buyer_email, :recipient_name, :recipient_company, :recipient_address_line_1,
        :recipient_city, :recipient_state, :recipient_postal_code, :recipient_country,
        :lot_number, :cost_of_shipment, :notes
    )
`

func (r *OutboundPGRepository) Create(ctx context.Context, s *model.OutboundShipment) error {
	_, err := r.DB.NamedExecContext(ctx, outboundInsert, s)
	return err
}

// outboundBulkInsert carries the conflict clause for webhook batches: under
// at-least-once delivery a redelivered (shipment_number, sku) pair must no-op
// on uq_outbound_number_sku instead of aborting the whole multi-row insert.
const outboundBulkInsert = outboundInsert + `
    ON CONFLICT (shipment_number, sku, shipment_type) DO NOTHING
`

func (r *OutboundPGRepository) BulkInsert(ctx context.Context, rows []model.OutboundShipment) error {
	if len(rows) == 0 {
		return nil
	}
	// sqlx expands the named statement into a multi-row VALUES list.
	_, err := r.DB.NamedExecContext(ctx, outboundBulkInsert, rows)
	return err
}

func (r *OutboundPGRepository) GetByID(ctx context.Context, id string) (*model.OutboundShipment, error) {
	var s model.OutboundShipment
	err := r.DB.GetContext(ctx, &s, `SELECT * FROM outbound_shipments WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *OutboundPGRepository) FindByNumberAndStatus(ctx context.Context, shipmentNumber, status string) ([]model.OutboundShipment, error) {
	rows := []model.OutboundShipment{}
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT * FROM outbound_shipments WHERE shipment_number = $1 AND status = $2 ORDER BY created_at`,
		shipmentNumber, status)
	return rows, err
}

func (r *OutboundPGRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]model.OutboundShipment, error) {
	rows := []model.OutboundShipment{}
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT * FROM outbound_shipments WHERE created_at >= $1 AND created_at < $2 ORDER BY created_at`,
		start, end)
	return rows, err
}

func (r *OutboundPGRepository) Update(ctx context.Context, s *model.OutboundShipment) error {
	query := `
        UPDATE outbound_shipments SET
            client_id = :client_id,
            shipment_number = :shipment_number,
            carrier = :carrier,
            tracking_number = :tracking_number,
            po_number = :po_number,
            destination = :destination,
            requires_amazon_labeling = :requires_amazon_labeling,
            status = :status,
            date_of_last_change = :date_of_last_change,
            asin = :asin,
            product_title = :product_title,
            sku = :sku,
            product_image_url = :product_image_url,
            quantity = :quantity,
            buyer_name = :buyer_name,
            buyer_email = :buyer_email,
            recipient_name = :recipient_name,
            recipient_company = :recipient_company,
            recipient_address_line_1 = :recipient_address_line_1,
            recipient_city = :recipient_city,
            recipient_state = :recipient_state,
            recipient_postal_code = :recipient_postal_code,
            recipient_country = :recipient_country,
            lot_number = :lot_number,
            cost_of_shipment = :cost_of_shipment,
            notes = :notes
        WHERE id = :id
    `
	res, err := r.DB.NamedExecContext(ctx, query, s)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("outbound shipment %s not found", s.ID)
	}
	return nil
}

func (r *OutboundPGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM outbound_shipments WHERE id = $1`, id)
	return err
}

func (r *OutboundPGRepository) ApplyTracking(ctx context.Context, shipmentNumber string, u shipment.TrackingUpdate) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
        UPDATE outbound_shipments SET
            carrier = $1,
            tracking_number = $2,
            status = $3,
            cost_of_shipment = $4
        WHERE shipment_number = $5 AND status = $6
    `, u.Carrier, u.TrackingNumber, model.StatusShipped, u.CostOfShipment, shipmentNumber, model.StatusPending)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *OutboundPGRepository) SetTracking(ctx context.Context, shipmentNumber, clientID, carrier, trackingNumber string) error {
	_, err := r.DB.ExecContext(ctx, `
        UPDATE outbound_shipments SET carrier = $1, tracking_number = $2
        WHERE shipment_number = $3 AND client_id = $4
    `, carrier, trackingNumber, shipmentNumber, clientID)
	return err
}

type InboundPGRepository struct {
	DB *sqlx.DB
}

func NewInboundPGRepository(db *sqlx.DB) *InboundPGRepository {
	return &InboundPGRepository{DB: db}
}

func (r *InboundPGRepository) Create(ctx context.Context, s *model.InboundShipment) error {
	query := `
        INSERT INTO inbound_shipments (
            id, created_at, client_id, shipment_number, bol_number, carrier, tracking_number,
            destination, shipment_type, status, date_of_last_change,
            asin, product_title, sku, product_image_url, quantity, counted_quantity,
            warehouse_address, warehouse_city, warehouse_state, warehouse_postal_code
        )
        VALUES (
            :id, :created_at, :client_id, :shipment_number, :bol_number, :carrier, :tracking_number,
            :destination, :shipment_type, :status, :date_of_last_change,
            :asin, :product_title, :sku, :product_image_url, :quantity, :counted_quantity,
            :warehouse_address, :warehouse_city, :warehouse_state, :warehouse_postal_code
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *InboundPGRepository) GetByID(ctx context.Context, id string) (*model.InboundShipment, error) {
	var s model.InboundShipment
	err := r.DB.GetContext(ctx, &s, `SELECT * FROM inbound_shipments WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *InboundPGRepository) FindAll(ctx context.Context, clientID string) ([]model.InboundShipment, error) {
	rows := []model.InboundShipment{}
	if clientID == "" {
		err := r.DB.SelectContext(ctx, &rows, `SELECT * FROM inbound_shipments ORDER BY created_at DESC`)
		return rows, err
	}
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT * FROM inbound_shipments WHERE client_id = $1 ORDER BY created_at DESC`, clientID)
	return rows, err
}

func (r *InboundPGRepository) Update(ctx context.Context, s *model.InboundShipment) error {
	query := `
        UPDATE inbound_shipments SET
            client_id = :client_id,
            shipment_number = :shipment_number,
            bol_number = :bol_number,
            carrier = :carrier,
            tracking_number = :tracking_number,
            destination = :destination,
            status = :status,
            date_of_last_change = :date_of_last_change,
            asin = :asin,
            product_title = :product_title,
            sku = :sku,
            product_image_url = :product_image_url,
            quantity = :quantity,
            counted_quantity = :counted_quantity,
            warehouse_address = :warehouse_address,
            warehouse_city = :warehouse_city,
            warehouse_state = :warehouse_state,
            warehouse_postal_code = :warehouse_postal_code
        WHERE id = :id
    `
	res, err := r.DB.NamedExecContext(ctx, query, s)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("inbound shipment %s not found", s.ID)
	}
	return nil
}

func (r *InboundPGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM inbound_shipments WHERE id = $1`, id)
	return err
}

func (r *InboundPGRepository) ConfirmCount(ctx context.Context, id string, countedQuantity int64) (*model.InboundShipment, error) {
	var s model.InboundShipment
	err := r.DB.GetContext(ctx, &s, `
        UPDATE inbound_shipments SET counted_quantity = $1, status = $2
        WHERE id = $3
        RETURNING *
    `, countedQuantity, model.StatusReceived, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
