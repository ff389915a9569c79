package order

import (
	"context"
	"database/sql"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, o *Order) (*Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status OrderStatus) error
	GetByBuyer(ctx context.Context, buyerID uint) ([]*Order, error)
	GetByID(ctx context.Context, orderID uint) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrderTx inserts the order and its lines in one transaction so a
// failed item insert never leaves a headless order behind.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order) (*Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			buyer_id, status, shipping_name, shipping_phone, shipping_address,
			shipping_email, note, payment_method, total_amount, shipping_fee,
			discount_amount, final_amount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`,
		o.BuyerID, o.Status, o.ShippingName, o.ShippingPhone, o.ShippingAddress,
		o.ShippingEmail, o.Note, o.PaymentMethod, o.TotalAmount, o.ShippingFee,
		o.DiscountAmount, o.FinalAmount,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return nil, err
	}

	for i := range o.Items {
		it := &o.Items[i]
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
		`, o.ID, it.ProductID, it.Quantity, it.Price)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return o, nil
}

func (r *repository) UpdateStatus(ctx context.Context, orderID uint, status OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, orderID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

const orderColumns = `
	o.id, o.buyer_id, o.status, o.shipping_name, o.shipping_phone,
	o.shipping_address, o.shipping_email, o.note, o.payment_method,
	o.total_amount, o.shipping_fee, o.discount_amount, o.final_amount,
	o.created_at
`

func scanOrder(scanner interface{ Scan(...interface{}) error }) (*Order, error) {
	o := &Order{}
	var email, note sql.NullString

	err := scanner.Scan(
		&o.ID, &o.BuyerID, &o.Status, &o.ShippingName, &o.ShippingPhone,
		&o.ShippingAddress, &email, &note, &o.PaymentMethod,
		&o.TotalAmount, &o.ShippingFee, &o.DiscountAmount, &o.FinalAmount,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.ShippingEmail = email.String
	o.Note = note.String
	return o, nil
}

// GetByBuyer returns the buyer's orders newest first, with item lines priced
// as they were sold and carrying the product's thumbnail.
func (r *repository) GetByBuyer(ctx context.Context, buyerID uint) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders o WHERE o.buyer_id = $1 ORDER BY o.created_at DESC`,
		buyerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	byID := map[uint]*Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		o.Items = []OrderItem{}
		orders = append(orders, o)
		byID[o.ID] = o
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT oi.order_id, oi.product_id, p.name, COALESCE(img.image_url, ''),
			oi.quantity, oi.price
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		LEFT JOIN LATERAL (
			SELECT image_url FROM product_images
			WHERE product_id = p.id
			ORDER BY is_thumbnail DESC, id ASC
			LIMIT 1
		) img ON TRUE
		WHERE o.buyer_id = $1
		ORDER BY oi.id ASC
	`, buyerID)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID uint
		var it OrderItem
		if err := itemRows.Scan(&orderID, &it.ProductID, &it.ProductName,
			&it.ImageURL, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		it.LineTotal = it.Price * float64(it.Quantity)
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *repository) GetByID(ctx context.Context, orderID uint) (*Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, orderID)

	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return o, nil
}
