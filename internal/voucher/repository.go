package voucher

import (
	"context"
	"database/sql"
)

type Repository interface {
	GetActive(ctx context.Context) ([]*Voucher, error)
	GetByID(ctx context.Context, id uint) (*Voucher, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetActive(ctx context.Context) ([]*Voucher, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, code, discount_value, min_order_value
		FROM vouchers
		WHERE active = TRUE
		ORDER BY min_order_value ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vouchers := []*Voucher{}
	for rows.Next() {
		v := &Voucher{}
		if err := rows.Scan(&v.ID, &v.Code, &v.DiscountValue, &v.MinOrderValue); err != nil {
			return nil, err
		}
		vouchers = append(vouchers, v)
	}

	return vouchers, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Voucher, error) {
	v := &Voucher{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, code, discount_value, min_order_value
		FROM vouchers
		WHERE id = $1 AND active = TRUE
	`, id).Scan(&v.ID, &v.Code, &v.DiscountValue, &v.MinOrderValue)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return v, nil
}
