package revenue

import (
	"context"
	"database/sql"
	"time"
)

// Orders in any state short of cancellation count as sold.
const soldStatuses = `('PENDING', 'CONFIRMED', 'SHIPPING', 'COMPLETED')`

type Repository interface {
	GetSoldItemsBySeller(ctx context.Context, sellerID uint, start, end *time.Time) ([]SoldProduct, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetSoldItemsBySeller(ctx context.Context, sellerID uint, start, end *time.Time) ([]SoldProduct, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, COALESCE(img.image_url, ''),
			oi.quantity, oi.price * oi.quantity,
			to_char(o.created_at, 'YYYY-MM-DD'),
			COALESCE(c.name, 'Khác'),
			o.id, o.status
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN LATERAL (
			SELECT image_url FROM product_images
			WHERE product_id = p.id
			ORDER BY is_thumbnail DESC, id ASC
			LIMIT 1
		) img ON TRUE
		WHERE p.seller_id = $1
			AND o.status IN `+soldStatuses+`
			AND ($2::timestamptz IS NULL OR o.created_at >= $2)
			AND ($3::timestamptz IS NULL OR o.created_at <= $3)
		ORDER BY o.created_at DESC
	`, sellerID, nullableTime(start), nullableTime(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []SoldProduct{}
	for rows.Next() {
		var sp SoldProduct
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.ImageURL, &sp.Quantity,
			&sp.TotalAmount, &sp.SoldDate, &sp.Category, &sp.OrderID, &sp.OrderStatus); err != nil {
			return nil, err
		}
		items = append(items, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
