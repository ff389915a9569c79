package product

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type Repository interface {
	GetAll(ctx context.Context) ([]*Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetBySeller(ctx context.Context, sellerID uint) ([]*Product, error)
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id uint) error
	SaveImages(ctx context.Context, productID uint, filenames []string) error
	GetImages(ctx context.Context, productID uint) ([]string, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	p.id, p.name, p.description, p.condition_percentage, p.trade_type,
	p.buy_price, p.rent_price, p.rent_unit, p.status, p.address_contact,
	p.featured, p.is_new, p.seller_id, u.full_name, p.category_id, c.name,
	p.created_at
`

const productJoins = `
	FROM products p
	JOIN users u ON u.id = p.seller_id
	JOIN categories c ON c.id = p.category_id
`

func scanProduct(scanner interface{ Scan(...interface{}) error }) (*Product, error) {
	p := &Product{}
	var condition sql.NullInt64
	var buyPrice, rentPrice sql.NullFloat64
	var rentUnit sql.NullString

	err := scanner.Scan(
		&p.ID, &p.Name, &p.Description, &condition, &p.TradeType,
		&buyPrice, &rentPrice, &rentUnit, &p.Status, &p.AddressContact,
		&p.Featured, &p.IsNew, &p.SellerID, &p.SellerName, &p.CategoryID,
		&p.CategoryName, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if condition.Valid {
		c := int(condition.Int64)
		p.ConditionPercentage = &c
	}
	if buyPrice.Valid {
		p.BuyPrice = &buyPrice.Float64
	}
	if rentPrice.Valid {
		p.RentPrice = &rentPrice.Float64
	}
	if rentUnit.Valid {
		p.RentUnit = &rentUnit.String
	}

	return p, nil
}

func (r *repository) GetAll(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+productJoins+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collect(ctx, rows)
}

func (r *repository) GetBySeller(ctx context.Context, sellerID uint) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+productJoins+` WHERE p.seller_id = $1 ORDER BY p.created_at DESC`,
		sellerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collect(ctx, rows)
}

func (r *repository) collect(ctx context.Context, rows *sql.Rows) ([]*Product, error) {
	products := []*Product{}
	ids := []int64{}

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
		ids = append(ids, int64(p.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return products, nil
	}

	// One pass for all image rows instead of a query per product.
	imgRows, err := r.db.QueryContext(ctx, `
		SELECT product_id, image_url
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY is_thumbnail DESC, id ASC
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer imgRows.Close()

	byProduct := map[uint][]string{}
	for imgRows.Next() {
		var pid uint
		var url string
		if err := imgRows.Scan(&pid, &url); err != nil {
			return nil, err
		}
		byProduct[pid] = append(byProduct[pid], url)
	}
	if err := imgRows.Err(); err != nil {
		return nil, err
	}

	for _, p := range products {
		p.Images = byProduct[p.ID]
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+productJoins+` WHERE p.id = $1`, id)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	images, err := r.GetImages(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Images = images

	return p, nil
}

func (r *repository) Create(ctx context.Context, p *Product) (*Product, error) {
	query := `
	INSERT INTO products (
		name, description, condition_percentage, trade_type, buy_price,
		rent_price, rent_unit, status, address_contact, featured, is_new,
		seller_id, category_id
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.ConditionPercentage, p.TradeType, p.BuyPrice,
		p.RentPrice, p.RentUnit, p.Status, p.AddressContact, p.Featured,
		p.IsNew, p.SellerID, p.CategoryID,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) Update(ctx context.Context, p *Product) (*Product, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $1, description = $2, buy_price = $3, rent_price = $4,
			rent_unit = $5, status = $6, trade_type = $7, address_contact = $8
		WHERE id = $9
	`, p.Name, p.Description, p.BuyPrice, p.RentPrice, p.RentUnit,
		p.Status, p.TradeType, p.AddressContact, p.ID)
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProductNotFound
	}

	return p, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *repository) SaveImages(ctx context.Context, productID uint, filenames []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	isFirst := true
	for _, filename := range filenames {
		if filename == "" {
			continue
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO product_images (product_id, image_url, is_thumbnail)
			VALUES ($1, $2, $3)
		`, productID, filename, isFirst)
		if err != nil {
			return err
		}
		isFirst = false
	}

	return tx.Commit()
}

func (r *repository) GetImages(ctx context.Context, productID uint) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT image_url
		FROM product_images
		WHERE product_id = $1
		ORDER BY is_thumbnail DESC, id ASC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, rows.Err()
}
