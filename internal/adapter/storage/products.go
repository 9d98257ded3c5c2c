package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/shopfront/internal/core/domain"
	"github.com/niksmo/shopfront/internal/core/port"
)

var _ port.CatalogStore = (*ProductsRepository)(nil)

type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

func (r ProductsRepository) ListProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ProductsRepository.ListProducts"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT name, price, size, category, special, image_url
		FROM products
		ORDER BY position ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query: %w", op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", "err", err)
		}
	}()

	var ps []domain.Product
	for rows.Next() {
		var v domain.Product
		err := rows.Scan(
			&v.Name, &v.Price, &v.Size, &v.Category, &v.Special, &v.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan: %w", op, err)
		}
		ps = append(ps, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r ProductsRepository) UpsertProduct(
	ctx context.Context, v domain.Product,
) error {
	const op = "ProductsRepository.UpsertProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO products (name, price, size, category, special, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE SET
			price = EXCLUDED.price,
			size = EXCLUDED.size,
			category = EXCLUDED.category,
			special = EXCLUDED.special,
			image_url = EXCLUDED.image_url;`

	_, err := r.sqldb.ExecContext(ctx, query,
		v.Name, v.Price, v.Size, v.Category, v.Special, v.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}

func (r ProductsRepository) DeleteProduct(
	ctx context.Context, name string,
) error {
	const op = "ProductsRepository.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `DELETE FROM products WHERE name = $1;`

	res, err := r.sqldb.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
