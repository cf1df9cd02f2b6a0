package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
)

const foreignKeyViolation = "23503"

// --- CategoryRepository implementation ---

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	created := *category
	err := r.storage.pool.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, category.Name).
		Scan(&created.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, `SELECT id, name FROM categories WHERE id=$1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) ([]model.Category, error) {
	return r.listWhere(ctx, `SELECT id, name FROM categories WHERE name ILIKE '%' || $1 || '%' ORDER BY id`, name)
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	return r.listWhere(ctx, `SELECT id, name FROM categories ORDER BY id`)
}

func (r *categoryRepository) listWhere(ctx context.Context, query string, args ...any) ([]model.Category, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *categoryRepository) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE categories SET name=$2 WHERE id=$1`, category.ID, category.Name)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrCategoryNotFound
	}
	return r.GetByID(ctx, category.ID)
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrCategoryNotFound
	}
	return nil
}

// --- ProductRepository implementation ---

const productColumns = `id, name, description, price, stock, photo, category_id`

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	created := *product
	const query = `INSERT INTO products (name, description, price, stock, photo, category_id)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Stock, product.Photo, product.CategoryID,
	).Scan(&created.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, domainErrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Photo, &p.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) FindByName(ctx context.Context, name string) ([]model.Product, error) {
	return r.listWhere(ctx, `SELECT `+productColumns+` FROM products WHERE name ILIKE '%' || $1 || '%' ORDER BY id`, name)
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	return r.listWhere(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

func (r *productRepository) listWhere(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Photo, &p.CategoryID); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `UPDATE products SET name=$2, description=$3, price=$4, stock=$5, photo=$6, category_id=$7 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Stock, product.Photo, product.CategoryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, domainErrors.ErrCategoryNotFound
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrProductNotFound
	}
	return r.GetByID(ctx, product.ID)
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrProductNotFound
	}
	return nil
}
