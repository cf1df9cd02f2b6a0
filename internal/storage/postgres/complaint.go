package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
)

const complaintColumns = `id, name, rut, email, phone, problem, detail, created_at`

func (r *complaintRepository) Create(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error) {
	created := *complaint
	const query = `INSERT INTO complaints (name, rut, email, phone, problem, detail)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		complaint.Name, complaint.Rut, complaint.Email, complaint.Phone, complaint.Problem, complaint.Detail,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *complaintRepository) GetByID(ctx context.Context, id int64) (*model.Complaint, error) {
	var c model.Complaint
	err := r.storage.pool.QueryRow(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE id=$1`, id).
		Scan(&c.ID, &c.Name, &c.Rut, &c.Email, &c.Phone, &c.Problem, &c.Detail, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrComplaintNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *complaintRepository) FindByProblem(ctx context.Context, problem string) ([]model.Complaint, error) {
	return r.listWhere(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE problem ILIKE '%' || $1 || '%' ORDER BY created_at DESC`, problem)
}

func (r *complaintRepository) List(ctx context.Context) ([]model.Complaint, error) {
	return r.listWhere(ctx, `SELECT `+complaintColumns+` FROM complaints ORDER BY created_at DESC`)
}

func (r *complaintRepository) listWhere(ctx context.Context, query string, args ...any) ([]model.Complaint, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Complaint
	for rows.Next() {
		var c model.Complaint
		if err := rows.Scan(&c.ID, &c.Name, &c.Rut, &c.Email, &c.Phone, &c.Problem, &c.Detail, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *complaintRepository) Update(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error) {
	const query = `UPDATE complaints SET name=$2, rut=$3, email=$4, phone=$5, problem=$6, detail=$7 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query,
		complaint.ID, complaint.Name, complaint.Rut, complaint.Email, complaint.Phone, complaint.Problem, complaint.Detail)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrComplaintNotFound
	}
	return r.GetByID(ctx, complaint.ID)
}

func (r *complaintRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM complaints WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrComplaintNotFound
	}
	return nil
}
