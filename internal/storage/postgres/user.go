package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
)

const uniqueViolation = "23505"

func mapUserConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return domainErrors.ErrDuplicateEmail
	case strings.Contains(pgErr.ConstraintName, "run"):
		return domainErrors.ErrDuplicateRut
	}
	return err
}

// Create inserts the user and its role assignments in one transaction.
func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	created := *user
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertUser = `INSERT INTO users (run, check_digit, name, surname1, surname2, email, phone, birth_date, password_hash)
                            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                            RETURNING id, created_at`
		err := tx.QueryRow(ctx, insertUser,
			user.Run, user.CheckDigit, user.Name, user.Surname1, user.Surname2,
			user.Email, user.Phone, user.BirthDate, user.PasswordHash,
		).Scan(&created.ID, &created.CreatedAt)
		if err != nil {
			return mapUserConstraint(err)
		}

		const insertRole = `INSERT INTO user_roles (user_id, role_id)
                            SELECT $1, id FROM roles WHERE name=$2`
		for _, role := range user.Roles {
			if _, err := tx.Exec(ctx, insertRole, created.ID, string(role)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

const userColumns = `id, run, check_digit, name, surname1, surname2, email, phone, birth_date, password_hash, created_at`

func (r *userRepository) getWhere(ctx context.Context, query string, args ...any) (*model.User, error) {
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Run, &u.CheckDigit, &u.Name, &u.Surname1, &u.Surname2,
		&u.Email, &u.Phone, &u.BirthDate, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, err
	}

	roles, err := r.rolesOf(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getWhere(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getWhere(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
}

func (r *userRepository) rolesOf(ctx context.Context, userID int64) ([]model.Role, error) {
	const query = `SELECT r.name FROM roles r
                   JOIN user_roles ur ON ur.role_id = r.id
                   WHERE ur.user_id=$1 ORDER BY r.name`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []model.Role
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		roles = append(roles, model.Role(name))
	}
	return roles, rows.Err()
}

func (r *userRepository) listWhere(ctx context.Context, query string, args ...any) ([]model.User, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Run, &u.CheckDigit, &u.Name, &u.Surname1, &u.Surname2,
			&u.Email, &u.Phone, &u.BirthDate, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

func (r *userRepository) FindByRut(ctx context.Context, run, checkDigit string) ([]model.User, error) {
	return r.listWhere(ctx, `SELECT `+userColumns+` FROM users WHERE run=$1 AND check_digit=$2`, run, checkDigit)
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	return r.listWhere(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
}

// Update changes the editable profile fields. RUT and password stay as they
// are; email duplicates surface as ErrDuplicateEmail.
func (r *userRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `UPDATE users SET name=$2, surname1=$3, surname2=$4, phone=$5, email=$6 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, user.ID, user.Name, user.Surname1, user.Surname2, user.Phone, user.Email)
	if err != nil {
		return nil, mapUserConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrUserNotFound
	}
	return r.GetByID(ctx, user.ID)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}
