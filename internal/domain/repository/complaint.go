package repository

import (
	"context"

	"github.com/hoseki-store/joyeria/internal/domain/model"
)

// ComplaintRepository describes persistence operations with complaints.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error)
	GetByID(ctx context.Context, id int64) (*model.Complaint, error)
	FindByProblem(ctx context.Context, problem string) ([]model.Complaint, error)
	List(ctx context.Context) ([]model.Complaint, error)
	Update(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error)
	Delete(ctx context.Context, id int64) error
}
