package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/domain/repository"
)

// ComplaintUseCase manages the customer contact form.
type ComplaintUseCase struct {
	complaints repository.ComplaintRepository
}

// NewComplaintUseCase constructs ComplaintUseCase.
func NewComplaintUseCase(complaints repository.ComplaintRepository) *ComplaintUseCase {
	return &ComplaintUseCase{complaints: complaints}
}

func (u *ComplaintUseCase) Create(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error) {
	if strings.TrimSpace(complaint.Rut) != "" && !ValidateRut(complaint.Rut) {
		return nil, domainErrors.ErrInvalidRut
	}
	return u.complaints.Create(ctx, complaint)
}

func (u *ComplaintUseCase) GetByID(ctx context.Context, id int64) (*model.Complaint, error) {
	return u.complaints.GetByID(ctx, id)
}

func (u *ComplaintUseCase) FindByProblem(ctx context.Context, problem string) ([]model.Complaint, error) {
	return u.complaints.FindByProblem(ctx, problem)
}

func (u *ComplaintUseCase) List(ctx context.Context) ([]model.Complaint, error) {
	return u.complaints.List(ctx)
}

func (u *ComplaintUseCase) Update(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error) {
	return u.complaints.Update(ctx, complaint)
}

func (u *ComplaintUseCase) Delete(ctx context.Context, id int64) error {
	return u.complaints.Delete(ctx, id)
}
