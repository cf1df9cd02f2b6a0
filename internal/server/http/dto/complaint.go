package dto

import "github.com/hoseki-store/joyeria/internal/domain/model"

// ComplaintRequest describes the contact-form payload.
type ComplaintRequest struct {
	Name    string `json:"name"`
	Rut     string `json:"rut"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Problem string `json:"problem"`
	Detail  string `json:"detail"`
}

// ComplaintResponse is the wire form of a stored complaint.
type ComplaintResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Rut       string `json:"rut,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Problem   string `json:"problem"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ToComplaintResponse converts a domain complaint to its wire form.
func ToComplaintResponse(complaint model.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:        complaint.ID,
		Name:      complaint.Name,
		Rut:       complaint.Rut,
		Email:     complaint.Email,
		Phone:     complaint.Phone,
		Problem:   complaint.Problem,
		Detail:    complaint.Detail,
		CreatedAt: complaint.CreatedAt.Format(DateLayout),
	}
}
