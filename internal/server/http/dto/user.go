package dto

import "github.com/hoseki-store/joyeria/internal/domain/model"

// UserResponse is the public view of an account.
type UserResponse struct {
	ID         int64  `json:"id"`
	Run        string `json:"run"`
	CheckDigit string `json:"check_digit"`
	Name       string `json:"name"`
	Surname1   string `json:"surname1"`
	Surname2   string `json:"surname2,omitempty"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`
	Role       string `json:"role"`
}

// UserUpdateRequest carries the profile fields an account may change.
type UserUpdateRequest struct {
	Name     string `json:"name"`
	Surname1 string `json:"surname1"`
	Surname2 string `json:"surname2"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ToUserResponse converts a domain user to its wire form.
func ToUserResponse(user model.User) UserResponse {
	resp := UserResponse{
		ID:         user.ID,
		Run:        user.Run,
		CheckDigit: user.CheckDigit,
		Name:       user.Name,
		Surname1:   user.Surname1,
		Surname2:   user.Surname2,
		Email:      user.Email,
		Phone:      user.Phone,
		Role:       user.PrimaryRole(),
	}
	if !user.BirthDate.IsZero() {
		resp.BirthDate = user.BirthDate.Format(DateLayout)
	}
	return resp
}
