package dto

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// RegisterRequest describes the self-registration payload.
type RegisterRequest struct {
	Run        string `json:"run"`
	CheckDigit string `json:"check_digit"`
	Name       string `json:"name"`
	Surname1   string `json:"surname1"`
	Surname2   string `json:"surname2"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date"`
	Password   string `json:"password"`
}

// LoginRequest describes the credential payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token and the collapsed role the frontend
// switches its UI on.
type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
