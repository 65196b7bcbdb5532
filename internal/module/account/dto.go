package account

type SignupRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Phone    string `form:"phone"`
}

type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}
