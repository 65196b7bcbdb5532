package types

type SignupRequest struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Phone    string `form:"phone"`
}

type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}
