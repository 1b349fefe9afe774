package userdto

// UserCreateInput đầu vào tạo người dùng (CRUD).
type UserCreateInput struct {
	FirstName string `json:"firstName" validate:"required,no_xss"`
	LastName  string `json:"lastName" validate:"required,no_xss"`
	Age       int    `json:"age" validate:"required,gte=13"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,strong_password"`
}

// UserUpdateInput đầu vào cập nhật thông tin người dùng.
type UserUpdateInput struct {
	FirstName string `json:"firstName" validate:"omitempty,no_xss"`
	LastName  string `json:"lastName" validate:"omitempty,no_xss"`
	Age       int    `json:"age" validate:"omitempty,gte=13"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// UserLoginInput đầu vào đăng nhập người dùng.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequestInput đầu vào yêu cầu đặt lại mật khẩu.
type ResetPasswordRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordConfirmInput đầu vào xác nhận đặt lại mật khẩu bằng token.
type ResetPasswordConfirmInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}
