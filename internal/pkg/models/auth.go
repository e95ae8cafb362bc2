package models

// LoginRequest is the body of POST /users/login/
type LoginRequest struct {
	WorkID     string `json:"work_id" validate:"required"`
	Email      string `json:"email" validate:"required"`
	HospitalID string `json:"hospital_id" validate:"required"`
}

// VerifyOTPRequest is the body of POST /users/verify-otp/
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// ResendOTPRequest is the body of POST /users/resend-otp/
type ResendOTPRequest struct {
	Email string `json:"email" validate:"required"`
}

// AuthResponse is returned after successful OTP verification
type AuthResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	UserDetails  UserProfile `json:"user_details"`
}
