package constants

// Redis key formats
const (
	KeyUserOTP     = "user:%s"          // Format: user:{email}
	KeyOTPAttempts = "user:attempts:%s" // Format: user:attempts:{email}
)
