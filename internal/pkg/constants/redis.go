package constants

// Redis key formats
const (
	KeyOtpSession   = "auth:otp:session:%s"  // Format: auth:otp:session:{session_id}
	KeyOtpAttempts  = "auth:otp:attempts:%s" // Format: auth:otp:attempts:{session_id}
	KeyOtpUserIndex = "auth:otp:user:%s"     // Format: auth:otp:user:{user_id}, latest pending session
	KeyUserSession  = "user:session:%s"      // Format: user:session:{user_id}, active token id
	KeyRateLimit    = "rate:limit:%s:%s"     // Format: rate:limit:{path}:{identifier}
)
