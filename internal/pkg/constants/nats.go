package constants

// NATS subjects
const (
	// OTP delivery requests, consumed by the out-of-process notifier
	SubjectOtpNotify = "notify.otp"
)
