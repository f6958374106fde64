package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// OTPValidity is how long a one-time password stays usable.
const OTPValidity = 30 * time.Minute

// GenerateOTP returns a six digit code and its expiry.
func GenerateOTP(now time.Time) (int, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to generate otp: %w", err)
	}
	return int(n.Int64()) + 100000, now.Add(OTPValidity), nil
}

// CheckOTP reports whether entered matches otp before expiry.
func CheckOTP(otp int, expiry time.Time, entered int, now time.Time) bool {
	return otp != 0 && otp == entered && !now.After(expiry)
}
