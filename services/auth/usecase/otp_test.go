package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPCode_Format(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := generateOTPCode()
		require.NoError(t, err)
		require.Len(t, code, otpCodeLength)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q contains non-digit %q", code, r)
		}
	}
}

func TestGenerateOTPCode_KeepsLeadingZeros(t *testing.T) {
	// With 10,000 draws the chance of never seeing a leading zero is
	// about 0.9^10000, effectively impossible
	sawLeadingZero := false
	for i := 0; i < 10000; i++ {
		code, err := generateOTPCode()
		require.NoError(t, err)
		require.Len(t, code, otpCodeLength)
		if code[0] == '0' {
			sawLeadingZero = true
		}
	}
	assert.True(t, sawLeadingZero, "expected at least one zero-padded code in 10000 draws")
}

func TestGenerateOTPCode_NotConstant(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := generateOTPCode()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "100 draws produced a single code")
}
