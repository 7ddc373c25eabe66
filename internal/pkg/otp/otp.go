package otp

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// OTP defines the contract for one-time code generation.
type OTP interface {
	// Generate creates a new random code.
	Generate() (string, error)
}

// Numeric generates fixed-width numeric codes using crypto/rand.
//
// Codes are uniform over [10^(digits-1), 10^digits), so the first digit is
// never zero and the width is constant.
type Numeric struct {
	min  int64
	span int64
}

// NewNumeric constructs a Numeric generator.
//
// If digits is outside 4..9, it falls back to the common 6 digits.
func NewNumeric(digits int) *Numeric {
	if digits < 4 || digits > 9 {
		digits = 6
	}

	min := int64(1)
	for range digits - 1 {
		min *= 10
	}

	return &Numeric{min: min, span: min * 9}
}

// Generate creates a new random code.
func (o *Numeric) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(o.span))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(o.min+n.Int64(), 10), nil
}
