// Package otp provides helpers for generating one-time passwords (OTP).
//
// This is typically used for phone verification flows: generate a short
// numeric code, deliver it out-of-band, and compare the user-provided code
// against the stored one.
package otp
