// Package payment checks checkout signatures returned by Razorpay.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"printdrop/internal/core/ports"
)

// RazorpayVerifier validates hex(HMAC-SHA256(keySecret, orderId|paymentId)).
type RazorpayVerifier struct {
	keySecret []byte
}

func NewRazorpayVerifier(keySecret string) RazorpayVerifier {
	return RazorpayVerifier{keySecret: []byte(keySecret)}
}

// Verify never accepts a proof when no key secret is configured.
func (v RazorpayVerifier) Verify(proof ports.PaymentProof) bool {
	if len(v.keySecret) == 0 || proof.Signature == "" {
		return false
	}

	got, err := hex.DecodeString(strings.ToLower(proof.Signature))
	if err != nil {
		return false
	}
	return hmac.Equal(got, v.expected(proof))
}

func (v RazorpayVerifier) expected(proof ports.PaymentProof) []byte {
	mac := hmac.New(sha256.New, v.keySecret)
	mac.Write([]byte(proof.GatewayOrderID + "|" + proof.PaymentID))
	return mac.Sum(nil)
}
