package ports

// PaymentProof is what the payment gateway hands the client after checkout.
type PaymentProof struct {
	GatewayOrderID string
	PaymentID      string
	Signature      string
}

// PaymentVerifier checks a gateway signature.
type PaymentVerifier interface {
	Verify(proof PaymentProof) bool
}
