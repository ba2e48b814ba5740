package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureVerifier checks the HMAC-SHA256 signature the provider attaches
// to webhook deliveries. The signature covers the raw request body.
type SignatureVerifier struct {
	secret []byte
}

func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: []byte(secret)}
}

func (v *SignatureVerifier) Verify(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (v *SignatureVerifier) Sign(body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
