package webhook

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"

	"github.com/tidwall/gjson"
)

// SignatureHeader is the request header Paystack signs callbacks with.
const SignatureHeader = "x-paystack-signature"

// EventChargeSuccess is the only event type that triggers persistence.
const EventChargeSuccess = "charge.success"

// Verifier checks webhook callbacks against the shared gateway secret.
// Verification runs over the raw, unparsed request body: a re-serialized
// body is not guaranteed byte-identical to what the provider signed.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier keyed with the gateway secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Signature returns the hex HMAC-SHA512 digest of body.
func (v *Verifier) Signature(body []byte) string {
	mac := hmac.New(sha512.New, v.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether header matches the full hex digest of body.
func (v *Verifier) Verify(body []byte, header string) bool {
	if header == "" {
		return false
	}
	return hmac.Equal([]byte(v.Signature(body)), []byte(header))
}

// ChargeEvent is the subset of a verified charge.success payload the
// service acts on.
type ChargeEvent struct {
	Event     string
	Reference string
	Name      string
	Email     string
	Phone     string
}

// ParseChargeEvent extracts booking fields from a verified payload.
// Metadata values are loosely typed on the wire (absent, null, or
// non-string), so extraction is field-by-field with the same fallbacks the
// checkout flow populates: name -> "Unknown", phone -> "N/A", email ->
// the charge's customer email.
func ParseChargeEvent(body []byte) ChargeEvent {
	evt := ChargeEvent{
		Event:     gjson.GetBytes(body, "event").String(),
		Reference: gjson.GetBytes(body, "data.reference").String(),
		Name:      gjson.GetBytes(body, "data.metadata.name").String(),
		Email:     gjson.GetBytes(body, "data.metadata.email").String(),
		Phone:     gjson.GetBytes(body, "data.metadata.phone").String(),
	}
	if evt.Name == "" {
		evt.Name = "Unknown"
	}
	if evt.Email == "" {
		evt.Email = gjson.GetBytes(body, "data.customer.email").String()
	}
	if evt.Phone == "" {
		evt.Phone = "N/A"
	}
	return evt
}
