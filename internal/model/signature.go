package model

import "time"

// Signature is the immutable record of one signer's consent. Once created
// it is never mutated or deleted; a re-sign attempt is rejected rather
// than overwritten.
type Signature struct {
	ID            string         `json:"id"`
	SignerID      string         `json:"signerId"`
	DocumentID    string         `json:"documentId"`
	SignedAt      time.Time      `json:"signedAt"`
	IPAddress     string         `json:"ipAddress"`
	UserAgent     string         `json:"userAgent"`
	SignatureData string         `json:"signatureData,omitempty"`
	FieldValues   map[string]any `json:"fieldValues,omitempty"`
	IsValid       bool           `json:"isValid"`
}

// Clone returns a deep copy of the signature.
func (s Signature) Clone() Signature {
	out := s
	if s.FieldValues != nil {
		out.FieldValues = make(map[string]any, len(s.FieldValues))
		for k, v := range s.FieldValues {
			out.FieldValues[k] = v
		}
	}
	return out
}
