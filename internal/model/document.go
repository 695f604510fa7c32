package model

import (
	"fmt"
	"time"
)

// DocumentStatus is the lifecycle state of a document.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusActive    DocumentStatus = "active"
	StatusCompleted DocumentStatus = "completed"
	StatusCancelled DocumentStatus = "cancelled"
	StatusExpired   DocumentStatus = "expired"
)

// Terminal reports whether no further signing is possible in this state.
func (s DocumentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusExpired
}

// DocumentSettings is the per-document reminder/print/download/watermark
// policy.
type DocumentSettings struct {
	RequireSignatureOrder bool   `json:"requireSignatureOrder"`
	ReminderEnabled       bool   `json:"reminderEnabled"`
	ReminderDays          int    `json:"reminderDays"`
	AllowPrint            bool   `json:"allowPrint"`
	AllowDownload         bool   `json:"allowDownload"`
	WatermarkText         string `json:"watermarkText,omitempty"`
}

// DefaultSettings are applied to newly created documents.
func DefaultSettings() DocumentSettings {
	return DocumentSettings{
		ReminderEnabled: true,
		ReminderDays:    7,
		AllowPrint:      true,
		AllowDownload:   true,
	}
}

// Document is the aggregate root. ID is the private identifier used by the
// owner; EnvelopeID is a second stable public identifier used for
// post-completion viewing; ShareLink grants signing access while active.
type Document struct {
	ID              string           `json:"id"`
	EnvelopeID      string           `json:"envelopeId"`
	Title           string           `json:"title"`
	Type            string           `json:"type"`
	Status          DocumentStatus   `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	CreatedBy       string           `json:"createdBy"`
	Signers         []Signer         `json:"signers"`
	Fields          []Field          `json:"fields"`
	ShareLink       string           `json:"shareLink,omitempty"`
	ShareLinkActive bool             `json:"shareLinkActive"`
	ExpiresAt       *time.Time       `json:"expiresAt,omitempty"`
	CompletedAt     *time.Time       `json:"completedAt,omitempty"`
	Signatures      []Signature      `json:"signatures"`
	TemplateDigest  string           `json:"templateDigest"`
	Settings        DocumentSettings `json:"settings"`
}

// SignerByID returns the signer with the given id, or nil.
func (d *Document) SignerByID(id string) *Signer {
	for i := range d.Signers {
		if d.Signers[i].ID == id {
			return &d.Signers[i]
		}
	}
	return nil
}

// SignatureBySigner returns the recorded signature for a signer, or nil.
func (d *Document) SignatureBySigner(signerID string) *Signature {
	for i := range d.Signatures {
		if d.Signatures[i].SignerID == signerID {
			return &d.Signatures[i]
		}
	}
	return nil
}

// AllSigned reports whether every signer has exactly one signature.
func (d *Document) AllSigned() bool {
	if len(d.Signers) == 0 {
		return false
	}
	for _, s := range d.Signers {
		if d.SignatureBySigner(s.ID) == nil {
			return false
		}
	}
	return true
}

// FieldValues flattens the fields into an id -> value map for rendering.
func (d *Document) FieldValues() map[string]any {
	out := make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		if f.Value != nil {
			out[f.ID] = f.Value
		}
	}
	return out
}

// ValidateIntegrity checks the cross-entity invariants: every field and
// signature must reference a signer present on the document, and no signer
// may be represented by more than one signature.
func (d *Document) ValidateIntegrity() error {
	for _, f := range d.Fields {
		if f.SignerID != "" && d.SignerByID(f.SignerID) == nil {
			return fmt.Errorf("field %s references unknown signer %q", f.ID, f.SignerID)
		}
	}
	seen := make(map[string]bool, len(d.Signatures))
	for _, sig := range d.Signatures {
		if d.SignerByID(sig.SignerID) == nil {
			return fmt.Errorf("signature %s references unknown signer %q", sig.ID, sig.SignerID)
		}
		if seen[sig.SignerID] {
			return fmt.Errorf("signer %q has more than one signature", sig.SignerID)
		}
		seen[sig.SignerID] = true
	}
	return nil
}

// Clone returns a deep copy of the document so stores can hand out
// aggregates without sharing mutable state with callers.
func (d *Document) Clone() *Document {
	out := *d
	if d.ExpiresAt != nil {
		t := *d.ExpiresAt
		out.ExpiresAt = &t
	}
	if d.CompletedAt != nil {
		t := *d.CompletedAt
		out.CompletedAt = &t
	}
	out.Signers = append([]Signer(nil), d.Signers...)
	out.Fields = make([]Field, len(d.Fields))
	for i := range d.Fields {
		out.Fields[i] = d.Fields[i].Clone()
	}
	out.Signatures = make([]Signature, len(d.Signatures))
	for i := range d.Signatures {
		out.Signatures[i] = d.Signatures[i].Clone()
	}
	return &out
}
