package model

// Signer is a participant attached to a document: a user identity plus a
// document-scoped role. Role identifiers are defined by the document's
// template (e.g. "lessor", "tenant", "guarantor"), not by a global enum.
type Signer struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Title        string `json:"title,omitempty"`
	Organization string `json:"organization,omitempty"`
	Address      string `json:"address,omitempty"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role"`
	Required     bool   `json:"required"`
	Order        int    `json:"order"`
}

// FullName joins first and last name, tolerating either being empty.
func (s Signer) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
