// Package model contains the pure domain schema for documents, fields,
// signers and signatures. No persistence or transport dependencies; the
// types can be shared across layers (HTTP, service, repository) without
// coupling to any backend.
package model
