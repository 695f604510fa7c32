package repository

// Package repository contains data access layer abstractions.
// Implementations can live in subpackages (e.g., memory, postgres) inside this directory.

import "errors"

// ErrNotFound is returned by all lookups when no document matches.
// Implementations map their own not-found conditions onto it so the
// service layer never sees a driver-specific error.
var ErrNotFound = errors.New("document not found")
