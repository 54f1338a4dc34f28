package service

import "errors"

// Sentinel errors surfaced to handlers. Handlers map these with errors.Is;
// anything else is treated as a storage failure.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrCommentNotFound = errors.New("comment not found")
)
