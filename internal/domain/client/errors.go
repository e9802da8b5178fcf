package client

import "errors"

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrClientExists    = errors.New("client name already exists")
	ErrAlreadyAssigned = errors.New("employee already assigned to client")
	ErrNotAssigned     = errors.New("employee not assigned to client")
)
