package memory

import "cattle-farm-manager/internal/ports/storage"

var (
	ErrNotFound = storage.ErrNotFound
)
