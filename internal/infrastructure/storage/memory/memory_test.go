package memory

import (
	"testing"

	"pocketapp/internal/infrastructure/storage/storagetest"
)

func TestStorage(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) *Storage {
		return New()
	})
}
