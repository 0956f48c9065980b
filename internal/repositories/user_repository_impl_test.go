package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"sahay/internal/repositories/cache"
)

func TestNewUserRepository_RequiresDependencies(t *testing.T) {
	assert.Panics(t, func() {
		NewUserRepository(nil, cache.NewCacheService(nil, time.Minute))
	})
	assert.Panics(t, func() {
		NewUserRepository(&gorm.DB{}, nil)
	})
}
