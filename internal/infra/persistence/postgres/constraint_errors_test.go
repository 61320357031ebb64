package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintHelpers(t *testing.T) {
	raw := errors.New(`ERROR: duplicate key value violates unique constraint "idx_coupons_code" (SQLSTATE 23505)`)

	assert.True(t, isUniqueConstraintViolation(raw))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
	assert.False(t, isUniqueConstraintViolation(nil))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection reset")))

	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(nil))

	assert.True(t, isCheckConstraintViolation(errors.New(`violates check constraint "chk_loyalty_total_points" (SQLSTATE 23514)`)))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
}
