package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newGormWithMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

// History reads sort on the auto-increment seq column, not created_at, so two
// purchases landing in the same timestamp granule keep their insertion order.
func TestSupplementPurchaseRepository_ListByMember_OrdersBySeq(t *testing.T) {
	gormDB, mock := newGormWithMock(t)
	memberID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "seq", "member_id", "product_name", "price", "quantity", "purchased_at", "created_at"}).
		AddRow(uuid.NewString(), 1, memberID.String(), "Whey Protein", "1499", 2, now, now).
		AddRow(uuid.NewString(), 2, memberID.String(), "Creatine", "899", 1, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `supplement_purchases` WHERE member_id = ? ORDER BY seq ASC")).
		WithArgs(memberID.String()).
		WillReturnRows(rows)

	repo := NewSupplementPurchaseRepository(gormDB)
	purchases, err := repo.ListByMember(context.Background(), memberID)

	assert.NoError(t, err)
	assert.Len(t, purchases, 2)
	assert.Equal(t, "Whey Protein", purchases[0].ProductName)
	assert.Equal(t, "Creatine", purchases[1].ProductName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSupplementPurchaseRepository_ListByMember_Empty(t *testing.T) {
	gormDB, mock := newGormWithMock(t)
	memberID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `supplement_purchases` WHERE member_id = ? ORDER BY seq ASC")).
		WithArgs(memberID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "seq", "member_id", "product_name", "price", "quantity", "purchased_at", "created_at"}))

	repo := NewSupplementPurchaseRepository(gormDB)
	purchases, err := repo.ListByMember(context.Background(), memberID)

	assert.NoError(t, err)
	assert.Empty(t, purchases)
	assert.NoError(t, mock.ExpectationsWereMet())
}
