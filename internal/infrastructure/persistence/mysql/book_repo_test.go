package mysql

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/xiebiao/bookcollection/internal/domain/book"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	return openMockDB(t, &gorm.Config{Logger: gormlogger.Discard})
}

func openMockDB(t *testing.T, gormCfg *gorm.Config) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), gormCfg)
	require.NoError(t, err)
	return db, mock
}

func TestBookRepository_ReadAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "author", "year"}).
		AddRow(1, "Some random book", "Jacob Wal", 2013).
		AddRow(2, "Next das", "Adam Szym", 2010)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `books` ORDER BY id")).WillReturnRows(rows)

	books, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, book.NewBook(1, "Some random book", "Jacob Wal", 2013), books[0])
	assert.Equal(t, book.NewBook(2, "Next das", "Adam Szym", 2010), books[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_ReadAllEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `books`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author", "year"}))

	books, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_ReadAllError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `books`")).WillReturnError(errors.New("connection lost"))

	_, err := repo.ReadAll(context.Background())
	assert.ErrorContains(t, err, "connection lost")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_WriteAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `books`")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `books`")).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.WriteAll(context.Background(), []*book.Book{
		book.NewBook(1, "Some random book", "Jacob Wal", 2013),
		book.NewBook(3, "Han guk", "Kim Min", 2019),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_WriteAllEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `books`")).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.WriteAll(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_WriteAllRollback(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `books`")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `books`")).
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry '1' for key 'PRIMARY'"})
	mock.ExpectRollback()

	err := repo.WriteAll(context.Background(), []*book.Book{
		book.NewBook(1, "a", "b", 1),
		book.NewBook(1, "c", "d", 2),
	})
	assert.ErrorContains(t, err, "图书ID重复")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(&mysqldriver.MySQLError{Number: 1062}))
	assert.True(t, isDuplicateKey(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.False(t, isDuplicateKey(&mysqldriver.MySQLError{Number: 1146}))
	assert.False(t, isDuplicateKey(errors.New("connection refused")))
}

func TestBookModel_TextColumns(t *testing.T) {
	s, err := schema.Parse(&BookModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, name := range []string{"Title", "Author"} {
		field := s.LookUpField(name)
		require.NotNil(t, field, name)
		assert.Equal(t, schema.DataType("text"), field.DataType, name)
		assert.Zero(t, field.Size, name)
	}
}

func TestBookRepository_LongTitle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)
	title := strings.Repeat("長", 300)
	author := strings.Repeat("a", 1000)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `books`")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `books`")).
		WithArgs(1, title, author, 2024).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	require.NoError(t, repo.WriteAll(context.Background(), []*book.Book{book.NewBook(1, title, author, 2024)}))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `books`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author", "year"}).AddRow(1, title, author, 2024))
	books, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, title, books[0].Title)
	assert.Equal(t, author, books[0].Author)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_WriteAllDuplicateTranslated(t *testing.T) {
	cfg := newGormConfig("release")
	require.True(t, cfg.TranslateError)
	db, mock := openMockDB(t, cfg)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `books`")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `books`")).
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry '1' for key 'PRIMARY'"})
	mock.ExpectRollback()

	err := repo.WriteAll(context.Background(), []*book.Book{book.NewBook(1, "a", "b", 1)})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.ErrorContains(t, err, "图书ID重复")
	assert.NoError(t, mock.ExpectationsWereMet())
}
