package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserRejectsBlankFields(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	st := New(db)

	tests := []struct {
		name     string
		username string
		password string
		fullname string
	}{
		{name: "missing username", password: "secret", fullname: "Someone"},
		{name: "missing password", username: "someone", fullname: "Someone"},
		{name: "missing fullname", username: "someone", password: "secret"},
		{name: "whitespace username", username: "   ", password: "secret", fullname: "Someone"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := st.CreateUser(context.Background(), tc.username, tc.password, tc.fullname)
			if !errors.Is(err, ErrInvalidUser) {
				t.Fatalf("expected ErrInvalidUser but got %v", err)
			}
		})
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO users (id, username, password, fullname)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`)).
		WithArgs(sqlmock.AnyArg(), "dicoding", sqlmock.AnyArg(), "Dicoding Indonesia").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	st := New(db)
	_, err = st.CreateUser(context.Background(), "dicoding", "secret", "Dicoding Indonesia")
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists but got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVerifyCredentials(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	query := regexp.QuoteMeta(`
		SELECT id, password
		FROM users
		WHERE username = $1
	`)
	mock.ExpectQuery(query).
		WithArgs("dicoding").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password"}).AddRow("user-abc123", hash))

	st := New(db)
	id, err := st.VerifyCredentials(context.Background(), "dicoding", "secret")
	if err != nil {
		t.Fatalf("VerifyCredentials: %v", err)
	}
	if id != "user-abc123" {
		t.Fatalf("expected user-abc123, got %q", id)
	}
}

func TestVerifyCredentialsWrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, password
		FROM users
		WHERE username = $1
	`)).
		WithArgs("dicoding").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password"}).AddRow("user-abc123", hash))

	st := New(db)
	if _, err := st.VerifyCredentials(context.Background(), "dicoding", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials but got %v", err)
	}
}

func TestVerifyCredentialsUnknownUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, password
		FROM users
		WHERE username = $1
	`)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password"}))

	st := New(db)
	if _, err := st.VerifyCredentials(context.Background(), "nobody", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials but got %v", err)
	}
}
