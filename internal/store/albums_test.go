package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestValidateAlbum(t *testing.T) {
	tests := []struct {
		name    string
		album   string
		year    int
		wantErr bool
	}{
		{
			name:  "valid album",
			album: "Selected Ambient Works",
			year:  1992,
		},
		{
			name:    "missing name",
			album:   "",
			year:    2020,
			wantErr: true,
		},
		{
			name:    "year before 1900",
			album:   "Wax Cylinder Favourites",
			year:    1899,
			wantErr: true,
		},
		{
			name:    "year in the future",
			album:   "Unreleased",
			year:    time.Now().Year() + 1,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := validateAlbum(tc.album, tc.year)
			if tc.wantErr && !errors.Is(err, ErrInvalidAlbum) {
				t.Fatalf("expected ErrInvalidAlbum but got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected nil error but got %v", err)
			}
		})
	}
}

func TestCreateAlbumSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO albums (id, name, year)
		VALUES ($1, $2, $3)
		RETURNING id
	`)).
		WithArgs(sqlmock.AnyArg(), "Mezzanine", 1998).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("album-abc123"))

	id, err := s.CreateAlbum(context.Background(), "Mezzanine", 1998)
	if err != nil {
		t.Fatalf("CreateAlbum: %v", err)
	}
	if id != "album-abc123" {
		t.Fatalf("unexpected id %q", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAlbumByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, year, cover_url
		FROM albums
		WHERE id = $1
	`)).
		WithArgs("album-missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "year", "cover_url"}))

	if _, err := s.AlbumByID(context.Background(), "album-missing"); !errors.Is(err, ErrAlbumNotFound) {
		t.Fatalf("expected ErrAlbumNotFound but got %v", err)
	}
}

func TestUpdateAlbumNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE albums
		SET name = $1, year = $2
		WHERE id = $3
	`)).
		WithArgs("Dummy", 1994, "album-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.UpdateAlbum(context.Background(), "album-missing", "Dummy", 1994); !errors.Is(err, ErrAlbumNotFound) {
		t.Fatalf("expected ErrAlbumNotFound but got %v", err)
	}
}
