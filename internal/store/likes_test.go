package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

const (
	insertLikeQuery = `
		INSERT INTO user_album_likes (id, user_id, album_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, album_id) DO NOTHING
	`
	deleteLikeQuery = `
		DELETE FROM user_album_likes
		WHERE user_id = $1 AND album_id = $2
	`
)

func TestToggleLikeInserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(insertLikeQuery)).
		WithArgs(sqlmock.AnyArg(), "user-1", "album-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	wasLiked, err := s.ToggleLike(context.Background(), "user-1", "album-1")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if wasLiked {
		t.Fatal("expected wasLiked=false on first toggle")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestToggleLikeDeletesOnConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(insertLikeQuery)).
		WithArgs(sqlmock.AnyArg(), "user-1", "album-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(deleteLikeQuery)).
		WithArgs("user-1", "album-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	wasLiked, err := s.ToggleLike(context.Background(), "user-1", "album-1")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if !wasLiked {
		t.Fatal("expected wasLiked=true on second toggle")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCountLikes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT COUNT(*)
		FROM user_album_likes
		WHERE album_id = $1
	`)).
		WithArgs("album-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := s.CountLikes(context.Background(), "album-1")
	if err != nil {
		t.Fatalf("CountLikes: %v", err)
	}
	if count != 7 {
		t.Fatalf("expected 7 likes, got %d", count)
	}
}
