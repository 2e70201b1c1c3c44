// Package exports dispatches asynchronous playlist-export jobs to the
// message broker. The consumer that renders and mails the export is a
// separate worker.
package exports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
)

// ErrInvalidTarget indicates a malformed export destination email.
var ErrInvalidTarget = errors.New("invalid target email")

// ExportQueue is the durable queue the export worker consumes.
const ExportQueue = "export:playlists"

// Publisher sends a message body to a named queue.
type Publisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

// Access verifies playlist ownership; satisfied by the playlists service.
type Access interface {
	VerifyOwner(ctx context.Context, playlistID, userID string) error
}

type exportMessage struct {
	PlaylistID  string `json:"playlistId"`
	TargetEmail string `json:"targetEmail"`
}

// Service dispatches export jobs.
type Service interface {
	Export(ctx context.Context, playlistID, userID, targetEmail string) error
}

type service struct {
	access    Access
	publisher Publisher
}

// New constructs a Service backed by the provided owner check and publisher.
func New(access Access, publisher Publisher) Service {
	return &service{access: access, publisher: publisher}
}

func (s *service) Export(ctx context.Context, playlistID, userID, targetEmail string) error {
	if _, err := mail.ParseAddress(targetEmail); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTarget, targetEmail)
	}
	if err := s.access.VerifyOwner(ctx, playlistID, userID); err != nil {
		return err
	}

	body, err := json.Marshal(exportMessage{PlaylistID: playlistID, TargetEmail: targetEmail})
	if err != nil {
		return fmt.Errorf("marshal export message: %w", err)
	}
	return s.publisher.Publish(ctx, ExportQueue, body)
}
