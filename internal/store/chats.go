package store

import (
	"context"

	"storefront-api/internal/models"
	"storefront-api/internal/util"
)

// InsertChatMessage appends one chatbot exchange to the log. The log is
// never read back by any endpoint.
func (s *Store) InsertChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	ctx, span := util.StartSpan(ctx, "Store.InsertChatMessage")
	defer span.End()

	_, err := s.chatMessages().InsertOne(ctx, msg)
	return err
}
