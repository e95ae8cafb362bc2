package usecase

import (
	"context"

	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
)

// ListChats returns chat summaries for the authenticated caller. Session
// tokens are only ever issued to staff users, so the caller always resolves
// to a user participant.
func (u *DirectoryUC) ListChats(ctx context.Context, email string) ([]models.ChatSummary, error) {
	user, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return u.repo.ListChatsForParticipant(ctx, models.ActorTypeUser, user.ID)
}
