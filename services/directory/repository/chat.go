package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/adnangitonga/diagnoxis/internal/pkg/apperror"
	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
)

// ListChatsForParticipant returns summaries of all rooms the given
// (participant_type, participant_id) pair belongs to, ordered by the
// timestamp of each room's most recent message, newest first; rooms with
// no messages sort last.
func (r *DirectoryRepo) ListChatsForParticipant(ctx context.Context, participantType string, participantID int) ([]models.ChatSummary, error) {
	query := `
		SELECT c.id, c.name, c.created_at
		FROM chats c
		JOIN chat_participants p ON p.room_id = c.id
		LEFT JOIN (
			SELECT room_id, MAX(timestamp) AS last_ts
			FROM messages
			GROUP BY room_id
		) m ON m.room_id = c.id
		WHERE p.participant_id = $1 AND p.participant_type = $2
		ORDER BY m.last_ts DESC NULLS LAST, c.created_at DESC
	`

	rooms := []models.ChatRoom{}
	if err := r.db.SelectContext(ctx, &rooms, query, participantID, participantType); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to list chat rooms")
	}

	summaries := make([]models.ChatSummary, 0, len(rooms))
	for _, room := range rooms {
		participants, err := r.getRoomParticipants(ctx, room.ID)
		if err != nil {
			return nil, err
		}

		lastMessage, err := r.getLatestMessage(ctx, room.ID)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, models.ChatSummary{
			RoomID:       room.ID,
			Name:         room.Name,
			CreatedAt:    room.CreatedAt,
			Participants: participants,
			LastMessage:  lastMessage,
		})
	}

	return summaries, nil
}

// getRoomParticipants resolves all participant references of a room
func (r *DirectoryRepo) getRoomParticipants(ctx context.Context, roomID string) ([]models.ChatActor, error) {
	query := `
		SELECT id, room_id, participant_id, participant_type
		FROM chat_participants
		WHERE room_id = $1
		ORDER BY id
	`

	participants := []models.ChatParticipant{}
	if err := r.db.SelectContext(ctx, &participants, query, roomID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to list participants")
	}

	actors := make([]models.ChatActor, 0, len(participants))
	for _, p := range participants {
		actor, err := r.resolveActor(ctx, p.ParticipantType, p.ParticipantID)
		if err != nil {
			if apperror.IsNotFound(err) {
				// Participant rows may outlive a deleted entity; skip them
				continue
			}
			return nil, err
		}
		actors = append(actors, *actor)
	}

	return actors, nil
}

// getLatestMessage returns the room's most recent message with its resolved
// sender, or nil when the room has no messages.
func (r *DirectoryRepo) getLatestMessage(ctx context.Context, roomID string) (*models.MessageView, error) {
	query := `
		SELECT id, message, timestamp, room_id
		FROM messages
		WHERE room_id = $1
		ORDER BY timestamp DESC
		LIMIT 1
	`

	var message models.ChatMessage
	err := r.db.GetContext(ctx, &message, query, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to get latest message")
	}

	sender, err := r.getMessageSender(ctx, message.ID)
	if err != nil {
		return nil, err
	}

	return &models.MessageView{
		ID:        message.ID,
		Message:   message.Message,
		Timestamp: message.Timestamp,
		Sender:    sender,
	}, nil
}

// getMessageSender resolves a message's sender association, if present
func (r *DirectoryRepo) getMessageSender(ctx context.Context, messageID string) (*models.ChatActor, error) {
	query := `
		SELECT id, message_id, sender_id, sender_type
		FROM message_senders
		WHERE message_id = $1
	`

	var sender models.MessageSender
	err := r.db.GetContext(ctx, &sender, query, messageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to get message sender")
	}

	actor, err := r.resolveActor(ctx, sender.SenderType, sender.SenderID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return actor, nil
}

// resolveActor looks up a polymorphic (type, id) reference against the
// fixed variant set {user, admin, hospital}.
func (r *DirectoryRepo) resolveActor(ctx context.Context, actorType string, actorID int) (*models.ChatActor, error) {
	switch actorType {
	case models.ActorTypeUser:
		profile, err := r.getUserProfileByID(ctx, actorID)
		if err != nil {
			return nil, err
		}
		return &models.ChatActor{Type: models.ActorTypeUser, User: profile}, nil

	case models.ActorTypeAdmin:
		admin, err := r.getAdminByID(ctx, actorID)
		if err != nil {
			return nil, err
		}
		return &models.ChatActor{Type: models.ActorTypeAdmin, Admin: admin}, nil

	case models.ActorTypeHospital:
		hospital, err := r.GetHospitalByID(ctx, actorID)
		if err != nil {
			return nil, err
		}
		return &models.ChatActor{Type: models.ActorTypeHospital, Hospital: hospital}, nil

	default:
		return nil, apperror.New(apperror.ErrCodeInternal, fmt.Sprintf("unknown participant type %q", actorType))
	}
}
