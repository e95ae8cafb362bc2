package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
)

func TestListChatsForParticipant(t *testing.T) {
	repo, mock, cleanup := setupDirectoryRepoTest(t)
	defer cleanup()

	createdAt := time.Date(2025, 11, 2, 9, 30, 0, 0, time.UTC)
	sentAt := time.Date(2025, 11, 3, 14, 15, 0, 0, time.UTC)

	// Room listing, ordered by latest message
	roomRows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
		AddRow("CHAT-AA11BB22", "Oncology Ward", createdAt)
	mock.ExpectQuery("FROM chats c").
		WithArgs(7, models.ActorTypeUser).
		WillReturnRows(roomRows)

	// Participants of the room: a user and an admin
	participantRows := sqlmock.NewRows([]string{"id", "room_id", "participant_id", "participant_type"}).
		AddRow(1, "CHAT-AA11BB22", 7, models.ActorTypeUser).
		AddRow(2, "CHAT-AA11BB22", 2, models.ActorTypeAdmin)
	mock.ExpectQuery("FROM chat_participants").
		WithArgs("CHAT-AA11BB22").
		WillReturnRows(participantRows)

	profileRows := sqlmock.NewRows([]string{"work_id", "first_name", "last_name", "email", "occupation", "department", "hospital_id"}).
		AddRow("WRK-1001", "Jane", "Doe", "jane.doe@hospital.test", "Nurse", "Oncology", "HOSP-1A2B3C4D")
	mock.ExpectQuery("JOIN hospitals h").
		WithArgs(7).
		WillReturnRows(profileRows)

	adminRows := sqlmock.NewRows([]string{"id", "admin_id", "username", "email"}).
		AddRow(2, "ADMIN-55667788", "wardadmin", "admin@hospital.test")
	mock.ExpectQuery("FROM admins").
		WithArgs(2).
		WillReturnRows(adminRows)

	// Latest message of the room, sent by the user
	messageRows := sqlmock.NewRows([]string{"id", "message", "timestamp", "room_id"}).
		AddRow("a3c5e7f9-0000-0000-0000-000000000001", "Shift handover at 3pm", sentAt, "CHAT-AA11BB22")
	mock.ExpectQuery("FROM messages").
		WithArgs("CHAT-AA11BB22").
		WillReturnRows(messageRows)

	senderRows := sqlmock.NewRows([]string{"id", "message_id", "sender_id", "sender_type"}).
		AddRow(1, "a3c5e7f9-0000-0000-0000-000000000001", 7, models.ActorTypeUser)
	mock.ExpectQuery("FROM message_senders").
		WithArgs("a3c5e7f9-0000-0000-0000-000000000001").
		WillReturnRows(senderRows)

	senderProfileRows := sqlmock.NewRows([]string{"work_id", "first_name", "last_name", "email", "occupation", "department", "hospital_id"}).
		AddRow("WRK-1001", "Jane", "Doe", "jane.doe@hospital.test", "Nurse", "Oncology", "HOSP-1A2B3C4D")
	mock.ExpectQuery("JOIN hospitals h").
		WithArgs(7).
		WillReturnRows(senderProfileRows)

	summaries, err := repo.ListChatsForParticipant(context.Background(), models.ActorTypeUser, 7)

	assert.NoError(t, err)
	require.Len(t, summaries, 1)

	summary := summaries[0]
	assert.Equal(t, "CHAT-AA11BB22", summary.RoomID)
	assert.Equal(t, "Oncology Ward", summary.Name)
	assert.Equal(t, createdAt, summary.CreatedAt)

	require.Len(t, summary.Participants, 2)
	assert.Equal(t, models.ActorTypeUser, summary.Participants[0].Type)
	assert.Equal(t, "WRK-1001", summary.Participants[0].User.WorkID)
	assert.Equal(t, models.ActorTypeAdmin, summary.Participants[1].Type)
	assert.Equal(t, "wardadmin", summary.Participants[1].Admin.Username)

	require.NotNil(t, summary.LastMessage)
	assert.Equal(t, "Shift handover at 3pm", summary.LastMessage.Message)
	assert.Equal(t, sentAt, summary.LastMessage.Timestamp)
	require.NotNil(t, summary.LastMessage.Sender)
	assert.Equal(t, models.ActorTypeUser, summary.LastMessage.Sender.Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListChatsForParticipant_EmptyRoom(t *testing.T) {
	repo, mock, cleanup := setupDirectoryRepoTest(t)
	defer cleanup()

	createdAt := time.Date(2025, 11, 2, 9, 30, 0, 0, time.UTC)

	roomRows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
		AddRow("CHAT-CC33DD44", "New Room", createdAt)
	mock.ExpectQuery("FROM chats c").
		WithArgs(7, models.ActorTypeUser).
		WillReturnRows(roomRows)

	participantRows := sqlmock.NewRows([]string{"id", "room_id", "participant_id", "participant_type"}).
		AddRow(3, "CHAT-CC33DD44", 7, models.ActorTypeUser)
	mock.ExpectQuery("FROM chat_participants").
		WithArgs("CHAT-CC33DD44").
		WillReturnRows(participantRows)

	profileRows := sqlmock.NewRows([]string{"work_id", "first_name", "last_name", "email", "occupation", "department", "hospital_id"}).
		AddRow("WRK-1001", "Jane", "Doe", "jane.doe@hospital.test", "Nurse", "Oncology", "HOSP-1A2B3C4D")
	mock.ExpectQuery("JOIN hospitals h").
		WithArgs(7).
		WillReturnRows(profileRows)

	// No messages in the room yet
	mock.ExpectQuery("FROM messages").
		WithArgs("CHAT-CC33DD44").
		WillReturnError(sql.ErrNoRows)

	summaries, err := repo.ListChatsForParticipant(context.Background(), models.ActorTypeUser, 7)

	assert.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Nil(t, summaries[0].LastMessage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListChatsForParticipant_SkipsDeletedParticipant(t *testing.T) {
	repo, mock, cleanup := setupDirectoryRepoTest(t)
	defer cleanup()

	createdAt := time.Date(2025, 11, 2, 9, 30, 0, 0, time.UTC)

	roomRows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
		AddRow("CHAT-EE55FF66", "Archive", createdAt)
	mock.ExpectQuery("FROM chats c").
		WithArgs(7, models.ActorTypeUser).
		WillReturnRows(roomRows)

	participantRows := sqlmock.NewRows([]string{"id", "room_id", "participant_id", "participant_type"}).
		AddRow(4, "CHAT-EE55FF66", 99, models.ActorTypeUser)
	mock.ExpectQuery("FROM chat_participants").
		WithArgs("CHAT-EE55FF66").
		WillReturnRows(participantRows)

	// The referenced user no longer exists
	mock.ExpectQuery("JOIN hospitals h").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	mock.ExpectQuery("FROM messages").
		WithArgs("CHAT-EE55FF66").
		WillReturnError(sql.ErrNoRows)

	summaries, err := repo.ListChatsForParticipant(context.Background(), models.ActorTypeUser, 7)

	assert.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Empty(t, summaries[0].Participants)
	assert.NoError(t, mock.ExpectationsWereMet())
}
