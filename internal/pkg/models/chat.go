package models

import "time"

// Participant and sender type discriminators
const (
	ActorTypeUser     = "user"
	ActorTypeAdmin    = "admin"
	ActorTypeHospital = "hospital"
)

// ChatRoom represents a chat room. ID is the public natural key
// ("CHAT-XXXXXXXX").
type ChatRoom struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ChatMessage represents a single message in a room
type ChatMessage struct {
	ID        string    `json:"id" db:"id"`
	Message   string    `json:"message" db:"message"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	RoomID    string    `json:"room_id" db:"room_id"`
}

// MessageSender is the polymorphic sender association of a message:
// (sender_type, sender_id) over {user, admin, hospital}. A message has at
// most one sender row.
type MessageSender struct {
	ID         int    `json:"-" db:"id"`
	MessageID  string `json:"message_id" db:"message_id"`
	SenderID   int    `json:"sender_id" db:"sender_id"`
	SenderType string `json:"sender_type" db:"sender_type"`
}

// ChatParticipant associates an entity with a room by
// (participant_type, participant_id).
type ChatParticipant struct {
	ID              int    `json:"-" db:"id"`
	RoomID          string `json:"room_id" db:"room_id"`
	ParticipantID   int    `json:"participant_id" db:"participant_id"`
	ParticipantType string `json:"participant_type" db:"participant_type"`
}

// ChatActor is the resolved form of a polymorphic (type, id) reference:
// a tagged union over the fixed variant set, exactly one of which is set.
type ChatActor struct {
	Type     string       `json:"type"`
	User     *UserProfile `json:"user,omitempty"`
	Admin    *Admin       `json:"admin,omitempty"`
	Hospital *Hospital    `json:"hospital,omitempty"`
}

// MessageView is a message with its resolved sender, if any
type MessageView struct {
	ID        string     `json:"id"`
	Message   string     `json:"message"`
	Timestamp time.Time  `json:"timestamp"`
	Sender    *ChatActor `json:"sender,omitempty"`
}

// ChatSummary is the per-room payload of the chat listing: participants,
// the most recent message and creation time. Rooms are ordered by their
// latest message timestamp, most recent first; rooms with no messages last.
type ChatSummary struct {
	RoomID       string       `json:"room_id"`
	Name         string       `json:"name"`
	CreatedAt    time.Time    `json:"created_at"`
	Participants []ChatActor  `json:"participants"`
	LastMessage  *MessageView `json:"last_message,omitempty"`
}

// NewChatID generates a public chat room identifier
func NewChatID() string {
	return newPublicID("CHAT")
}
