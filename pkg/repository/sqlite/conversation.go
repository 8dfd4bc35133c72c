package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/quantum-travel/quantumchat/pkg/domain/model"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
)

type conversationRepository struct {
	db *sql.DB
}

func (r *conversationRepository) GetOrCreate(ctx context.Context, id types.ConversationID) (types.ConversationID, []*model.Message, error) {
	if id == "" {
		id = types.NewConversationID()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO conversations (id, created_at) VALUES (?, ?)`,
		id.String(), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", nil, goerr.Wrap(err, "failed to upsert conversation", goerr.V("id", id))
	}

	msgs, err := r.Get(ctx, id)
	if err != nil {
		return "", nil, err
	}
	return id, msgs, nil
}

func (r *conversationRepository) Append(ctx context.Context, id types.ConversationID, msg *model.Message) error {
	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM conversations WHERE id = ?`, id.String(),
	).Scan(&exists)
	if err != nil {
		return goerr.Wrap(err, "failed to check conversation", goerr.V("id", id))
	}
	if exists == 0 {
		return goerr.Wrap(ErrNotFound, "conversation not found", goerr.V("id", id))
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO messages (id, conversation_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		msg.ID.String(), id.String(), msg.Role.String(), msg.Content,
		msg.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to insert message", goerr.V("id", id), goerr.V("messageID", msg.ID))
	}
	return nil
}

func (r *conversationRepository) Get(ctx context.Context, id types.ConversationID) ([]*model.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, role, content, created_at FROM messages WHERE conversation_id = ? ORDER BY rowid`,
		id.String(),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query messages", goerr.V("id", id))
	}
	defer rows.Close()

	msgs := []*model.Message{}
	for rows.Next() {
		var msgID, role, content, createdAt string
		if err := rows.Scan(&msgID, &role, &content, &createdAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan message", goerr.V("id", id))
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse message timestamp", goerr.V("id", id), goerr.V("created_at", createdAt))
		}
		msgs = append(msgs, &model.Message{
			ID:        types.MessageID(msgID),
			Role:      types.Role(role),
			Content:   content,
			CreatedAt: ts,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate messages", goerr.V("id", id))
	}
	return msgs, nil
}

func (r *conversationRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversations`).Scan(&n); err != nil {
		return 0, goerr.Wrap(err, "failed to count conversations")
	}
	return n, nil
}
