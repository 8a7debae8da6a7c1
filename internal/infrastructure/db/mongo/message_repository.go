package mongo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mercadillo/storefront/internal/core/domain"
)

type MessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{coll: db.Collection(messagesCollection)}
}

type messageDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	From   string             `bson:"from"`
	To     string             `bson:"to"`
	Body   string             `bson:"body"`
	SentAt time.Time          `bson:"sent_at"`
}

func (r *MessageRepository) Insert(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	doc := messageDoc{
		From:   message.From,
		To:     message.To,
		Body:   message.Body,
		SentAt: message.SentAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	saved := *message
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		saved.ID = oid.Hex()
	}
	return &saved, nil
}

func (r *MessageRepository) FindByParticipant(ctx context.Context, username string) ([]*domain.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"from": username},
		bson.M{"to": username},
	}}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "sent_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Message
	for cursor.Next(ctx) {
		var doc messageDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		out = append(out, &domain.Message{
			ID:     doc.ID.Hex(),
			From:   doc.From,
			To:     doc.To,
			Body:   doc.Body,
			SentAt: doc.SentAt.UTC(),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	return out, nil
}

// PartnersOf returns the distinct counterparts of the given usernames: every
// sender of a message addressed to one of them and every recipient of a
// message sent by one of them, minus the given usernames.
func (r *MessageRepository) PartnersOf(ctx context.Context, usernames []string) ([]string, error) {
	senders, err := r.coll.Distinct(ctx, "from", bson.M{"to": bson.M{"$in": usernames}})
	if err != nil {
		return nil, fmt.Errorf("distinct senders: %w", err)
	}
	recipients, err := r.coll.Distinct(ctx, "to", bson.M{"from": bson.M{"$in": usernames}})
	if err != nil {
		return nil, fmt.Errorf("distinct recipients: %w", err)
	}

	given := make(map[string]struct{}, len(usernames))
	for _, u := range usernames {
		given[u] = struct{}{}
	}

	seen := make(map[string]struct{})
	var out []string
	for _, values := range [][]interface{}{senders, recipients} {
		for _, v := range values {
			name, ok := v.(string)
			if !ok {
				continue
			}
			if _, isGiven := given[name]; isGiven {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out, nil
}
