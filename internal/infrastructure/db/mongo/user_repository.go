package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mercadillo/storefront/internal/core/domain"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	DisplayName  string             `bson:"display_name"`
	Email        string             `bson:"email,omitempty"`
	Age          int                `bson:"age,omitempty"`
	Role         string             `bson:"role"`
	AvatarRef    string             `bson:"avatar_ref,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		DisplayName:  d.DisplayName,
		Email:        d.Email,
		Age:          d.Age,
		Role:         d.Role,
		AvatarRef:    d.AvatarRef,
		PasswordHash: d.PasswordHash,
		CreatedAt:    unixToTime(d.CreatedAt),
		UpdatedAt:    unixToTime(d.UpdatedAt),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := userDoc{
		Username:     user.Username,
		DisplayName:  user.DisplayName,
		Email:        user.Email,
		Age:          user.Age,
		Role:         user.Role,
		AvatarRef:    user.AvatarRef,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateUser
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) UsernamesByRole(ctx context.Context, role string) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "username", bson.M{"role": role})
	if err != nil {
		return nil, fmt.Errorf("usernames by role: %w", err)
	}

	names := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			names = append(names, s)
		}
	}
	return names, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
