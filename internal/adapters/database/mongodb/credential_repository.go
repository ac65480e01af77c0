package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/projectdesk/pma_backend/internal/apperrors"
	"github.com/projectdesk/pma_backend/internal/core/domain"
	portsrepo "github.com/projectdesk/pma_backend/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CredentialRepository persists sign-in credentials in the credentials
// collection. Email uniqueness relies on a unique index created at
// startup.
type CredentialRepository struct {
	collection *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{collection: db.Collection("credentials")}
}

var _ portsrepo.CredentialRepository = (*CredentialRepository)(nil)

func (r *CredentialRepository) SaveCredential(ctx context.Context, cred domain.Credential) (string, error) {
	if cred.UserID == "" {
		cred.UserID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, cred); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.ErrDuplicate
		}
		return "", fmt.Errorf("failed to save credential: %w", err)
	}
	return cred.UserID, nil
}

func (r *CredentialRepository) FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	var cred domain.Credential
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&cred)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find credential by email: %w", err)
	}
	return &cred, nil
}

func (r *CredentialRepository) FindCredentialByID(ctx context.Context, userID string) (*domain.Credential, error) {
	var cred domain.Credential
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&cred)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find credential by ID: %w", err)
	}
	return &cred, nil
}

func (r *CredentialRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"passwordHash": passwordHash}},
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CredentialRepository) SetResetToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"resetTokenHash":   tokenHash,
			"resetTokenExpiry": expiry,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CredentialRepository) ClearResetToken(ctx context.Context, userID string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$unset": bson.M{
			"resetTokenHash":   "",
			"resetTokenExpiry": "",
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to clear reset token: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique email index. Called once at startup.
func (r *CredentialRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: mongoIndexUnique(),
	})
	if err != nil {
		return fmt.Errorf("failed to create credential email index: %w", err)
	}
	return nil
}
