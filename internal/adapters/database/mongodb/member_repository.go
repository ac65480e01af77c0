package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/projectdesk/pma_backend/internal/apperrors"
	"github.com/projectdesk/pma_backend/internal/core/domain"
	portsrepo "github.com/projectdesk/pma_backend/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MemberRepository persists team-member profiles in the teamMembers
// collection. Document ids are ObjectID hex strings assigned on save.
type MemberRepository struct {
	collection *mongo.Collection
}

func NewMemberRepository(db *mongo.Database) *MemberRepository {
	return &MemberRepository{collection: db.Collection("teamMembers")}
}

var _ portsrepo.MemberRepository = (*MemberRepository)(nil)

func (r *MemberRepository) SaveMember(ctx context.Context, member domain.TeamMember) (string, error) {
	if member.MemberID == "" {
		member.MemberID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, member); err != nil {
		return "", fmt.Errorf("failed to save member: %w", err)
	}
	return member.MemberID, nil
}

func (r *MemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.TeamMember, error) {
	var member domain.TeamMember
	err := r.collection.FindOne(ctx, bson.M{"_id": memberID}).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by ID: %w", err)
	}
	return &member, nil
}

func (r *MemberRepository) FindMemberByUserID(ctx context.Context, userID string) (*domain.TeamMember, error) {
	// First match wins when more than one profile references the
	// same credential
	var member domain.TeamMember
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by user ID: %w", err)
	}
	return &member, nil
}

func (r *MemberRepository) FindMembers(ctx context.Context) ([]domain.TeamMember, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer cursor.Close(ctx)

	var members []domain.TeamMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode members: %w", err)
	}
	return members, nil
}

func (r *MemberRepository) UpdateMember(ctx context.Context, member domain.TeamMember) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": member.MemberID}, member)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": memberID})
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
