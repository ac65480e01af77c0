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

// ClientRepository persists customer records in the clients collection.
type ClientRepository struct {
	collection *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{collection: db.Collection("clients")}
}

var _ portsrepo.ClientRepository = (*ClientRepository)(nil)

func (r *ClientRepository) SaveClient(ctx context.Context, client domain.Client) (string, error) {
	if client.ClientID == "" {
		client.ClientID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, client); err != nil {
		return "", fmt.Errorf("failed to save client: %w", err)
	}
	return client.ClientID, nil
}

func (r *ClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	var client domain.Client
	err := r.collection.FindOne(ctx, bson.M{"_id": clientID}).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID: %w", err)
	}
	return &client, nil
}

func (r *ClientRepository) FindClients(ctx context.Context) ([]domain.Client, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []domain.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("failed to decode clients: %w", err)
	}
	return clients, nil
}

func (r *ClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": client.ClientID}, client)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": clientID})
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
