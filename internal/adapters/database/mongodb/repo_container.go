package mongodb

import (
	"context"
	"fmt"

	portsrepo "github.com/projectdesk/pma_backend/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewRepositoryProvider wires the concrete repositories against one
// database and creates the indexes they rely on.
func NewRepositoryProvider(ctx context.Context, client *mongo.Client, dbName string) (portsrepo.RepositoryProvider, error) {
	db := client.Database(dbName)

	credentialRepo := NewCredentialRepository(db)
	if err := credentialRepo.EnsureIndexes(ctx); err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	return portsrepo.RepositoryProvider{
		MemberRepo:     NewMemberRepository(db),
		CredentialRepo: credentialRepo,
		ClientRepo:     NewClientRepository(db),
		ProjectRepo:    NewProjectRepository(db),
		TaskRepo:       NewTaskRepository(db),
		PaymentRepo:    NewPaymentRepository(db),
	}, nil
}

// mongoIndexUnique returns the options for a unique index.
func mongoIndexUnique() *options.IndexOptions {
	return options.Index().SetUnique(true)
}
