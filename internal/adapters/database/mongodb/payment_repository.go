package mongodb

import (
	"context"
	"fmt"

	"github.com/projectdesk/pma_backend/internal/apperrors"
	"github.com/projectdesk/pma_backend/internal/core/domain"
	portsrepo "github.com/projectdesk/pma_backend/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentRepository persists payments in the payments collection.
// There is no update path; documents are inserted and deleted only.
type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{collection: db.Collection("payments")}
}

var _ portsrepo.PaymentRepository = (*PaymentRepository)(nil)

func (r *PaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (string, error) {
	if payment.PaymentID == "" {
		payment.PaymentID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, payment); err != nil {
		return "", fmt.Errorf("failed to save payment: %w", err)
	}
	return payment.PaymentID, nil
}

func (r *PaymentRepository) FindPayments(ctx context.Context) ([]domain.Payment, error) {
	return r.findByQuery(ctx, bson.M{})
}

func (r *PaymentRepository) FindPaymentsByType(ctx context.Context, t domain.PaymentType) ([]domain.Payment, error) {
	return r.findByQuery(ctx, bson.M{"type": t})
}

func (r *PaymentRepository) findByQuery(ctx context.Context, query bson.M) ([]domain.Payment, error) {
	// Newest first by creation time
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []domain.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": paymentID})
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
