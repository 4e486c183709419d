package providers

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UnavailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewUnavailabilityMongoRepository(db *mongo.Client, dbName string) contracts.UnavailabilityRepository {
	return &UnavailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUnavailabilities),
	}
}

// FindByProviderID returns (nil, nil) when the provider never authored a
// calendar. Callers treat the absence as "no declared exclusions".
func (repo *UnavailabilityMongoRepository) FindByProviderID(ctx context.Context, providerID string) (*models.UnavailabilityRecord, error) {
	var record models.UnavailabilityRecord
	err := repo.Collection.FindOne(ctx, bson.M{"_id": providerID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}
