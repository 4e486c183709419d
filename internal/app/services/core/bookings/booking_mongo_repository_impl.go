package bookings

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

// EnsureIndexes creates the partial unique index on (providerId, date,
// time) over active statuses. This is the store-level double-booking
// guarantee: the in-process pre-check in the booking usecase only
// narrows the race window, the index is what makes the second of two
// racing writes fail.
func (repo *BookingMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "providerId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "time", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": models.ActiveBookingStatuses()},
			}),
	}
	_, err := repo.Collection.Indexes().CreateOne(ctx, indexModel)
	return err
}

func (repo *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := repo.Collection.FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func buildFilterQuery(filter *requests.BookingQueryParams) bson.M {
	query := bson.M{}
	if filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	if filter.ProviderID != "" {
		query["providerId"] = filter.ProviderID
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	return query
}

func (repo *BookingMongoRepository) FindByFilter(ctx context.Context, filter *requests.BookingQueryParams) ([]models.Booking, error) {
	query := buildFilterQuery(filter)

	findOptions := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "time", Value: 1},
	})
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		findOptions.SetSkip(int64((page - 1) * filter.PageSize))
		findOptions.SetLimit(int64(filter.PageSize))
	}

	var bookings []models.Booking
	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &bookings)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (repo *BookingMongoRepository) CountByFilter(ctx context.Context, filter *requests.BookingQueryParams) (int64, error) {
	total, err := repo.Collection.CountDocuments(ctx, buildFilterQuery(filter))
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return total, nil
}

func (repo *BookingMongoRepository) FindActiveByProviderDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	query := bson.M{
		"providerId": providerID,
		"date":       date,
		"status":     bson.M{"$in": models.ActiveBookingStatuses()},
	}

	var bookings []models.Booking
	cursor, err := repo.Collection.Find(ctx, query)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &bookings)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (repo *BookingMongoRepository) FindActiveByPatient(ctx context.Context, patientID string) ([]models.Booking, error) {
	query := bson.M{
		"patientId": patientID,
		"status":    bson.M{"$in": models.ActiveBookingStatuses()},
	}

	var bookings []models.Booking
	cursor, err := repo.Collection.Find(ctx, query)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &bookings)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (repo *BookingMongoRepository) Insert(ctx context.Context, booking *models.Booking) (string, error) {
	_, err := repo.Collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrMongoDBDuplicateDocument(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return booking.ID, nil
}

func (repo *BookingMongoRepository) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, message string, lastUpdated int64) error {
	update := bson.M{
		"$set": bson.M{
			"status":      status,
			"message":     message,
			"lastUpdated": lastUpdated,
		},
	}

	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": bookingID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrBookingNotFound(mongo.ErrNoDocuments)
	}
	return nil
}
