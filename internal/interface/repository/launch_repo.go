package repository

import (
	"context"
	"errors"

	"mission-control/internal/domain"
	"mission-control/internal/domain/entity"
	"mission-control/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLaunchRepository implements LaunchRepository
type MongoLaunchRepository struct {
	collection *mongo.Collection
}

// NewMongoLaunchRepository creates a new launch repository
func NewMongoLaunchRepository(db *mongo.Database) repository.LaunchRepository {
	collection := db.Collection("launches")

	// Create unique index on flightNumber
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"flightNumber": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoLaunchRepository{
		collection: collection,
	}
}

// Upsert inserts or fully replaces the record matching flightNumber. Every
// field is written, so re-upserting an existing flight number resets fields
// rather than merging into them.
func (r *MongoLaunchRepository) Upsert(ctx context.Context, launch *entity.Launch) error {
	updateDoc := bson.M{
		"flightNumber": launch.FlightNumber,
		"mission":      launch.Mission,
		"rocket":       launch.Rocket,
		"launchDate":   launch.LaunchDate,
		"target":       launch.Target,
		"customers":    launch.Customers,
		"upcoming":     launch.Upcoming,
		"success":      launch.Success,
	}

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"flightNumber": launch.FlightNumber}

	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updateDoc}, opts)
	return err
}

// FindByFlightNumber finds a launch by flight number
func (r *MongoLaunchRepository) FindByFlightNumber(ctx context.Context, flightNumber int) (*entity.Launch, error) {
	var launch entity.Launch
	err := r.collection.FindOne(ctx, bson.M{"flightNumber": flightNumber}).Decode(&launch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrLaunchNotFound
	}
	if err != nil {
		return nil, err
	}
	return &launch, nil
}

// FindMax returns the record with the greatest flightNumber, or
// ErrLaunchNotFound when the collection is empty.
func (r *MongoLaunchRepository) FindMax(ctx context.Context) (*entity.Launch, error) {
	opts := options.FindOne().SetSort(bson.M{"flightNumber": -1})

	var launch entity.Launch
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&launch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrLaunchNotFound
	}
	if err != nil {
		return nil, err
	}
	return &launch, nil
}

// List returns launches ordered ascending by flightNumber. A limit of 0
// returns every document. The Mongo _id is excluded from the projection.
func (r *MongoLaunchRepository) List(ctx context.Context, skip, limit int64) ([]entity.Launch, error) {
	opts := options.Find().
		SetSort(bson.M{"flightNumber": 1}).
		SetSkip(skip).
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	launches := []entity.Launch{}
	if err := cursor.All(ctx, &launches); err != nil {
		return nil, err
	}
	return launches, nil
}

// MarkAborted sets upcoming=false, success=false on the matching record.
// No upsert: a missing flight number must stay missing. Returns whether
// exactly one record was modified.
func (r *MongoLaunchRepository) MarkAborted(ctx context.Context, flightNumber int) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"flightNumber": flightNumber},
		bson.M{"$set": bson.M{
			"upcoming": false,
			"success":  false,
		}},
	)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}
