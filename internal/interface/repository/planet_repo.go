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

// MongoPlanetRepository implements PlanetRepository
type MongoPlanetRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanetRepository creates a new planet repository
func NewMongoPlanetRepository(db *mongo.Database) repository.PlanetRepository {
	collection := db.Collection("planets")

	// Create unique index on keplerName
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"keplerName": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoPlanetRepository{
		collection: collection,
	}
}

// UpsertByName inserts a planet record if the name is absent; an existing
// record is left unchanged, so re-ingestion never duplicates.
func (r *MongoPlanetRepository) UpsertByName(ctx context.Context, keplerName string) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"keplerName": keplerName},
		bson.M{"$setOnInsert": bson.M{"keplerName": keplerName}},
		opts,
	)
	return err
}

// FindByName finds a planet by its kepler name
func (r *MongoPlanetRepository) FindByName(ctx context.Context, keplerName string) (*entity.Planet, error) {
	var planet entity.Planet
	err := r.collection.FindOne(ctx, bson.M{"keplerName": keplerName}).Decode(&planet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrPlanetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &planet, nil
}

// ListAll returns every planet record with the Mongo _id excluded.
func (r *MongoPlanetRepository) ListAll(ctx context.Context) ([]entity.Planet, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	planets := []entity.Planet{}
	if err := cursor.All(ctx, &planets); err != nil {
		return nil, err
	}
	return planets, nil
}
