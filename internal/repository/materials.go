// Package repository provides data access for materials and rule sets.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/signcraft/sheet-pricing-service/internal/domain/model"
)

// MaterialConfig represents one stored material document: the stock sheet
// a product is cut from plus its material-level pricing configuration.
type MaterialConfig struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// MaterialID is the stable slug quote requests reference.
	MaterialID  string                `bson:"material_id" json:"material_id"`
	Name        string                `bson:"name" json:"name"`
	Sheet       model.SheetSpec       `bson:"sheet" json:"sheet"`
	Policy      *model.ChargingPolicy `bson:"charging_policy,omitempty" json:"charging_policy,omitempty"`
	VolumeTiers []model.VolumeTier    `bson:"volume_tiers,omitempty" json:"volume_tiers,omitempty"`
	Version     int                   `bson:"version" json:"version"`
	CreatedAt   time.Time             `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time             `bson:"updated_at" json:"updated_at"`
	CreatedBy   string                `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// MaterialsRepository provides methods for material catalog operations.
type MaterialsRepository struct {
	collection *mongo.Collection
}

// NewMaterialsRepository creates a new materials repository.
func NewMaterialsRepository(db *MongoDB) *MaterialsRepository {
	return &MaterialsRepository{
		collection: db.Materials,
	}
}

// GetByMaterialID returns the material with the given slug, or nil when it
// does not exist.
func (r *MaterialsRepository) GetByMaterialID(ctx context.Context, materialID string) (*MaterialConfig, error) {
	var config MaterialConfig
	err := r.collection.FindOne(ctx, bson.M{"material_id": materialID}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Upsert creates or replaces the material with the given slug, bumping the
// version counter on replacement.
func (r *MaterialsRepository) Upsert(ctx context.Context, materialID string, update MaterialConfig) (*MaterialConfig, error) {
	now := time.Now()

	var current MaterialConfig
	err := r.collection.FindOne(ctx, bson.M{"material_id": materialID}).Decode(&current)
	version := 1
	createdAt := now
	switch err {
	case nil:
		version = current.Version + 1
		createdAt = current.CreatedAt
	case mongo.ErrNoDocuments:
	default:
		return nil, err
	}

	doc := bson.M{
		"$set": bson.M{
			"name":            update.Name,
			"sheet":           update.Sheet,
			"charging_policy": update.Policy,
			"volume_tiers":    update.VolumeTiers,
			"version":         version,
			"created_at":      createdAt,
			"updated_at":      now,
			"created_by":      update.CreatedBy,
		},
	}

	var config MaterialConfig
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"material_id": materialID},
		doc,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns the material catalog sorted by name.
func (r *MaterialsRepository) List(ctx context.Context, limit int) ([]MaterialConfig, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []MaterialConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}

// Delete removes the material with the given slug. It reports whether a
// document was actually removed.
func (r *MaterialsRepository) Delete(ctx context.Context, materialID string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"material_id": materialID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
