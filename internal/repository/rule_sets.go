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

// RuleSetConfig represents one versioned pricing rule-set document. At
// most one document is active; replacing the rule set deactivates the
// previous version rather than mutating it, so history stays auditable.
type RuleSetConfig struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Rules     []model.PricingRule `bson:"rules" json:"rules"`
	Active    bool                `bson:"active" json:"active"`
	Version   int                 `bson:"version" json:"version"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updated_at"`
	CreatedBy string              `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// RuleSetsRepository provides methods for rule-set operations.
type RuleSetsRepository struct {
	collection *mongo.Collection
}

// NewRuleSetsRepository creates a new rule sets repository.
func NewRuleSetsRepository(db *MongoDB) *RuleSetsRepository {
	return &RuleSetsRepository{
		collection: db.RuleSets,
	}
}

// GetActive returns the active rule set, or nil when none is configured.
func (r *RuleSetsRepository) GetActive(ctx context.Context) (*RuleSetConfig, error) {
	var config RuleSetConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// GetByID returns the rule set with the given hex ID, or nil when it does
// not exist.
func (r *RuleSetsRepository) GetByID(ctx context.Context, id string) (*RuleSetConfig, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var config RuleSetConfig
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create stores a new rule-set version and makes it active, deactivating
// the previous active version.
func (r *RuleSetsRepository) Create(ctx context.Context, rules []model.PricingRule, createdBy string) (*RuleSetConfig, error) {
	version := 1
	if current, err := r.GetActive(ctx); err != nil {
		return nil, err
	} else if current != nil {
		version = current.Version + 1
	}

	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := RuleSetConfig{
		ID:        primitive.NewObjectID(),
		Rules:     rules,
		Active:    true,
		Version:   version,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
	}

	if _, err := r.collection.InsertOne(ctx, config); err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns rule-set versions, newest first.
func (r *RuleSetsRepository) List(ctx context.Context, limit int) ([]RuleSetConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
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

	var configs []RuleSetConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
