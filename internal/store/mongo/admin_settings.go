package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsKey identifies the single admin-settings document.
const settingsKey = "admin_settings"

type adminSettingsDoc struct {
	Key      string               `bson:"key"`
	Override domain.AdminOverride `bson:"override"`
}

type AdminSettingsRepository struct {
	collection *mongo.Collection
}

func NewAdminSettingsRepository(db *mongo.Database) *AdminSettingsRepository {
	return &AdminSettingsRepository{
		collection: db.Collection("admin_settings"),
	}
}

// Get returns the stored override. A missing document is not an error; the
// default "off" override is returned instead.
func (r *AdminSettingsRepository) Get(ctx context.Context) (domain.AdminOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc adminSettingsDoc
	err := r.collection.FindOne(ctx, bson.M{"key": settingsKey}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.DefaultAdminOverride(), nil
		}
		return domain.AdminOverride{}, fmt.Errorf("failed to get admin settings: %w", err)
	}

	return doc.Override, nil
}

// Save upserts the override and returns the saved value.
func (r *AdminSettingsRepository) Save(ctx context.Context, override domain.AdminOverride) (domain.AdminOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	override.UpdatedAt = time.Now()

	filter := bson.M{"key": settingsKey}
	update := bson.M{
		"$set": adminSettingsDoc{
			Key:      settingsKey,
			Override: override,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return domain.AdminOverride{}, fmt.Errorf("failed to save admin settings: %w", err)
	}

	return override, nil
}
