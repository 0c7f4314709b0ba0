package validators

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// accountSchema constrains the accounts collection at the database
// level so malformed writes are rejected even outside this app.
var accountSchema = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"full_name", "email", "password_hash", "role", "status"},
		"properties": bson.M{
			"full_name":     bson.M{"bsonType": "string", "minLength": 1},
			"email":         bson.M{"bsonType": "string", "pattern": `^[^\s@]+@[^\s@]+\.[^\s@]+$`},
			"password_hash": bson.M{"bsonType": "string", "minLength": 1},
			"role":          bson.M{"enum": []string{"student", "faculty", "admin"}},
			"status":        bson.M{"enum": []string{"Verified", "Pending"}},
			"suspended":     bson.M{"bsonType": "bool"},
		},
	},
}

// EnsureAll applies collection validators, creating collections that
// do not exist yet. Safe to run on every startup.
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := ensure(ctx, db, "accounts", accountSchema); err != nil {
		return err
	}
	logger.Info("collection validators ensured")
	return nil
}

func ensure(ctx context.Context, db *mongo.Database, coll string, schema bson.M) error {
	err := db.RunCommand(ctx, bson.D{
		{Key: "collMod", Value: coll},
		{Key: "validator", Value: schema},
		{Key: "validationLevel", Value: "moderate"},
	}).Err()
	if err == nil {
		return nil
	}

	// collMod fails when the collection does not exist yet.
	createErr := db.RunCommand(ctx, bson.D{
		{Key: "create", Value: coll},
		{Key: "validator", Value: schema},
	}).Err()
	if createErr != nil {
		return fmt.Errorf("ensure validator for %s: %w", coll, createErr)
	}
	return nil
}
