package mongodb

import (
	"crypto/sha1"
	"encoding/base64"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GenerateDeterministicID derives a document ID from its parent ID and the
// resource's path segment. Two concurrent creates of the same resource
// therefore compute the same ID and collide on the unique _id index instead
// of producing siblings.
func GenerateDeterministicID(parentID, segment string) string {
	sum := sha1.Sum([]byte(parentID + "-" + segment))
	return base64.URLEncoding.EncodeToString(sum[:])
}

// IsDuplicateKey reports whether err is a MongoDB duplicate key error.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// BuildSetField builds a $set update for a single field
func BuildSetField(field string, value interface{}) bson.M {
	return bson.M{"$set": bson.M{field: value}}
}

// BuildUnsetField builds an $unset update for a single field
func BuildUnsetField(field string) bson.M {
	return bson.M{"$unset": bson.M{field: ""}}
}
