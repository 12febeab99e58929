package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// idFilter builds the _id filter for an id string. Driver-inserted documents
// carry ObjectID _ids that decode to hex on read, so hex ids must be
// converted back before querying. Non-hex ids (user ids issued by the auth
// service) are matched as plain strings.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}

// insertedIDHex converts an InsertOne/InsertMany result id to the string
// form the models carry.
func insertedIDHex(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	}
	return ""
}
