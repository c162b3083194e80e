package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// GarageSize holds the capacity attributes of a garage.
type GarageSize struct {
	Capacity float64 `json:"capacity" bson:"capacity"`
}

// Garage represents a storage facility.
type Garage struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Num  int                `json:"num" bson:"num"`
	Name string             `json:"name" bson:"name"`
	Size GarageSize         `json:"size" bson:"size"`
}
