// Package models - model bình luận video (Comment).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment định nghĩa bình luận của một người dùng trên một video
type Comment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId,omitempty" index:"single"`
	VideoID   string             `json:"videoId" bson:"videoId,omitempty" index:"single"`
	Text      string             `json:"text" bson:"text"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
