// Package models - model video yêu thích (Favorite).
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite định nghĩa một video được người dùng đánh dấu yêu thích.
// VideoData là snapshot raw của video tại thời điểm đánh dấu.
// Mỗi cặp (userId, videoId) chỉ xuất hiện một lần, đảm bảo bằng compound unique index.
type Favorite struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId,omitempty" index:"compound:user_video_unique"`
	VideoID   string             `json:"videoId" bson:"videoId,omitempty" index:"compound:user_video_unique"`
	VideoData bson.M             `json:"videoData,omitempty" bson:"videoData,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
