// Package models - model đánh giá video (Rating).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating định nghĩa đánh giá của một người dùng cho một video.
// Mỗi cặp (userId, videoId) chỉ có tối đa một đánh giá, đảm bảo bằng compound unique index.
type Rating struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId,omitempty" index:"compound:user_video_unique"`
	VideoID   string             `json:"videoId" bson:"videoId,omitempty" index:"compound:user_video_unique"`
	Rating    int                `json:"rating" bson:"rating"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
