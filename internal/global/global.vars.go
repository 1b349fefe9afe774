// Package global chứa các biến toàn cục của ứng dụng: cấu hình server,
// phiên kết nối MongoDB, validator và registry các collection.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"movu_api/config"
	"movu_api/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users     string // Tên collection cho người dùng
	Videos    string // Tên collection cho video
	Ratings   string // Tên collection cho đánh giá video
	Favorites string // Tên collection cho video yêu thích
	Comments  string // Tên collection cho bình luận video
}

// InitColNames gán tên mặc định cho các collection
func InitColNames() {
	MongoDB_ColNames.Users = "users"
	MongoDB_ColNames.Videos = "videos"
	MongoDB_ColNames.Ratings = "ratings"
	MongoDB_ColNames.Favorites = "favorites"
	MongoDB_ColNames.Comments = "comments"
}

// Các biến toàn cục
var Validate *validator.Validate                                             // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                            // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                       // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)   // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
