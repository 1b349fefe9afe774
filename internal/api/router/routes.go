// Package router định nghĩa toàn bộ REST surface của ứng dụng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "movu_api/internal/api/base/handler"
	cataloghdl "movu_api/internal/api/catalog/handler"
	commenthdl "movu_api/internal/api/comment/handler"
	favoritehdl "movu_api/internal/api/favorite/handler"
	ratinghdl "movu_api/internal/api/rating/handler"
	userhdl "movu_api/internal/api/user/handler"
	videohdl "movu_api/internal/api/video/handler"
	"movu_api/internal/mailer"
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Mailer được truyền từ caller để user handler gửi email đặt lại mật khẩu.
func SetupRoutes(app *fiber.App, m mailer.Mailer) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)

	// Health check nằm ngoài prefix version
	systemHandler := basehdl.NewSystemHandler()
	app.Get("/health", systemHandler.HandleHealth)

	if err := registerUserRoutes(v1, m); err != nil {
		return err
	}
	if err := registerVideoRoutes(v1); err != nil {
		return err
	}
	if err := registerRatingRoutes(v1); err != nil {
		return err
	}
	if err := registerFavoriteRoutes(v1); err != nil {
		return err
	}
	if err := registerCommentRoutes(v1); err != nil {
		return err
	}
	registerPexelsRoutes(v1)

	return nil
}

// registerUserRoutes đăng ký route người dùng, đăng nhập và đặt lại mật khẩu
func registerUserRoutes(v1 fiber.Router, m mailer.Mailer) error {
	userHandler, err := userhdl.NewUserHandler(m)
	if err != nil {
		return fmt.Errorf("failed to create user handler: %v", err)
	}

	users := v1.Group("/users")
	users.Post("", userHandler.InsertOne)
	users.Get("", userHandler.Find)
	users.Get("/:id", userHandler.FindOneById)
	users.Put("/:id", userHandler.UpdateById)
	users.Delete("/:id", userHandler.DeleteById)

	v1.Post("/sessions/login", userHandler.HandleLogin)

	auth := v1.Group("/auth")
	auth.Post("/reset-password", userHandler.HandleRequestReset)
	auth.Post("/reset-password/confirm", userHandler.HandleConfirmReset)

	return nil
}

// registerVideoRoutes đăng ký route quản lý video nội bộ
func registerVideoRoutes(v1 fiber.Router) error {
	videoHandler, err := videohdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("failed to create video handler: %v", err)
	}

	videos := v1.Group("/videos")
	videos.Post("", videoHandler.HandleCreate)
	videos.Get("", videoHandler.Find)
	videos.Get("/:pexelsId", videoHandler.HandleFindByPexelsID)

	return nil
}

// registerRatingRoutes đăng ký route đánh giá video
func registerRatingRoutes(v1 fiber.Router) error {
	ratingHandler, err := ratinghdl.NewRatingHandler()
	if err != nil {
		return fmt.Errorf("failed to create rating handler: %v", err)
	}

	ratings := v1.Group("/ratings")
	ratings.Post("", ratingHandler.HandleRate)
	ratings.Get("/average/:videoId", ratingHandler.HandleAverageForVideo)
	ratings.Get("/user", ratingHandler.HandleForUserAndVideo)

	return nil
}

// registerFavoriteRoutes đăng ký route danh sách yêu thích.
// Route tĩnh /check/favorite phải đăng ký trước /:userId để không bị param route che mất.
func registerFavoriteRoutes(v1 fiber.Router) error {
	favoriteHandler, err := favoritehdl.NewFavoriteHandler()
	if err != nil {
		return fmt.Errorf("failed to create favorite handler: %v", err)
	}

	favorites := v1.Group("/favorites")
	favorites.Post("", favoriteHandler.HandleAdd)
	favorites.Delete("", favoriteHandler.HandleRemove)
	favorites.Get("/check/favorite", favoriteHandler.HandleIsFavorite)
	favorites.Get("/:userId", favoriteHandler.HandleForUser)

	return nil
}

// registerCommentRoutes đăng ký route bình luận video
func registerCommentRoutes(v1 fiber.Router) error {
	commentHandler, err := commenthdl.NewCommentHandler()
	if err != nil {
		return fmt.Errorf("failed to create comment handler: %v", err)
	}

	comments := v1.Group("/comments")
	comments.Post("", commentHandler.HandleAdd)
	comments.Get("", commentHandler.Find)
	comments.Get("/video/:videoId", commentHandler.HandleByVideo)
	comments.Get("/user/:userId", commentHandler.HandleByUser)
	comments.Put("", commentHandler.HandleUpdateText)
	comments.Delete("", commentHandler.HandleDelete)

	return nil
}

// registerPexelsRoutes đăng ký route proxy Pexels API
func registerPexelsRoutes(v1 fiber.Router) {
	pexelsHandler := cataloghdl.NewPexelsHandler()

	pexels := v1.Group("/pexels/videos")
	pexels.Get("/popular", pexelsHandler.HandlePopular)
	pexels.Get("/search", pexelsHandler.HandleSearch)
}
