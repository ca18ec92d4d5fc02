package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cofoundhq/cofound/internal/config"
	"github.com/cofoundhq/cofound/internal/database"
	"github.com/cofoundhq/cofound/internal/mailer"
	postgresrepo "github.com/cofoundhq/cofound/internal/repository/postgres"
	"github.com/cofoundhq/cofound/internal/service"
	"github.com/cofoundhq/cofound/internal/storage"
	"github.com/cofoundhq/cofound/internal/transport/http/handlers"
	"github.com/cofoundhq/cofound/internal/transport/http/middleware"
	"github.com/cofoundhq/cofound/internal/transport/ws"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// File storage for uploads
	fileStore, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	// OTP mail delivery
	var otpMailer service.Mailer = mailer.LogMailer{}
	if cfg.SMTPHost != "" {
		otpMailer = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPPass)
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	profileRepo := postgresrepo.NewProfileRepo(pool)
	followRepo := postgresrepo.NewFollowRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)
	projectRepo := postgresrepo.NewProjectRepo(pool)
	notifRepo := postgresrepo.NewNotificationRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	otpService := service.NewOTPService(otpMailer, 10*time.Minute)
	notifService := service.NewNotificationService(notifRepo, projectRepo)
	profileService := service.NewProfileService(profileRepo, followRepo)
	followService := service.NewFollowService(profileRepo, followRepo, notifService)
	postService := service.NewPostService(postRepo, profileRepo)
	projectService := service.NewProjectService(projectRepo, profileRepo, notifService)

	// WebSocket hub for real-time notification delivery
	hub := ws.NewHub()
	notifService.SetNotifier(ws.NewHubNotifier(hub))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, otpService)
	profileHandler := handlers.NewProfileHandler(profileService, fileStore)
	followHandler := handlers.NewFollowHandler(followService)
	postHandler := handlers.NewPostHandler(postService, fileStore)
	projectHandler := handlers.NewProjectHandler(projectService, fileStore)
	notifHandler := handlers.NewNotificationHandler(notifService)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/otp/send", authHandler.SendOTP)
	mux.HandleFunc("POST /api/v1/auth/otp/verify", authHandler.VerifyOTP)
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(fileStore.Dir()))))

	// Protected - Profiles
	mux.Handle("POST /api/v1/profiles", auth(http.HandlerFunc(profileHandler.Create)))
	mux.Handle("GET /api/v1/profiles/me", auth(http.HandlerFunc(profileHandler.GetOwn)))
	mux.Handle("GET /api/v1/profiles/{username}", auth(http.HandlerFunc(profileHandler.GetByUsername)))
	mux.Handle("GET /api/v1/users/{userId}/profile-exists", auth(http.HandlerFunc(profileHandler.CheckProfile)))

	// Protected - Follow graph
	mux.Handle("POST /api/v1/profiles/{username}/follow", auth(http.HandlerFunc(followHandler.Follow)))
	mux.Handle("DELETE /api/v1/profiles/{username}/follow", auth(http.HandlerFunc(followHandler.Unfollow)))
	mux.Handle("GET /api/v1/profiles/{username}/follow", auth(http.HandlerFunc(followHandler.FollowStatus)))

	// Protected - Posts
	mux.Handle("POST /api/v1/posts", auth(http.HandlerFunc(postHandler.Create)))
	mux.Handle("GET /api/v1/posts", auth(http.HandlerFunc(postHandler.Feed)))
	mux.Handle("GET /api/v1/users/{userId}/posts", auth(http.HandlerFunc(postHandler.UserPosts)))
	mux.Handle("DELETE /api/v1/posts/{id}", auth(http.HandlerFunc(postHandler.Delete)))
	mux.Handle("POST /api/v1/posts/{id}/like", auth(http.HandlerFunc(postHandler.Like)))
	mux.Handle("DELETE /api/v1/posts/{id}/like", auth(http.HandlerFunc(postHandler.Unlike)))
	mux.Handle("POST /api/v1/posts/{id}/share", auth(http.HandlerFunc(postHandler.Share)))
	mux.Handle("POST /api/v1/posts/{id}/comments", auth(http.HandlerFunc(postHandler.Comment)))

	// Protected - Projects
	mux.Handle("POST /api/v1/projects", auth(http.HandlerFunc(projectHandler.Create)))
	mux.Handle("GET /api/v1/projects", auth(http.HandlerFunc(projectHandler.List)))
	mux.Handle("GET /api/v1/projects/mine", auth(http.HandlerFunc(projectHandler.ListMine)))
	mux.Handle("GET /api/v1/projects/{id}", auth(http.HandlerFunc(projectHandler.Get)))
	mux.Handle("POST /api/v1/projects/{id}/interest", auth(http.HandlerFunc(projectHandler.ExpressInterest)))
	mux.Handle("POST /api/v1/projects/{id}/invite", auth(http.HandlerFunc(projectHandler.Invite)))

	// Protected - Notifications
	mux.Handle("GET /api/v1/notifications", auth(http.HandlerFunc(notifHandler.List)))
	mux.Handle("POST /api/v1/notifications/{id}/approve-interest", auth(http.HandlerFunc(notifHandler.ApproveInterest)))
	mux.Handle("POST /api/v1/notifications/{id}/approve-invitation", auth(http.HandlerFunc(notifHandler.ApproveInvitation)))

	// WebSocket
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret))

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		hub.Run()
		return nil
	})
	g.Go(func() error {
		return http.ListenAndServe(addr, middleware.CORS(mux))
	})
	log.Fatal(g.Wait())
}
