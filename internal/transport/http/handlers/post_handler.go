package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/cofoundhq/cofound/internal/domain"
	"github.com/cofoundhq/cofound/internal/service"
	"github.com/cofoundhq/cofound/internal/storage"
	"github.com/cofoundhq/cofound/internal/transport/http/middleware"
	"github.com/cofoundhq/cofound/pkg/validator"
	"github.com/google/uuid"
)

type PostHandler struct {
	postService *service.PostService
	fileStore   storage.FileStore
}

func NewPostHandler(postService *service.PostService, fileStore storage.FileStore) *PostHandler {
	return &PostHandler{postService: postService, fileStore: fileStore}
}

// Create handles the multipart post form with an optional image.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FORM", "Invalid multipart form")
		return
	}

	privacy := r.FormValue("privacy")
	content := r.FormValue("content")

	if errs := validator.ValidatePost(privacy, content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	var imageURL *string
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		filename, err := h.fileStore.Save(header.Filename, file)
		if err != nil {
			log.Printf("ERROR save post image: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
			return
		}
		imageURL = &filename
	}

	post, err := h.postService.CreatePost(r.Context(), userID, service.CreatePostInput{
		Privacy:  domain.Privacy(privacy),
		Content:  content,
		ImageURL: imageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		} else {
			log.Printf("ERROR create post: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// Feed returns the visibility-filtered feed for the caller. An empty feed
// is a 200 with an empty array.
func (h *PostHandler) Feed(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	posts, err := h.postService.VisibleFeed(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR feed: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (h *PostHandler) UserPosts(w http.ResponseWriter, r *http.Request) {
	authorID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	posts, err := h.postService.UserPosts(r.Context(), authorID)
	if err != nil {
		log.Printf("ERROR user posts: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	post, err := h.postService.Like(r.Context(), userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		case errors.Is(err, service.ErrAlreadyLiked):
			writeError(w, http.StatusConflict, "ALREADY_EXISTS", "You have already liked this post")
		default:
			log.Printf("ERROR like post: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	post, err := h.postService.Unlike(r.Context(), userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		case errors.Is(err, service.ErrNotLiked):
			writeError(w, http.StatusConflict, "INVALID_STATE", "You have not liked this post")
		default:
			log.Printf("ERROR unlike post: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Share(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	shares, err := h.postService.Share(r.Context(), userID, postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		} else {
			log.Printf("ERROR share post: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Post shared successfully.", "shares": shares})
}

func (h *PostHandler) Comment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	var input struct {
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	post, err := h.postService.Comment(r.Context(), userID, postID, input.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment):
			writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Comment text is required")
		case errors.Is(err, service.ErrPostNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		case errors.Is(err, service.ErrProfileNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		default:
			log.Printf("ERROR comment post: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Comment added successfully.", "comments": post.Comments})
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	if err := h.postService.DeletePost(r.Context(), userID, postID); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		case errors.Is(err, service.ErrNotPostAuthor):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the author can delete this post")
		default:
			log.Printf("ERROR delete post: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}
