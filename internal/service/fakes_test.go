package service

import (
	"context"
	"sync"

	"github.com/cofoundhq/cofound/internal/domain"
	"github.com/google/uuid"
)

// In-memory repository fakes. All of them are mutex-guarded so the
// concurrency tests exercise the same conditional-write semantics the
// postgres implementations provide.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	r.users[user.ID] = &u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*domain.Profile)}
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *profile
	r.profiles[profile.UserID] = &p
	return nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[userID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeProfileRepo) GetByUsername(_ context.Context, username string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.Username == username {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) Exists(_ context.Context, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.profiles[userID]
	return ok, nil
}

type followEdge struct {
	follower uuid.UUID
	followee uuid.UUID
}

type fakeFollowRepo struct {
	mu    sync.Mutex
	edges map[followEdge]struct{}
	order []followEdge
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[followEdge]struct{})}
}

func (r *fakeFollowRepo) Follow(_ context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	edge := followEdge{followerID, followeeID}
	if _, ok := r.edges[edge]; ok {
		return false, nil
	}
	r.edges[edge] = struct{}{}
	r.order = append(r.order, edge)
	return true, nil
}

func (r *fakeFollowRepo) Unfollow(_ context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	edge := followEdge{followerID, followeeID}
	if _, ok := r.edges[edge]; !ok {
		return false, nil
	}
	delete(r.edges, edge)
	return true, nil
}

func (r *fakeFollowRepo) IsFollowing(_ context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.edges[followEdge{followerID, followeeID}]
	return ok, nil
}

func (r *fakeFollowRepo) ListFollowers(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uuid.UUID
	for _, edge := range r.order {
		if edge.followee == userID {
			if _, ok := r.edges[edge]; ok {
				ids = append(ids, edge.follower)
			}
		}
	}
	return ids, nil
}

func (r *fakeFollowRepo) ListFollowing(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uuid.UUID
	for _, edge := range r.order {
		if edge.follower == userID {
			if _, ok := r.edges[edge]; ok {
				ids = append(ids, edge.followee)
			}
		}
	}
	return ids, nil
}

type likeKey struct {
	post uuid.UUID
	user uuid.UUID
}

type fakePostRepo struct {
	mu       sync.Mutex
	follows  *fakeFollowRepo
	posts    map[uuid.UUID]*domain.Post
	order    []uuid.UUID
	likes    map[likeKey]struct{}
	comments map[uuid.UUID][]domain.Comment
}

func newFakePostRepo(follows *fakeFollowRepo) *fakePostRepo {
	return &fakePostRepo{
		follows:  follows,
		posts:    make(map[uuid.UUID]*domain.Post),
		likes:    make(map[likeKey]struct{}),
		comments: make(map[uuid.UUID][]domain.Comment),
	}
}

func (r *fakePostRepo) Create(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *post
	r.posts[post.ID] = &p
	r.order = append(r.order, post.ID)
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	return r.hydrate(p), nil
}

func (r *fakePostRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return false, nil
	}
	delete(r.posts, id)
	return true, nil
}

func (r *fakePostRepo) ListVisible(ctx context.Context, viewerID uuid.UUID) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Post
	// Newest first
	for i := len(r.order) - 1; i >= 0; i-- {
		p, ok := r.posts[r.order[i]]
		if !ok {
			continue
		}
		visible := p.Privacy == domain.PrivacyPublic || p.AuthorID == viewerID
		if !visible && p.Privacy == domain.PrivacyPrivate {
			visible, _ = r.follows.IsFollowing(ctx, viewerID, p.AuthorID)
		}
		if visible {
			out = append(out, *r.hydrate(p))
		}
	}
	return out, nil
}

func (r *fakePostRepo) ListByAuthor(_ context.Context, authorID uuid.UUID) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Post
	for i := len(r.order) - 1; i >= 0; i-- {
		p, ok := r.posts[r.order[i]]
		if ok && p.AuthorID == authorID {
			out = append(out, *r.hydrate(p))
		}
	}
	return out, nil
}

func (r *fakePostRepo) AddLike(_ context.Context, postID, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey{postID, userID}
	if _, ok := r.likes[key]; ok {
		return false, nil
	}
	r.likes[key] = struct{}{}
	return true, nil
}

func (r *fakePostRepo) RemoveLike(_ context.Context, postID, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey{postID, userID}
	if _, ok := r.likes[key]; !ok {
		return false, nil
	}
	delete(r.likes, key)
	return true, nil
}

func (r *fakePostRepo) IncrementShares(_ context.Context, postID uuid.UUID) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok {
		return 0, false, nil
	}
	p.Shares++
	return p.Shares, true, nil
}

func (r *fakePostRepo) AddComment(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments[comment.PostID] = append(r.comments[comment.PostID], *comment)
	return nil
}

func (r *fakePostRepo) ListComments(_ context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Comment(nil), r.comments[postID]...), nil
}

// hydrate fills likes and comments; callers must hold the lock.
func (r *fakePostRepo) hydrate(p *domain.Post) *domain.Post {
	copied := *p
	copied.Likes = []uuid.UUID{}
	for key := range r.likes {
		if key.post == p.ID {
			copied.Likes = append(copied.Likes, key.user)
		}
	}
	copied.Comments = append([]domain.Comment{}, r.comments[p.ID]...)
	return &copied
}

type interestKey struct {
	project uuid.UUID
	user    uuid.UUID
}

type fakeProjectRepo struct {
	mu        sync.Mutex
	projects  map[uuid.UUID]*domain.Project
	order     []uuid.UUID
	interests map[interestKey]*domain.ProjectInterest
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects:  make(map[uuid.UUID]*domain.Project),
		interests: make(map[interestKey]*domain.ProjectInterest),
	}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *project
	r.projects[project.ID] = &p
	r.order = append(r.order, project.ID)
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.projects[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeProjectRepo) List(_ context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Project
	for i := len(r.order) - 1; i >= 0; i-- {
		if p, ok := r.projects[r.order[i]]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Project
	for i := len(r.order) - 1; i >= 0; i-- {
		if p, ok := r.projects[r.order[i]]; ok && p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) AddInterest(_ context.Context, interest *domain.ProjectInterest) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := interestKey{interest.ProjectID, interest.UserID}
	if _, ok := r.interests[key]; ok {
		return false, nil
	}
	in := *interest
	r.interests[key] = &in
	return true, nil
}

func (r *fakeProjectRepo) GetInterest(_ context.Context, projectID, userID uuid.UUID) (*domain.ProjectInterest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if in, ok := r.interests[interestKey{projectID, userID}]; ok {
		copied := *in
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeProjectRepo) SetInterestStatus(_ context.Context, projectID, userID uuid.UUID, status domain.InterestStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in, ok := r.interests[interestKey{projectID, userID}]
	if !ok {
		return false, nil
	}
	in.Status = status
	return true, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*domain.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *n
	r.notifications = append(r.notifications, &copied)
	return nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			copied := *n
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeNotificationRepo) ListByRecipient(_ context.Context, recipientID uuid.UUID) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Notification
	// Newest first
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].RecipientID == recipientID {
			out = append(out, *r.notifications[i])
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) Resolve(_ context.Context, id uuid.UUID, status domain.NotificationStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			if n.Status.Resolved() {
				return false, nil
			}
			n.Status = status
			return true, nil
		}
	}
	return false, nil
}
