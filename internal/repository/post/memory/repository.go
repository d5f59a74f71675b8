package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/model"
	user_repository "blog-platform-service/internal/repository/user"
)

// PostRepository resolves author fields through the user repository the
// same way the postgres implementation joins the users table.
type PostRepository struct {
	log    *logger.Logger
	users  user_repository.Repository
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger, users user_repository.Repository) *PostRepository {
	return &PostRepository{
		log:    log,
		users:  users,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	if _, err := p.users.GetByID(ctx, post.UserID); err != nil {
		return nil, custom_errors.ErrUserNotFound
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	newPost := &model.Post{
		ID:        p.nextID,
		UserID:    post.UserID,
		Title:     post.Title,
		Content:   post.Content,
		Category:  post.Category,
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByIDWithAuthor(ctx context.Context, id int64) (*model.PostWithAuthor, error) {
	p.mu.RLock()
	post, exists := p.posts[id]
	if !exists {
		p.mu.RUnlock()
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}
	postCopy := *post
	p.mu.RUnlock()

	return p.withAuthor(ctx, &postCopy)
}

func (p *PostRepository) ListWithAuthor(ctx context.Context) ([]*model.PostWithAuthor, error) {
	p.mu.RLock()
	all := make([]*model.Post, 0, len(p.posts))
	for _, post := range p.posts {
		postCopy := *post
		all = append(all, &postCopy)
	}
	p.mu.RUnlock()

	sortNewestFirst(all)

	result := make([]*model.PostWithAuthor, 0, len(all))
	for _, post := range all {
		joined, err := p.withAuthor(ctx, post)
		if err != nil {
			return nil, err
		}
		result = append(result, joined)
	}
	return result, nil
}

func (p *PostRepository) GetByAuthor(ctx context.Context, userID int64) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var result []*model.Post
	for _, post := range p.posts {
		if post.UserID == userID {
			postCopy := *post
			result = append(result, &postCopy)
		}
	}

	sortNewestFirst(result)
	return result, nil
}

func (p *PostRepository) GetByAuthorWithAuthor(ctx context.Context, userID int64) ([]*model.PostWithAuthor, error) {
	posts, err := p.GetByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*model.PostWithAuthor, 0, len(posts))
	for _, post := range posts {
		joined, err := p.withAuthor(ctx, post)
		if err != nil {
			return nil, err
		}
		result = append(result, joined)
	}
	return result, nil
}

func (p *PostRepository) withAuthor(ctx context.Context, post *model.Post) (*model.PostWithAuthor, error) {
	author, err := p.users.GetByID(ctx, post.UserID)
	if err != nil {
		return nil, err
	}
	return &model.PostWithAuthor{
		Post:     *post,
		Username: author.Username,
		Email:    author.Email,
	}, nil
}

func sortNewestFirst(posts []*model.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Time.Equal(posts[j].CreatedAt.Time) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.Time.After(posts[j].CreatedAt.Time)
	})
}
