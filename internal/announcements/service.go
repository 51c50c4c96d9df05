package announcements

import (
	"context"
	"fmt"
	"time"

	"github.com/shoplite/shoplite-backend/pkg/docstore"
	"github.com/shoplite/shoplite-backend/pkg/enums"
	pkgerrors "github.com/shoplite/shoplite-backend/pkg/errors"
)

// Service manages announcement and FAQ posts.
type Service interface {
	List(ctx context.Context, postType *enums.PostType) []Post
	Create(ctx context.Context, title, content string, postType enums.PostType) (Post, error)
	Update(ctx context.Context, id int64, input UpdateInput) (Post, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	col *docstore.Collection[Post]
	now func() int64
}

// NewService builds an announcement service backed by the given store.
func NewService(store *docstore.Store) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("document store required")
	}
	return &service{
		col: docstore.NewCollection[Post](store, docstore.DocAnnouncements),
		now: func() int64 { return time.Now().Unix() },
	}, nil
}

func (s *service) List(ctx context.Context, postType *enums.PostType) []Post {
	posts := s.col.List(ctx)
	if postType == nil {
		return posts
	}
	filtered := make([]Post, 0, len(posts))
	for _, post := range posts {
		if post.Type == *postType {
			filtered = append(filtered, post)
		}
	}
	return filtered
}

func (s *service) Create(ctx context.Context, title, content string, postType enums.PostType) (Post, error) {
	if !postType.IsValid() {
		return Post{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid type %q", postType))
	}
	ts := s.now()
	post, err := s.col.Insert(ctx, func(id int64) Post {
		return Post{
			ID:        id,
			Type:      postType,
			Title:     title,
			Content:   content,
			CreatedAt: ts,
			UpdatedAt: ts,
		}
	})
	if err != nil {
		return Post{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist announcement")
	}
	return post, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (Post, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return Post{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid type %q", *input.Type))
	}
	post, found, err := s.col.Update(ctx, id, func(p *Post) {
		if input.Title != nil {
			p.Title = *input.Title
		}
		if input.Content != nil {
			p.Content = *input.Content
		}
		if input.Type != nil {
			p.Type = *input.Type
		}
		p.UpdatedAt = s.now()
	})
	if err != nil {
		return Post{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist announcement")
	}
	if !found {
		return Post{}, pkgerrors.New(pkgerrors.CodeNotFound, "announcement not found")
	}
	return post, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	removed, err := s.col.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist announcements")
	}
	if !removed {
		return pkgerrors.New(pkgerrors.CodeNotFound, "announcement not found")
	}
	return nil
}
