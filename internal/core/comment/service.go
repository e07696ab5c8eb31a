package comment

import (
	"context"
	"log/slog"

	"github.com/taibuivan/newsboard/internal/platform/apperr"
	"github.com/taibuivan/newsboard/internal/platform/existence"
	"github.com/taibuivan/newsboard/internal/platform/validate"
)

type Service struct {
	repo     Repository
	resolver existence.Checker
	logger   *slog.Logger
}

func NewService(repo Repository, resolver existence.Checker, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

// ListComments returns the comments of the article identified by rawArticleID.
// An empty list is returned as-is when the article exists.
func (service *Service) ListComments(context context.Context, rawArticleID string, query ListQuery) ([]*Comment, error) {
	articleID, err := validate.ID(rawArticleID)
	if err != nil {
		return nil, err
	}

	comments, err := service.repo.ListByArticle(context, articleID, query)
	if err != nil {
		return nil, err
	}
	if len(comments) > 0 {
		return comments, nil
	}

	found, err := service.resolver.Exists(context, existence.Article, articleID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFound(MsgArticleNotFound)
	}
	return comments, nil
}
