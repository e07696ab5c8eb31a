package article

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/newsboard/internal/platform/apperr"
	"github.com/taibuivan/newsboard/internal/platform/dberr"
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

/*
ListArticles returns articles matching query, each with its comment count.

An empty result is only an error when a filter names an author or topic
that does not exist. Author is resolved before topic.
*/
func (service *Service) ListArticles(context context.Context, query ListQuery) ([]*Article, error) {
	params, err := Normalize(query)
	if err != nil {
		return nil, err
	}

	articles, err := service.repo.ListArticles(context, params)
	if err != nil {
		return nil, err
	}

	// Common case: rows came back, no existence lookups.
	if len(articles) > 0 {
		return articles, nil
	}

	if params.Author != "" {
		if err := service.mustExist(context, existence.User, params.Author, MsgUserNotFound); err != nil {
			return nil, err
		}
	}

	if params.Topic != "" {
		if err := service.mustExist(context, existence.Topic, params.Topic, MsgTopicNotFound); err != nil {
			return nil, err
		}
	}

	return articles, nil
}

// GetArticle fetches one article by its raw path identifier.
func (service *Service) GetArticle(context context.Context, rawID string) (*Article, error) {
	id, err := validate.ID(rawID)
	if err != nil {
		return nil, err
	}

	found, err := service.repo.GetArticleByID(context, id)
	if err != nil {
		return nil, notFound(err)
	}
	return found, nil
}

/*
PatchVotes applies delta to the article's votes and returns the updated article.

A nil delta means inc_votes was missing from the body. The delta must fit
the INTEGER votes column.
*/
func (service *Service) PatchVotes(context context.Context, rawID string, delta *int) (*Article, error) {
	id, err := validate.ID(rawID)
	if err != nil {
		return nil, err
	}

	if err := validate.New().Custom(delta == nil, apperr.MsgBadRequest).Err(); err != nil {
		return nil, err
	}
	if err := validate.New().Int32(*delta, apperr.MsgBadRequest).Err(); err != nil {
		return nil, err
	}

	updated, err := service.repo.IncrementVotes(context, id, *delta)
	if err != nil {
		return nil, notFound(err)
	}

	service.logger.Info("article_votes_patched",
		slog.Int64("article_id", id),
		slog.Int("delta", *delta),
		slog.Int("votes", updated.Votes),
	)
	return updated, nil
}

// mustExist resolves key and fails with msg when it is absent.
func (service *Service) mustExist(context context.Context, kind existence.Kind, key any, msg string) error {
	ok, err := service.resolver.Exists(context, kind, key)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound(msg)
	}
	return nil
}

// notFound replaces the store's generic not-found with the article-specific message.
func notFound(err error) error {
	if errors.Is(err, dberr.ErrNotFound) {
		return apperr.NotFound(MsgArticleNotFound)
	}
	return err
}
