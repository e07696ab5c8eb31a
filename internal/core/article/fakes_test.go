package article_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/newsboard/internal/core/article"
	"github.com/taibuivan/newsboard/internal/platform/dberr"
	"github.com/taibuivan/newsboard/internal/platform/existence"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// memoryRepository is an in-memory article store with the same filtering,
// ordering and atomic vote semantics as the Postgres repository.
type memoryRepository struct {
	mu       sync.Mutex
	articles map[int64]*article.Article
	comments map[int64]int64
	listErr  error
	lastList article.ListParams
}

func newMemoryRepository() *memoryRepository {
	base := time.Date(2018, 11, 15, 12, 21, 54, 0, time.UTC)
	repository := &memoryRepository{
		articles: map[int64]*article.Article{},
		comments: map[int64]int64{1: 13},
	}

	seed := []struct {
		title, topic, author string
		votes                int
	}{
		{"Living in the shadow of a great man", "mitch", "butter_bridge", 100},
		{"Sony Vaio; or, The Laptop", "mitch", "icellusedkars", 0},
		{"Eight pug gifs that remind me of mitch", "mitch", "icellusedkars", 0},
		{"Student SUES Mitch!", "mitch", "rogersop", 0},
		{"UNCOVERED: catspiracy to bring down democracy", "cats", "rogersop", 0},
		{"A", "mitch", "icellusedkars", 0},
	}
	for i, s := range seed {
		id := int64(i + 1)
		repository.articles[id] = &article.Article{
			ID:        id,
			Title:     s.title,
			Body:      "body " + s.title,
			Topic:     s.topic,
			Author:    s.author,
			CreatedAt: base.AddDate(0, 0, -i),
			Votes:     s.votes,
		}
	}
	repository.comments[5] = 2
	return repository
}

func (repository *memoryRepository) withCount(a *article.Article) *article.Article {
	clone := *a
	clone.CommentCount = repository.comments[a.ID]
	return &clone
}

func (repository *memoryRepository) ListArticles(_ context.Context, params article.ListParams) ([]*article.Article, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.lastList = params
	if repository.listErr != nil {
		return nil, repository.listErr
	}

	result := make([]*article.Article, 0)
	for _, a := range repository.articles {
		if params.Author != "" && a.Author != params.Author {
			continue
		}
		if params.Topic != "" && a.Topic != params.Topic {
			continue
		}
		result = append(result, repository.withCount(a))
	}

	less := func(i, j int) bool {
		a, b := result[i], result[j]
		switch params.SortBy {
		case "article_id":
			return a.ID < b.ID
		case "title":
			return a.Title < b.Title
		case "author":
			return a.Author < b.Author
		case "topic":
			return a.Topic < b.Topic
		case "votes":
			return a.Votes < b.Votes
		case "comment_count":
			return a.CommentCount < b.CommentCount
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if params.Order == "asc" {
			return less(i, j)
		}
		return less(j, i)
	})

	return result, nil
}

func (repository *memoryRepository) GetArticleByID(_ context.Context, id int64) (*article.Article, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	a, ok := repository.articles[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return repository.withCount(a), nil
}

func (repository *memoryRepository) IncrementVotes(_ context.Context, id int64, delta int) (*article.Article, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	a, ok := repository.articles[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	a.Votes += delta
	return repository.withCount(a), nil
}

// fakeChecker answers existence lookups from fixed sets and counts calls.
type fakeChecker struct {
	mu     sync.Mutex
	users  []string
	topics []string
	err    error
	calls  []existence.Kind
}

func newFakeChecker() *fakeChecker {
	return &fakeChecker{
		users:  []string{"butter_bridge", "icellusedkars", "rogersop", "lurker"},
		topics: []string{"mitch", "cats", "paper"},
	}
}

func (checker *fakeChecker) Exists(_ context.Context, kind existence.Kind, key any) (bool, error) {
	checker.mu.Lock()
	defer checker.mu.Unlock()

	checker.calls = append(checker.calls, kind)
	if checker.err != nil {
		return false, checker.err
	}

	var pool []string
	switch kind {
	case existence.User:
		pool = checker.users
	case existence.Topic:
		pool = checker.topics
	}
	for _, candidate := range pool {
		if candidate == key.(string) {
			return true, nil
		}
	}
	return false, nil
}
