package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/newsboard/internal/platform/constants"
	requestutil "github.com/taibuivan/newsboard/internal/platform/request"
	"github.com/taibuivan/newsboard/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listArticles)
	router.Get("/{article_id}", handler.getArticle)
	router.Patch("/{article_id}", handler.patchArticle)
}

// # Article Endpoints

/*
GET /api/articles.

Request:
  - sort_by: string (article_id, title, author, topic, created_at, votes, comment_count)
  - order: string (asc, desc)
  - author: string (username)
  - topic: string (slug)

Response:
  - 200: {articles: Article[]}
  - 400: invalid sort_by / order
  - 404: unknown author / topic
*/
func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()

	query := ListQuery{
		SortBy: queryParams.Get(FieldSortBy),
		Order:  queryParams.Get(FieldOrder),
		Author: queryParams.Get(FieldAuthor),
		Topic:  queryParams.Get(FieldTopic),
	}

	articles, err := handler.service.ListArticles(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Keyed(writer, constants.FieldArticles, articles)
}

/*
GET /api/articles/{article_id}.

Response:
  - 200: {article: Article}
  - 400: malformed article_id
  - 404: article_id not found
*/
func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.GetArticle(request.Context(), requestutil.Param(request, "article_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Keyed(writer, constants.FieldArticle, found)
}

// patchVotesRequest defines the inbound JSON schema for vote patches.
type patchVotesRequest struct {
	IncVotes *int `json:"inc_votes"`
}

/*
PATCH /api/articles/{article_id}.

Request:
  - inc_votes: integer (positive or negative)

Response:
  - 200: {article: Article} with updated votes
  - 400: malformed article_id, non-integer or out-of-range inc_votes
  - 404: article_id not found
*/
func (handler *Handler) patchArticle(writer http.ResponseWriter, request *http.Request) {
	var input patchVotesRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.PatchVotes(request.Context(), requestutil.Param(request, "article_id"), input.IncVotes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Keyed(writer, constants.FieldArticle, updated)
}
