package comment

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

// RegisterRoutes mounts comment routes under an articles router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{article_id}/comments", handler.listComments)
}

/*
GET /api/articles/{article_id}/comments.

Request:
  - sort_by: string (any comment column, default created_at)
  - order: string (asc, default desc)

Response:
  - 200: {comments: Comment[]}
  - 400: malformed article_id or unknown sort column
  - 404: article_id not found
*/
func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()

	query := ListQuery{
		SortBy: queryParams.Get(FieldSortBy),
		Order:  queryParams.Get(FieldOrder),
	}

	comments, err := handler.service.ListComments(request.Context(), requestutil.Param(request, "article_id"), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Keyed(writer, constants.FieldComments, comments)
}
