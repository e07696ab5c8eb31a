package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/newsboard/internal/platform/constants"
	"github.com/taibuivan/newsboard/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listTopics)
}

/*
GET /api/topics.

Response:
  - 200: {topics: Topic[]}
*/
func (handler *Handler) listTopics(writer http.ResponseWriter, request *http.Request) {
	topics, err := handler.service.ListTopics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Keyed(writer, constants.FieldTopics, topics)
}
