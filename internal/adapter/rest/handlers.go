package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-curator/internal/domain/model"
	"news-curator/internal/domain/ports"
)

// NewsService serves news requests.
type NewsService interface {
	GetNews(ctx context.Context, req model.NewsRequest) []model.Article
	Digest(ctx context.Context, req model.NewsRequest) model.NewsDigest
}

// ReadingListService saves and lists reading list articles.
type ReadingListService interface {
	Save(ctx context.Context, article model.Article) error
	List(ctx context.Context) ([]model.Article, error)
}

func handleGetNews(news NewsService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload NewsRequestPayload
		if resp := bindPayload(c, &payload); resp != nil {
			return c.JSON(http.StatusUnprocessableEntity, resp)
		}

		articles := news.GetNews(c.Request().Context(), payload.toModel())
		return c.JSON(http.StatusOK, toArticleResponses(articles))
	}
}

func handleNewsDigest(news NewsService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload NewsRequestPayload
		if resp := bindPayload(c, &payload); resp != nil {
			return c.JSON(http.StatusUnprocessableEntity, resp)
		}

		digest := news.Digest(c.Request().Context(), payload.toModel())
		keywords := digest.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		return c.JSON(http.StatusOK, DigestResponse{
			Articles:      toArticleResponses(digest.Articles),
			Keywords:      keywords,
			Summary:       digest.Summary,
			SummaryStatus: string(digest.SummaryStatus),
		})
	}
}

func handleSaveArticle(readingList ReadingListService, logger ports.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload ArticlePayload
		if resp := bindPayload(c, &payload); resp != nil {
			return c.JSON(http.StatusUnprocessableEntity, resp)
		}

		ctx := c.Request().Context()
		if err := readingList.Save(ctx, payload.toModel()); err != nil {
			logger.Error(ctx, "reading list save failed", "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save article"})
		}
		return c.JSON(http.StatusOK, StatusResponse{Status: "saved"})
	}
}

func handleListReadingList(readingList ReadingListService, logger ports.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		articles, err := readingList.List(ctx)
		if err != nil {
			logger.Error(ctx, "reading list read failed", "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to read reading list"})
		}
		return c.JSON(http.StatusOK, toArticleResponses(articles))
	}
}

func handleHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
	}
}

// bindPayload decodes and validates the request body into payload. It
// returns the error body to send, or nil when the payload is acceptable.
func bindPayload(c echo.Context, payload any) *ErrorResponse {
	if err := c.Bind(payload); err != nil {
		return &ErrorResponse{Error: "invalid request body"}
	}
	if err := c.Validate(payload); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return &ErrorResponse{Error: "validation failed", Fields: verr.Fields}
		}
		return &ErrorResponse{Error: err.Error()}
	}
	return nil
}
