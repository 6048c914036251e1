package rest

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"news-curator/internal/domain/ports"
)

func registerRoutes(e *echo.Echo, news NewsService, readingList ReadingListService, logger ports.Logger) {
	e.POST("/news", handleGetNews(news))
	e.POST("/news/digest", handleNewsDigest(news))

	e.POST("/reading-list", handleSaveArticle(readingList, logger))
	e.GET("/reading-list", handleListReadingList(readingList, logger))

	e.GET("/healthz", handleHealth())
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
