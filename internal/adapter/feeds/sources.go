package feeds

import "news-curator/internal/domain/model"

var defaultSources = []model.FeedSource{
	{Name: "nytimes-technology", URL: "https://rss.nytimes.com/services/xml/rss/nyt/Technology.xml"},
	{Name: "arstechnica-technology-lab", URL: "https://feeds.arstechnica.com/arstechnica/technology-lab"},
	{Name: "theverge", URL: "https://www.theverge.com/rss/index.xml"},
	{Name: "reddit-technology", URL: "https://www.reddit.com/r/technology/.rss"},
	{Name: "cnet-news", URL: "https://www.cnet.com/rss/news/"},
	{Name: "engadget", URL: "https://www.engadget.com/rss.xml"},
}

// DefaultSources returns the fixed technology feed list in fetch order.
func DefaultSources() []model.FeedSource {
	out := make([]model.FeedSource, len(defaultSources))
	copy(out, defaultSources)
	return out
}
