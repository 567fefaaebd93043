package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tradelog/internal/repository"
	"tradelog/internal/schema"
)

// filterFromQuery builds the shared trade filter from list-style query
// parameters: start, end, tickers (comma separated), side, strategy,
// tag.
func filterFromQuery(c *gin.Context) repository.Filter {
	return repository.Filter{
		Start:    dateQuery(c, "start"),
		End:      dateQuery(c, "end"),
		Tickers:  csvQuery(c, "tickers"),
		Side:     strings.TrimSpace(c.Query("side")),
		Strategy: strings.TrimSpace(c.Query("strategy")),
		Tag:      strings.TrimSpace(c.Query("tag")),
	}
}

func dateQuery(c *gin.Context, key string) time.Time {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return time.Time{}
	}
	return schema.ParseDate(raw)
}

func csvQuery(c *gin.Context, key string) []string {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
