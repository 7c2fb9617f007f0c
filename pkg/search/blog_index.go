package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/EliyatMagar/websathi-new/internal/domain/entity"
)

// BlogIndex mirrors published blog posts into Elasticsearch for the search
// endpoint. All operations are no-ops when the client is nil so the API
// works without a search cluster.
type BlogIndex struct {
	ES    *elasticsearch.Client
	Index string
	Log   *logrus.Logger
}

func NewBlogIndex(es *elasticsearch.Client, index string, log *logrus.Logger) *BlogIndex {
	return &BlogIndex{ES: es, Index: index, Log: log}
}

// Enabled reports whether a search cluster is configured.
func (b *BlogIndex) Enabled() bool {
	return b != nil && b.ES != nil && b.Index != ""
}

type indexedPost struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// IndexPost upserts a post document. Indexing failures are logged, never
// propagated; search is best-effort alongside the database.
func (b *BlogIndex) IndexPost(ctx context.Context, p *entity.BlogPost) {
	if !b.Enabled() || p == nil {
		return
	}
	doc, _ := json.Marshal(indexedPost{Title: p.Title, Slug: p.Slug, Excerpt: p.Excerpt, Content: p.Content})
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	req := esapi.IndexRequest{
		Index:      b.Index,
		DocumentID: strconv.FormatInt(p.ID, 10),
		Body:       bytes.NewReader(doc),
		Refresh:    "false",
	}
	res, err := req.Do(c, b.ES)
	if err != nil {
		if b.Log != nil {
			b.Log.WithError(err).WithField("post_id", p.ID).Warn("blog index failed")
		}
		return
	}
	_ = res.Body.Close()
}

// DeletePost removes a post document. Missing documents are fine.
func (b *BlogIndex) DeletePost(ctx context.Context, id int64) {
	if !b.Enabled() {
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	req := esapi.DeleteRequest{Index: b.Index, DocumentID: strconv.FormatInt(id, 10)}
	res, err := req.Do(c, b.ES)
	if err != nil {
		if b.Log != nil {
			b.Log.WithError(err).WithField("post_id", id).Warn("blog index delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Hit is a single search result.
type Hit struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt"`
}

// Search runs a multi-field match over indexed posts.
func (b *BlogIndex) Search(ctx context.Context, q string, size int) ([]Hit, error) {
	if !b.Enabled() {
		return nil, fmt.Errorf("search is not configured")
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "excerpt", "content"},
			},
		},
		"size": size,
	}
	body, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := b.ES.Search(
		b.ES.Search.WithContext(c),
		b.ES.Search.WithIndex(b.Index),
		b.ES.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string      `json:"_id"`
				Source indexedPost `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	hits := make([]Hit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		id, _ := strconv.ParseInt(h.ID, 10, 64)
		hits = append(hits, Hit{ID: id, Title: h.Source.Title, Slug: h.Source.Slug, Excerpt: h.Source.Excerpt})
	}
	return hits, nil
}
