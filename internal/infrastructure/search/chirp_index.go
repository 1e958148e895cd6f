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

	"github.com/oksasatya/chirper/internal/application"
	"github.com/oksasatya/chirper/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// ChirpIndex keeps chirps searchable in Elasticsearch.
type ChirpIndex struct {
	ES   *elasticsearch.Client
	Name string // index name
}

var _ application.ChirpIndexer = (*ChirpIndex)(nil)

func NewChirpIndex(es *elasticsearch.Client, index string) *ChirpIndex {
	return &ChirpIndex{ES: es, Name: index}
}

type chirpDoc struct {
	ID        int64  `json:"id"`
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (x *ChirpIndex) Index(ctx context.Context, c entity.Chirp) error {
	b, err := json.Marshal(chirpDoc{
		ID:        c.ID,
		UserID:    c.UserID,
		Message:   c.Message,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      x.Name,
		DocumentID: docID(c.ID),
		Body:       bytes.NewReader(b),
		Refresh:    "false",
	}
	return x.do(ctx, req)
}

func (x *ChirpIndex) Remove(ctx context.Context, id int64) error {
	req := esapi.DeleteRequest{Index: x.Name, DocumentID: docID(id)}
	return x.do(ctx, req)
}

// Search runs a multi_match query over chirp messages.
func (x *ChirpIndex) Search(ctx context.Context, query string, size int) ([]application.SearchHit, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"message"},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := x.ES.Search(
		x.ES.Search.WithContext(c),
		x.ES.Search.WithIndex(x.Name),
		x.ES.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search %s: %s", x.Name, res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Score  float64  `json:"_score"`
				Source chirpDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]application.SearchHit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, application.SearchHit{
			ID:        h.Source.ID,
			UserID:    h.Source.UserID,
			Message:   h.Source.Message,
			CreatedAt: h.Source.CreatedAt,
			Score:     h.Score,
		})
	}
	return out, nil
}

type doer interface {
	Do(ctx context.Context, transport esapi.Transport) (*esapi.Response, error)
}

func (x *ChirpIndex) do(ctx context.Context, req doer) error {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index %s: %s", x.Name, res.Status())
	}
	return nil
}

func docID(id int64) string { return strconv.FormatInt(id, 10) }
