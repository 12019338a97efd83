package search

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/pkg/errors"

	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// EmployeeIndex keeps employee documents in an Elasticsearch index keyed by employee id.
type EmployeeIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewEmployeeIndex(es *elasticsearch.Client, index string) *EmployeeIndex {
	return &EmployeeIndex{es: es, index: index}
}

func (i *EmployeeIndex) Index(ctx context.Context, e entity.Employee) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      i.index,
		DocumentID: strconv.FormatInt(e.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, i.es)
	if err != nil {
		return errors.Wrapf(err, "index employee %d", e.ID)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return errors.Errorf("index employee %d: %s", e.ID, res.Status())
	}
	return nil
}

// Delete removes the document; a missing document is not an error.
func (i *EmployeeIndex) Delete(ctx context.Context, id int64) error {
	req := esapi.DeleteRequest{Index: i.index, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, i.es)
	if err != nil {
		return errors.Wrapf(err, "delete employee %d", id)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return errors.Errorf("delete employee %d: %s", id, res.Status())
	}
	return nil
}

// Search runs a multi_match query over email, firstName and lastName.
func (i *EmployeeIndex) Search(ctx context.Context, q string, size int) ([]entity.Employee, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "firstName", "lastName"},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := i.es.Search(
		i.es.Search.WithContext(c),
		i.es.Search.WithIndex(i.index),
		i.es.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, errors.Wrap(err, "search employees")
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, errors.Errorf("search employees: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source entity.Employee `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}

	out := make([]entity.Employee, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
