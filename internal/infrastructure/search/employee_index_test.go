package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

// newFakeES answers like an Elasticsearch node and records every request.
func newFakeES(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*EmployeeIndex, *[]recordedRequest) {
	t.Helper()
	var reqs []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		reqs = append(reqs, recordedRequest{Method: r.Method, Path: r.URL.Path, Body: string(b)})
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewEmployeeIndex(es, "employees"), &reqs
}

func TestEmployeeIndex_Index(t *testing.T) {
	idx, reqs := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	})

	err := idx.Index(context.Background(), entity.Employee{ID: 7, FirstName: "Devang", LastName: "Chauhan", Email: "devang@gmail.com"})
	require.NoError(t, err)

	require.Len(t, *reqs, 1)
	got := (*reqs)[0]
	assert.Equal(t, http.MethodPut, got.Method)
	assert.Equal(t, "/employees/_doc/7", got.Path)
	assert.JSONEq(t, `{"id":7,"firstName":"Devang","lastName":"Chauhan","email":"devang@gmail.com"}`, got.Body)
}

func TestEmployeeIndex_Index_ErrorStatus(t *testing.T) {
	idx, _ := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad"}`))
	})

	err := idx.Index(context.Background(), entity.Employee{ID: 1})
	assert.Error(t, err)
}

func TestEmployeeIndex_Delete_MissingIsOK(t *testing.T) {
	idx, reqs := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"result":"not_found"}`))
	})

	require.NoError(t, idx.Delete(context.Background(), 3))
	require.Len(t, *reqs, 1)
	assert.Equal(t, http.MethodDelete, (*reqs)[0].Method)
	assert.Equal(t, "/employees/_doc/3", (*reqs)[0].Path)
}

func TestEmployeeIndex_Search(t *testing.T) {
	idx, reqs := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hits":{"hits":[
			{"_id":"1","_source":{"id":1,"firstName":"Devang","lastName":"Chauhan","email":"devang@gmail.com"}},
			{"_id":"2","_source":{"id":2,"firstName":"Drisana","lastName":"Chauhan","email":"drisana@gmail.com"}}
		]}}`))
	})

	got, err := idx.Search(context.Background(), "chauhan", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Drisana", got[1].FirstName)

	require.Len(t, *reqs, 1)
	assert.Equal(t, "/employees/_search", (*reqs)[0].Path)
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte((*reqs)[0].Body), &body))
	assert.EqualValues(t, 10, body["size"])
}
