package couch

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, r *http.Request) map[string]interface{} {
	t.Helper()
	d, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(d, &body))
	return body
}

// bodyServer keeps the decoded JSON body of the latest request, since the
// recording server's clones do not retain request bodies.
func bodyServer(t *testing.T, status int, response string) (*recordingServer, *map[string]interface{}) {
	var body map[string]interface{}
	server := newRecordingServer(func(w http.ResponseWriter, r *http.Request) {
		body = decodeBody(t, r)
		w.WriteHeader(status)
		w.Write([]byte(response))
	})
	return server, &body
}

func TestSortBy(t *testing.T) {
	require.Equal(t, SortField{"age": "asc"}, SortBy("age", false))
	require.Equal(t, SortField{"age": "desc"}, SortBy("age", true))
}

func TestFindDefaultsToMatchAll(t *testing.T) {
	server, body := bodyServer(t, http.StatusOK, `{"docs":[]}`)
	defer server.Close()

	docs, err := newTestClient(t, server.URL).Database("people").Find(Query{})
	require.NoError(t, err)
	require.Empty(t, docs)

	require.Equal(t, "POST", server.last().Method)
	require.Equal(t, "/people/_find", server.last().URL.Path)
	require.Equal(t, map[string]interface{}{"selector": map[string]interface{}{}}, *body)
}

func TestFindSingleFieldSort(t *testing.T) {
	server, body := bodyServer(t, http.StatusOK, `{"docs":[]}`)
	defer server.Close()

	query := Query{Sort: []SortField{SortBy("age", true)}}
	_, err := newTestClient(t, server.URL).Database("people").Find(query)
	require.NoError(t, err)

	require.Equal(t, []interface{}{map[string]interface{}{"age": "desc"}}, (*body)["sort"])
}

func TestFindStructuredSortPassesThrough(t *testing.T) {
	server, body := bodyServer(t, http.StatusOK, `{"docs":[]}`)
	defer server.Close()

	query := Query{
		Sort: []SortField{{"last_name": "asc"}, {"age": "desc"}},
	}
	_, err := newTestClient(t, server.URL).Database("people").Find(query)
	require.NoError(t, err)

	require.Equal(t, []interface{}{
		map[string]interface{}{"last_name": "asc"},
		map[string]interface{}{"age": "desc"},
	}, (*body)["sort"])
}

func TestFindFullQuery(t *testing.T) {
	server, body := bodyServer(t, http.StatusOK, `{"docs":[{"name":"ada"}]}`)
	defer server.Close()

	query := Query{
		Selector: Selector{"type": "person"},
		Fields:   []string{"name", "age"},
		Limit:    10,
	}
	docs, err := newTestClient(t, server.URL).Database("people").Find(query)
	require.NoError(t, err)
	require.Equal(t, []Document{{"name": "ada"}}, docs)

	require.Equal(t, map[string]interface{}{"type": "person"}, (*body)["selector"])
	require.Equal(t, []interface{}{"name", "age"}, (*body)["fields"])
	require.Equal(t, float64(10), (*body)["limit"])
	_, hasSort := (*body)["sort"]
	require.False(t, hasSort)
}

func TestFindMissingDocsKeyYieldsEmptyResult(t *testing.T) {
	server := newRecordingServer(jsonHandler(http.StatusOK, `{"warning":"no matching index found"}`))
	defer server.Close()

	docs, err := newTestClient(t, server.URL).Database("people").Find(Query{})
	require.NoError(t, err)
	require.NotNil(t, docs)
	require.Empty(t, docs)
}

func TestFindError(t *testing.T) {
	server := newRecordingServer(jsonHandler(http.StatusBadRequest, `{"error":"invalid_operator","reason":"Invalid operator: $nope"}`))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Database("people").Find(Query{})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusBadRequest, reqErr.Status)
	require.Equal(t, "people", reqErr.Database)
	require.Contains(t, reqErr.Error(), "invalid_operator")
}

func TestInsertOne(t *testing.T) {
	server, body := bodyServer(t, http.StatusCreated, `{"ok":true,"id":"abc123","rev":"1-deadbeef"}`)
	defer server.Close()

	result, err := newTestClient(t, server.URL).Database("people").InsertOne(Document{"name": "ada", "age": 36})
	require.NoError(t, err)
	require.True(t, result.OK)
	require.Equal(t, "abc123", result.ID)
	require.Equal(t, "1-deadbeef", result.Rev)

	// The document goes up bare, with no wrapper object.
	require.Equal(t, "/people", server.last().URL.Path)
	require.Equal(t, map[string]interface{}{"name": "ada", "age": float64(36)}, *body)
}

func TestInsertMany(t *testing.T) {
	server, body := bodyServer(t, http.StatusCreated,
		`[{"ok":true,"id":"a","rev":"1-x"},{"id":"b","error":"conflict","reason":"Document update conflict."}]`)
	defer server.Close()

	docs := []Document{{"a": float64(1)}, {"b": float64(2)}}
	results, err := newTestClient(t, server.URL).Database("people").InsertMany(docs)
	require.NoError(t, err)

	require.Equal(t, "/people/_bulk_docs", server.last().URL.Path)
	require.Equal(t, map[string]interface{}{
		"docs": []interface{}{
			map[string]interface{}{"a": float64(1)},
			map[string]interface{}{"b": float64(2)},
		},
	}, *body)

	// Per-document outcomes come back in order; the conflict is data, not
	// an error.
	require.Len(t, results, 2)
	require.False(t, results[0].Failed())
	require.Equal(t, "a", results[0].ID)
	require.True(t, results[1].Failed())
	require.Equal(t, "conflict", results[1].Error)
}

func TestInsertManyRequestLevelFailure(t *testing.T) {
	server := newRecordingServer(jsonHandler(http.StatusUnauthorized, `{"error":"unauthorized","reason":"Name or password is incorrect."}`))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Database("people").InsertMany([]Document{{"a": 1}})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusUnauthorized, reqErr.Status)
}
