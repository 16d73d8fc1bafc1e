package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// GvizBody wraps a row grid in the JS envelope the gviz endpoint emits.
func GvizBody(t testing.TB, rows [][]any) string {
	t.Helper()
	type cell struct {
		V any `json:"v"`
	}
	type row struct {
		C []*cell `json:"c"`
	}
	payload := struct {
		Table struct {
			Rows []row `json:"rows"`
		} `json:"table"`
	}{}
	for _, r := range rows {
		var converted row
		for _, v := range r {
			if v == nil {
				converted.C = append(converted.C, nil)
				continue
			}
			converted.C = append(converted.C, &cell{V: v})
		}
		payload.Table.Rows = append(payload.Table.Rows, converted)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal gviz payload: %v", err)
	}
	return "/*O_o*/\ngoogle.visualization.Query.setResponse(" + string(data) + ");"
}

// SheetServer serves canned gviz payloads keyed by sheet id and fails with
// 404 for unknown ids. The returned base URL drops in for the public endpoint.
func SheetServer(t testing.TB, sheets map[string][][]any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) < 1 {
			http.NotFound(w, r)
			return
		}
		rows, ok := sheets[parts[0]]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, GvizBody(t, rows))
	}))
	t.Cleanup(server.Close)
	return server
}
