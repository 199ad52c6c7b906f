package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestDocumentCoversRoutes(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc returned error: %v", err)
	}

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("Document is not valid JSON: %v", err)
	}

	routes := map[string][]string{
		"/match":                        {"post"},
		"/games/{id}/similar":           {"get"},
		"/discovery/search":             {"post"},
		"/discovery/lists":              {"get", "post"},
		"/discovery/lists/{id}":         {"get", "put", "delete"},
		"/discovery/lists/{id}/results": {"get"},
		"/discovery/shared/{token}":     {"get"},
		"/users/me":                     {"get"},
		"/games":                        {"get"},
		"/games/{id}":                   {"get"},
		"/games/{id}/favorite":          {"post"},
		"/tags":                         {"get"},
		"/admin/tags":                   {"post"},
		"/admin/tags/{id}":              {"put", "delete"},
		"/admin/games":                  {"post"},
		"/admin/games/{id}":             {"put", "delete"},
	}

	for path, methods := range routes {
		for _, method := range methods {
			if _, ok := doc.Paths[path][method]; !ok {
				t.Errorf("Expected %s %s to be documented", method, path)
			}
		}
	}
	if len(doc.Paths) != len(routes) {
		t.Errorf("Expected %d documented paths but got %d", len(routes), len(doc.Paths))
	}
}
