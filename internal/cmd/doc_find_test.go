package cmd

import (
	"reflect"
	"testing"

	"github.com/sofadb/sofa-cli/internal/couch"
)

func TestBuildFindQuery(t *testing.T) {
	tests := []struct {
		name       string
		selector   string
		fields     []string
		sort       string
		descending bool
		limit      int
		want       couch.Query
		wantErr    bool
	}{
		{
			name: "defaults",
			want: couch.Query{},
		},
		{
			name:     "selector",
			selector: `{"type":"person"}`,
			want:     couch.Query{Selector: couch.Selector{"type": "person"}},
		},
		{
			name:       "sort descending",
			sort:       "age",
			descending: true,
			want:       couch.Query{Sort: []couch.SortField{{"age": "desc"}}},
		},
		{
			name: "sort ascending",
			sort: "age",
			want: couch.Query{Sort: []couch.SortField{{"age": "asc"}}},
		},
		{
			name:       "descending without sort field is ignored",
			descending: true,
			want:       couch.Query{},
		},
		{
			name:   "fields and limit",
			fields: []string{"name", "age"},
			limit:  25,
			want:   couch.Query{Fields: []string{"name", "age"}, Limit: 25},
		},
		{
			name:     "invalid selector",
			selector: `{not json`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildFindQuery(tt.selector, tt.fields, tt.sort, tt.descending, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("buildFindQuery() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildFindQuery() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"nil", nil, ""},
		{"string", "ada", "ada"},
		{"number", float64(36), "36"},
		{"bool", true, "true"},
		{"object", map[string]interface{}{"a": float64(1)}, `{"a":1}`},
		{"array", []interface{}{"x", "y"}, `["x","y"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.value); got != tt.want {
				t.Errorf("formatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
