package couch

// Document is an opaque JSON object owned by the caller. The package passes
// its contents through untouched.
type Document map[string]interface{}

// Selector is a Mango selector. An empty or nil selector matches every
// document.
type Selector map[string]interface{}

// SortField is a single-key {field: "asc"|"desc"} mapping, the element form
// CouchDB expects in a Mango sort array.
type SortField map[string]string

// SortBy builds the sort element for one field. This replaces the loosely
// typed sort argument of older clients, where a bare field name and a
// structured sort list went through the same parameter and a descending flag
// could be silently ignored: here the single-field form is built explicitly
// and a structured []SortField is always passed through as-is.
func SortBy(field string, descending bool) SortField {
	dir := "asc"
	if descending {
		dir = "desc"
	}
	return SortField{field: dir}
}

// Query is a Mango query payload, built fresh per Find call.
type Query struct {
	Selector Selector    `json:"selector"`
	Fields   []string    `json:"fields,omitempty"`
	Sort     []SortField `json:"sort,omitempty"`
	Limit    int         `json:"limit,omitempty"`
}

// Find runs a Mango query against the database and returns the matching
// documents. A zero-value Query matches everything. A response without a
// docs array yields an empty result, not an error.
func (d *Database) Find(q Query) ([]Document, error) {
	if q.Selector == nil {
		q.Selector = Selector{}
	}

	body, err := marshal(q)
	if err != nil {
		return nil, transportErr("find", d.name, err)
	}

	r, err := d.client.Post(d.path("/_find"), body)
	if err != nil {
		return nil, transportErr("find", d.name, err)
	}
	defer r.Body.Close()

	if !ok(r.StatusCode) {
		return nil, statusErr("find", d.name, r)
	}

	type findResponse struct {
		Docs []Document `json:"docs"`
	}
	resp, err := unmarshal[findResponse](r)
	if err != nil {
		return nil, err
	}
	if resp.Docs == nil {
		return []Document{}, nil
	}
	return resp.Docs, nil
}

// DocumentResult is the server's acknowledgment of a single write.
type DocumentResult struct {
	OK  bool   `json:"ok"`
	ID  string `json:"id"`
	Rev string `json:"rev"`
}

// InsertOne stores a single document. The server assigns id and revision
// unless the document carries its own _id.
func (d *Database) InsertOne(doc Document) (DocumentResult, error) {
	body, err := marshal(doc)
	if err != nil {
		return DocumentResult{}, transportErr("insert document", d.name, err)
	}

	r, err := d.client.Post(d.path(""), body)
	if err != nil {
		return DocumentResult{}, transportErr("insert document", d.name, err)
	}
	defer r.Body.Close()

	if !ok(r.StatusCode) {
		return DocumentResult{}, statusErr("insert document", d.name, r)
	}
	return unmarshal[DocumentResult](r)
}

// BulkResult is one element of a _bulk_docs response: either an id/rev pair
// or a per-document error such as a conflict.
type BulkResult struct {
	OK     bool   `json:"ok"`
	ID     string `json:"id"`
	Rev    string `json:"rev"`
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// Failed reports whether this document was rejected.
func (b BulkResult) Failed() bool {
	return b.Error != ""
}

// InsertMany stores a batch of documents in a single request and returns the
// per-document outcomes in order. A 2xx response is a success at this level
// even when individual documents were rejected; inspecting the results is
// the caller's job.
func (d *Database) InsertMany(docs []Document) ([]BulkResult, error) {
	payload := struct {
		Docs []Document `json:"docs"`
	}{Docs: docs}

	body, err := marshal(payload)
	if err != nil {
		return nil, transportErr("bulk insert", d.name, err)
	}

	r, err := d.client.Post(d.path("/_bulk_docs"), body)
	if err != nil {
		return nil, transportErr("bulk insert", d.name, err)
	}
	defer r.Body.Close()

	if !ok(r.StatusCode) {
		return nil, statusErr("bulk insert", d.name, r)
	}
	return unmarshal[[]BulkResult](r)
}
