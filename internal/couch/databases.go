package couch

import "net/http"

// ServerInfo is the welcome document served at the server root.
type ServerInfo struct {
	CouchDB string `json:"couchdb"`
	Version string `json:"version"`
	UUID    string `json:"uuid,omitempty"`
	Vendor  struct {
		Name string `json:"name"`
	} `json:"vendor,omitempty"`
}

// Ping fetches the server welcome document.
func (c *Client) Ping() (ServerInfo, error) {
	r, err := c.Get("/")
	if err != nil {
		return ServerInfo{}, transportErr("ping", "", err)
	}
	defer r.Body.Close()

	if !ok(r.StatusCode) {
		return ServerInfo{}, statusErr("ping", "", r)
	}
	return unmarshal[ServerInfo](r)
}

// ListDatabases returns the names of all databases the credentials can see.
// The first successful listing is stored in the client's names cache;
// subsequent calls return the cached value without a network round trip.
// Errors are never cached.
func (c *Client) ListDatabases() ([]string, error) {
	if names, cached := c.names.Get(); cached {
		return names, nil
	}

	r, err := c.Get("/_all_dbs")
	if err != nil {
		return nil, transportErr("list databases", "", err)
	}
	defer r.Body.Close()

	if !ok(r.StatusCode) {
		return nil, statusErr("list databases", "", r)
	}

	names, err := unmarshal[[]string](r)
	if err != nil {
		return nil, err
	}
	c.names.Set(names)
	return names, nil
}

// RefreshDatabases drops the cached listing and fetches a fresh one.
func (c *Client) RefreshDatabases() ([]string, error) {
	c.names.Invalidate()
	return c.ListDatabases()
}

// Database returns a handle for the named database. This is pure
// construction: no request is made and the database may not exist on the
// server.
func (c *Client) Database(name string) *Database {
	return &Database{client: c, name: name}
}

// Database is one database's CRUD surface. It carries no state of its own;
// every operation is a single request through the owning client.
type Database struct {
	client *Client
	name   string
}

func (d *Database) Name() string {
	return d.name
}

func (d *Database) path(suffix string) string {
	return "/" + d.name + suffix
}

// Exists checks whether the database is present on the server. A 404 is the
// one non-2xx status that is not an error; any other unexpected status is
// reported rather than treated as absence.
func (d *Database) Exists() (bool, error) {
	r, err := d.client.Head(d.path(""))
	if err != nil {
		return false, transportErr("check database", d.name, err)
	}
	defer r.Body.Close()

	switch {
	case r.StatusCode == http.StatusOK:
		return true, nil
	case r.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, statusErr("check database", d.name, r)
	}
}

// Create makes the database if it is absent. It reports true when the
// database was created and false when it already existed, in which case no
// PUT is issued. The existence check and the PUT are separate requests; a
// concurrent creator can win the race, and the server's conflict status is
// then surfaced as an error instead of being swallowed.
func (d *Database) Create() (bool, error) {
	exists, err := d.Exists()
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	r, err := d.client.Put(d.path(""), nil)
	if err != nil {
		return false, transportErr("create database", d.name, err)
	}
	defer r.Body.Close()

	if !ok(r.StatusCode) {
		return false, statusErr("create database", d.name, r)
	}
	return true, nil
}

// DatabaseInfo is the metadata document served at /{db}.
type DatabaseInfo struct {
	DBName      string `json:"db_name"`
	DocCount    int64  `json:"doc_count"`
	DocDelCount int64  `json:"doc_del_count"`
	Sizes       struct {
		File     int64 `json:"file"`
		Active   int64 `json:"active"`
		External int64 `json:"external"`
	} `json:"sizes"`
}

// Info fetches the database metadata document.
func (d *Database) Info() (DatabaseInfo, error) {
	r, err := d.client.Get(d.path(""))
	if err != nil {
		return DatabaseInfo{}, transportErr("get database info", d.name, err)
	}
	defer r.Body.Close()

	if !ok(r.StatusCode) {
		return DatabaseInfo{}, statusErr("get database info", d.name, r)
	}
	return unmarshal[DatabaseInfo](r)
}

// Delete removes the database and everything in it. Unlike Exists, a 404
// here is an error: deleting something that is not there is a caller bug
// worth hearing about.
func (d *Database) Delete() error {
	r, err := d.client.Delete(d.path(""))
	if err != nil {
		return transportErr("delete database", d.name, err)
	}
	defer r.Body.Close()

	if !ok(r.StatusCode) {
		return statusErr("delete database", d.name, r)
	}
	return nil
}
