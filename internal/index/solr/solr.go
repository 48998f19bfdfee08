// Package solr is the remote FAQ index backend: it sends rendered Lucene
// queries to a Solr core's /select handler and decodes the JSON response.
//
// The HTTP client is injected; its timeout is the only timeout applied to a
// query. Requests are never retried.
package solr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/query"
	"github.com/jpl-au/faqd/internal/taxonomy"
)

// Name identifies this backend in config and logs.
const Name = "solr"

// maxRows is sent when the caller asks for every row. Solr requires an
// explicit row count.
const maxRows = 2147483647

// Client queries one Solr core.
type Client struct {
	base string // {url}/{core}
	http *http.Client
}

var _ index.Index = (*Client)(nil)

// New returns a client for core at baseURL (e.g. http://localhost:8983/solr).
// A nil httpClient uses http.DefaultClient.
func New(baseURL, core string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: solr url not configured", index.ErrUnavailable)
	}
	if core == "" {
		return nil, fmt.Errorf("%w: solr core not configured", index.ErrUnavailable)
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("%w: solr url %q: %w", index.ErrUnavailable, baseURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base: strings.TrimSuffix(baseURL, "/") + "/" + url.PathEscape(core),
		http: httpClient,
	}, nil
}

// Name returns "solr".
func (c *Client) Name() string { return Name }

// Close releases idle connections.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// Query renders q and runs it against /select.
func (c *Client) Query(ctx context.Context, q query.Expr, opts index.Options) ([]index.Document, error) {
	params := url.Values{}
	params.Set("q", query.String(q))
	params.Set("wt", "json")
	rows := opts.Rows
	if rows <= 0 {
		rows = maxRows
	}
	params.Set("rows", strconv.Itoa(rows))
	if len(opts.Fields) > 0 {
		params.Set("fl", strings.Join(fieldList(opts), ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/select?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", index.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", index.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", index.ErrUpstream, err)
	}

	var r selectResponse
	decodeErr := json.Unmarshal(body, &r)
	if resp.StatusCode/100 != 2 {
		msg := resp.Status
		if decodeErr == nil && r.Error != nil && r.Error.Msg != "" {
			msg = r.Error.Msg
		}
		return nil, fmt.Errorf("%w: solr %d: %s", index.ErrUpstream, resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: decode response: %w", index.ErrUpstream, decodeErr)
	}

	docs := make([]index.Document, 0, len(r.Response.Docs))
	for _, d := range r.Response.Docs {
		docs = append(docs, d.document())
	}
	return docs, nil
}

// fieldList is the fl parameter for a projection. id is always included.
func fieldList(opts index.Options) []string {
	out := []string{query.FieldID}
	for _, f := range opts.Fields {
		if f != query.FieldID {
			out = append(out, f)
		}
	}
	return out
}

type selectResponse struct {
	Response struct {
		NumFound int      `json:"numFound"`
		Docs     []solrDoc `json:"docs"`
	} `json:"response"`
	Error *struct {
		Msg  string `json:"msg"`
		Code int    `json:"code"`
	} `json:"error"`
}

type solrDoc struct {
	ID       values `json:"id"`
	Path     values `json:"path"`
	Question values `json:"question"`
	Answer   values `json:"answer"`
	Comment  values `json:"comment"`
}

func (d solrDoc) document() index.Document {
	var path taxonomy.Path
	if len(d.Path) > 0 {
		path = taxonomy.Path(d.Path)
	}
	return index.Document{
		ID:       d.ID.first(),
		Path:     path,
		Question: d.Question.first(),
		Answer:   d.Answer.first(),
		Comment:  d.Comment.first(),
	}
}

// values decodes a Solr field that may be single or multi-valued. Numbers
// and booleans are kept in their JSON text form.
type values []string

func (v *values) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = nil
	case []any:
		out := make(values, 0, len(x))
		for _, e := range x {
			out = append(out, scalar(e))
		}
		*v = out
	default:
		*v = values{scalar(x)}
	}
	return nil
}

func scalar(x any) string {
	switch s := x.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

func (v values) first() string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}
