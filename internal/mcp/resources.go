// resources.go implements MCP resource handlers for entry access.
//
// Resources give clients read-only access to entries by URI without a tool
// call, useful for loading context. URIs follow faqd://documents/{id}.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jpl-au/faqd/internal/format"
	"github.com/jpl-au/faqd/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

const documentURIPrefix = "faqd://documents/"

var (
	// ErrInvalidURI indicates a resource URI outside faqd://documents/.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyID indicates a resource URI without an entry id.
	ErrEmptyID = errors.New("empty document id")
)

// readDocument handles faqd://documents/{id} resource requests.
func (h *handlers) readDocument(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	id, err := parseDocumentURI(uri)
	if err != nil {
		return nil, err
	}

	doc, err := h.ctx.Service().ByID(ctx, id)

	log.Event("mcp:resource", "read").Author("mcp").Backend(h.ctx.Backend()).ID(id).Write(err)

	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     format.Document(*doc),
		},
	}, nil
}

// parseDocumentURI extracts the entry id from a document URI. The id may be
// percent-encoded.
func parseDocumentURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, documentURIPrefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	rest := strings.TrimPrefix(uri, documentURIPrefix)
	if rest == "" {
		return "", ErrEmptyID
	}

	id, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return id, nil
}
