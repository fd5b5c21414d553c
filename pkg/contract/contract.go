// Package contract exposes the OpenAPI description of the submission
// endpoint. The embedded document is the source of truth for the endpoint URL,
// method and request body shape; payloads can be checked against it before
// they are sent.
package contract

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-candidateform/pkg/model"
)

//go:embed openapi.yaml
var document []byte

// Document returns the raw embedded OpenAPI document.
func Document() []byte {
	return append([]byte(nil), document...)
}

// Operation summarises the submission operation.
type Operation struct {
	ID          string   `json:"operationId" yaml:"operationId"`
	Method      string   `json:"method" yaml:"method"`
	Endpoint    string   `json:"endpoint" yaml:"endpoint"`
	Summary     string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	ContentType string   `json:"contentType" yaml:"contentType"`
	Required    []string `json:"required" yaml:"required"`
	Properties  []string `json:"properties" yaml:"properties"`
}

// Contract is a loaded and validated endpoint description.
type Contract struct {
	op     Operation
	schema *openapi3.Schema
}

// Load parses the embedded document.
func Load(ctx context.Context) (*Contract, error) {
	return LoadFromData(ctx, document, model.OperationSubmitApplication)
}

// LoadFromData parses raw and resolves operationID.
func LoadFromData(ctx context.Context, raw []byte, operationID string) (*Contract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("contract: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("contract: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("contract: validate document: %w", err)
	}

	base := ""
	if len(doc.Servers) > 0 && doc.Servers[0] != nil {
		base = strings.TrimRight(doc.Servers[0].URL, "/")
	}

	if doc.Paths != nil {
		for path, item := range doc.Paths.Map() {
			if item == nil {
				continue
			}
			for method, op := range item.Operations() {
				if op == nil || op.OperationID != operationID {
					continue
				}
				return newContract(base+path, method, op)
			}
		}
	}
	return nil, fmt.Errorf("contract: operation %q not found", operationID)
}

func newContract(endpoint, method string, op *openapi3.Operation) (*Contract, error) {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil, fmt.Errorf("contract: operation %q has no request body", op.OperationID)
	}
	media := op.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("contract: operation %q has no JSON request schema", op.OperationID)
	}
	schema := media.Schema.Value

	props := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		props = append(props, name)
	}
	sort.Strings(props)

	required := append([]string(nil), schema.Required...)
	sort.Strings(required)

	return &Contract{
		op: Operation{
			ID:          op.OperationID,
			Method:      strings.ToUpper(method),
			Endpoint:    endpoint,
			Summary:     op.Summary,
			ContentType: "application/json",
			Required:    required,
			Properties:  props,
		},
		schema: schema,
	}, nil
}

// Operation returns the operation summary.
func (c *Contract) Operation() Operation {
	op := c.op
	op.Required = append([]string(nil), c.op.Required...)
	op.Properties = append([]string(nil), c.op.Properties...)
	return op
}

// Endpoint returns the absolute URL of the operation.
func (c *Contract) Endpoint() string {
	return c.op.Endpoint
}

// IsPost reports whether the operation is a POST, the only method the submit
// client speaks.
func (c *Contract) IsPost() bool {
	return c.op.Method == http.MethodPost
}

// ValidatePayload checks payload against the request body schema.
func (c *Contract) ValidatePayload(payload model.Payload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("contract: encode payload: %w", err)
	}
	var value map[string]any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("contract: decode payload: %w", err)
	}
	if err := c.schema.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("contract: payload does not match schema: %w", err)
	}
	return nil
}
