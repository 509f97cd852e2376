package http

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/lands_request.schema.json
var landsRequestSchema []byte

const landsRequestSchemaURL = "lands_request.schema.json"

var errInvalidRequest = errors.New("invalid request")

func compileLandsSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(landsRequestSchemaURL, bytes.NewReader(landsRequestSchema)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	s, err := c.Compile(landsRequestSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", landsRequestSchemaURL, err)
	}
	return s, nil
}

// decodeLandsRequest validates raw against the request schema before
// decoding it.
func decodeLandsRequest(schema *jsonschema.Schema, raw []byte) (LandsRequest, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return LandsRequest{}, fmt.Errorf("%w: malformed JSON", errInvalidRequest)
	}
	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return LandsRequest{}, fmt.Errorf("%w: %s", errInvalidRequest, firstCause(ve))
		}
		return LandsRequest{}, fmt.Errorf("%w: %v", errInvalidRequest, err)
	}

	var req LandsRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return LandsRequest{}, fmt.Errorf("%w: %v", errInvalidRequest, err)
	}
	return req, nil
}

func firstCause(ve *jsonschema.ValidationError) string {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return loc + ": " + ve.Message
}
