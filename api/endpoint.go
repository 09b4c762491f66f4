package api

import (
	"context"
	"encoding/json"
)

// Endpoint binds a path template to a Requester and runs the
// validate -> build -> dispatch pipeline every façade method follows.
type Endpoint struct {
	template  Template
	requester Requester
}

// NewEndpoint returns an Endpoint issuing calls for t through r.
func NewEndpoint(r Requester, t Template) Endpoint {
	return Endpoint{template: t, requester: r}
}

// Template returns the endpoint's path template
func (e Endpoint) Template() Template {
	return e.template
}

// Path builds the request path for element and tail, validating params against allow.
// A rejected parameter is returned before any path is built.
func (e Endpoint) Path(element, tail string, allow AllowList, params map[string]string) (string, error) {
	query, err := EncodeQuery(allow, params)
	if err != nil {
		return "", err
	}
	return BuildPath(e.template, e.requester.Config(), element, tail, query)
}

// Get issues a GET. Validation failures short-circuit: the requester is never called.
func (e Endpoint) Get(ctx context.Context, element, tail string, allow AllowList, params map[string]string) (*Response, error) {
	path, err := e.Path(element, tail, allow, params)
	if err != nil {
		return nil, err
	}
	return e.requester.Dispatch(ctx, MethodGet, path, nil)
}

// Post marshals body as JSON and issues a POST. A nil body posts an empty payload.
func (e Endpoint) Post(ctx context.Context, element, tail string, body any) (*Response, error) {
	path, err := e.Path(element, tail, nil, nil)
	if err != nil {
		return nil, err
	}

	payload := []byte{}
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindInvalidParameter, Message: "failed to marshal request body", Err: err}
		}
	}
	return e.requester.Dispatch(ctx, MethodPost, path, payload)
}
