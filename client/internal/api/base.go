// Package api holds the endpoint table: one file per backend area, each
// helper composing a fixed path and decoding into its response contract.
// Transport, auth and error reporting belong to the Requester.
package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// Requester is implemented by the client facade.
type Requester interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	// Decode unmarshals raw into v and validates the contract, reporting
	// failures the same way as failed requests.
	Decode(ctx context.Context, path string, raw json.RawMessage, v any) error
}

// Params is a caller-supplied query mapping.
type Params map[string]string

// WithQuery appends params to path. Empty values are omitted; remaining pairs
// use standard query encoding with keys in sorted order.
func WithQuery(path string, params Params) string {
	v := url.Values{}
	for k, val := range params {
		if val == "" {
			continue
		}
		v.Set(k, val)
	}
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

// getInto performs a GET and decodes the body into out.
func getInto(ctx context.Context, r Requester, path string, out any) error {
	raw, err := r.Get(ctx, path)
	if err != nil {
		return err
	}
	return r.Decode(ctx, path, raw, out)
}

// postInto performs a POST and decodes the body into out.
func postInto(ctx context.Context, r Requester, path string, body, out any) error {
	raw, err := r.Post(ctx, path, body)
	if err != nil {
		return err
	}
	return r.Decode(ctx, path, raw, out)
}
