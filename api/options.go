package api

import (
	"context"
	"fmt"

	"github.com/areahq/areactl/model"
	"github.com/oliveagle/jsonpath"
)

// OptionsService resolves the choices of a dynamic select parameter by
// calling GET /services/{source}. The fetch happens when the edit form of a
// node opens and is deliberately not cached across nodes.
type OptionsService struct {
	client *Client
}

func NewOptionsService(client *Client) *OptionsService {
	return &OptionsService{client: client}
}

func (s *OptionsService) Fetch(ctx context.Context, spec model.ParamSpec) ([]string, error) {
	if !spec.Dynamic() {
		return spec.Options, nil
	}
	var doc any
	if err := s.client.do(ctx, "GET", fmt.Sprintf("/services/%s", spec.Source), nil, &doc); err != nil {
		return nil, err
	}
	if spec.Pluck != "" {
		value, err := jsonpath.JsonPathLookup(doc, spec.Pluck)
		if err != nil {
			return nil, fmt.Errorf("plucking options for %s: %w", spec.Source, err)
		}
		doc = value
	}
	return coerceOptions(doc, spec.Source)
}

func coerceOptions(doc any, source string) ([]string, error) {
	switch v := doc.(type) {
	case []any:
		options := make([]string, 0, len(v))
		for _, item := range v {
			options = append(options, fmt.Sprintf("%v", item))
		}
		return options, nil
	case []string:
		return v, nil
	case map[string]any:
		if inner, ok := v["options"]; ok {
			return coerceOptions(inner, source)
		}
	}
	return nil, fmt.Errorf("response from /services/%s is not an option list", source)
}
