package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
)

const introQuery = `query IntrospectionQuery {
  __schema {
    queryType { name }
    mutationType { name }
    subscriptionType { name }
    types {
      ...FullType
    }
    directives {
      name
      description
      locations
      args {
        ...InputValue
      }
    }
  }
}

fragment FullType on __Type {
  kind
  name
  description
  fields(includeDeprecated: true) {
    name
    description
    args {
      ...InputValue
    }
    type {
      ...TypeRef
    }
    isDeprecated
    deprecationReason
  }
  inputFields {
    ...InputValue
  }
  interfaces {
    ...TypeRef
  }
  enumValues(includeDeprecated: true) {
    name
    description
    isDeprecated
    deprecationReason
  }
  possibleTypes {
    ...TypeRef
  }
}

fragment InputValue on __InputValue {
  name
  description
  type { ...TypeRef }
  defaultValue
}

fragment TypeRef on __Type {
  kind
  name
  ofType {
    kind
    name
    ofType {
      kind
      name
      ofType {
        kind
        name
        ofType {
          kind
          name
          ofType {
            kind
            name
            ofType {
              kind
              name
              ofType {
                kind
                name
              }
            }
          }
        }
      }
    }
  }
}`

type gqlReq struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName"`
}

type fetchClient struct {
	*http.Client
}

// fetch loads a remote schema. Endpoints whose path ends in graphql are
// introspected, anything else is downloaded as SDL or introspection JSON.
//
func (c *fetchClient) fetch(ctx context.Context, u *url.URL, headers http.Header) (*ast.Source, error) {
	log := zap.L().With(zap.String("url", u.String()))

	if path.Base(u.Path) == "graphql" {
		log.Info("fetching types via introspection")
		sdl, err := c.introspect(ctx, u, headers)
		if err != nil {
			return nil, err
		}
		return &ast.Source{Name: u.String(), Input: sdl}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header = cloneHeader(headers)

	log.Info("fetching remote file")
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if path.Ext(u.Path) == ".json" {
		sdl, err := convertIntrospection(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		return &ast.Source{Name: u.String(), Input: sdl}, nil
	}
	return &ast.Source{Name: u.String(), Input: string(body)}, nil
}

func (c *fetchClient) introspect(ctx context.Context, endpoint *url.URL, headers http.Header) (string, error) {
	q, err := json.Marshal(gqlReq{Query: introQuery, OperationName: "IntrospectionQuery"})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(q))
	if err != nil {
		return "", err
	}
	req.Header = cloneHeader(headers)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	return convertIntrospection(bytes.NewReader(body))
}

func (c *fetchClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tsmock: unexpected status fetching %s: %s: %s", req.URL, resp.Status, strings.TrimSpace(string(b)))
	}
	return b, nil
}

func cloneHeader(h http.Header) http.Header {
	if h == nil {
		return make(http.Header)
	}
	return h.Clone()
}
