// Package docs registers the OpenAPI document served under /swagger/.
package docs

import (
	"encoding/json"

	"shift/internal/generated/servers"

	"github.com/swaggo/swag"
)

// document serves the contract the router validates against.
type document struct {
	raw string
}

func (d document) ReadDoc() string {
	return d.raw
}

func load() (document, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return document{}, err
	}

	raw, err := json.Marshal(swagger)
	if err != nil {
		return document{}, err
	}
	return document{raw: string(raw)}, nil
}

func init() {
	doc, err := load()
	if err != nil {
		panic("docs: " + err.Error())
	}
	swag.Register(swag.Name, doc)
}
