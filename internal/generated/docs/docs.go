// Package docs registers the API description with swag so that
// echo-swagger can serve it under /swagger/.
package docs

import (
	"sync"

	"ordertracker/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Order Tracker",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  "{}",
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

var (
	registerOnce sync.Once
	registerErr  error
)

// Register converts the embedded OpenAPI document to JSON and registers it
// under SwaggerInfo.InstanceName(). Only the first call does any work.
func Register() error {
	registerOnce.Do(func() {
		registerErr = register()
	})
	return registerErr
}

func register() error {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.Spec)
	if err != nil {
		return err
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	SwaggerInfo.SwaggerTemplate = string(raw)
	SwaggerInfo.Title = doc.Info.Title
	SwaggerInfo.Version = doc.Info.Version
	SwaggerInfo.Description = doc.Info.Description
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
	return nil
}
