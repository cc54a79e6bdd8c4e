// Package docs builds and serves the OpenAPI description of the service.
package docs

import (
	"net/http"

	"resistor-api/internal/handlers"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

type Document struct {
	OpenAPI    string              `json:"openapi" yaml:"openapi"`
	Info       Info                `json:"info" yaml:"info"`
	Paths      map[string]PathItem `json:"paths" yaml:"paths"`
	Components Components          `json:"components" yaml:"components"`
}

type Info struct {
	Title   string `json:"title" yaml:"title"`
	Version string `json:"version" yaml:"version"`
}

type PathItem struct {
	Get  *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Post *Operation `json:"post,omitempty" yaml:"post,omitempty"`
}

type Operation struct {
	Tags        []string            `json:"tags" yaml:"tags"`
	Summary     string              `json:"summary" yaml:"summary"`
	Parameters  []Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
}

type Parameter struct {
	Name        string  `json:"name" yaml:"name"`
	In          string  `json:"in" yaml:"in"`
	Description string  `json:"description" yaml:"description"`
	Required    bool    `json:"required" yaml:"required"`
	Schema      *Schema `json:"schema" yaml:"schema"`
}

type RequestBody struct {
	Required bool                 `json:"required" yaml:"required"`
	Content  map[string]MediaType `json:"content" yaml:"content"`
}

type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

type MediaType struct {
	Schema *Schema `json:"schema" yaml:"schema"`
}

type Schema struct {
	Ref        string             `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type       string             `json:"type,omitempty" yaml:"type,omitempty"`
	Format     string             `json:"format,omitempty" yaml:"format,omitempty"`
	Enum       []string           `json:"enum,omitempty" yaml:"enum,omitempty"`
	Nullable   bool               `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Items      *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
	Required   []string           `json:"required,omitempty" yaml:"required,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type Components struct {
	Schemas map[string]*Schema `json:"schemas" yaml:"schemas"`
}

func ref(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

func jsonContent(s *Schema) map[string]MediaType {
	return map[string]MediaType{"application/json": {Schema: s}}
}

// New describes the service's public routes. colorNames becomes the enum of
// every band parameter.
func New(colorNames []string) *Document {
	color := func() *Schema { return &Schema{Type: "string", Enum: colorNames} }
	number := func() *Schema { return &Schema{Type: "number", Format: "double"} }

	decoded := map[string]Response{
		"200": {Description: "Resistor value could be decoded correctly", Content: jsonContent(ref("ResistorValue"))},
		"400": {Description: "The request is malformed or misses a required band", Content: jsonContent(ref("Error"))},
		"404": {Description: "The request contains an unknown color", Content: jsonContent(ref("Error"))},
	}

	queryBand := func(name, desc string, required bool) Parameter {
		return Parameter{Name: name, In: "query", Description: desc, Required: required, Schema: color()}
	}

	return &Document{
		OpenAPI: "3.0.3",
		Info:    Info{Title: "Resistor Color Code API", Version: "v1"},
		Paths: map[string]PathItem{
			"/colors": {
				Get: &Operation{
					Tags:    []string{"Colors"},
					Summary: "Return all colors for bands on resistors",
					Responses: map[string]Response{
						"200": {Description: "A list of all colors", Content: jsonContent(&Schema{Type: "array", Items: color()})},
					},
				},
			},
			"/colors/{color}": {
				Get: &Operation{
					Tags:    []string{"Colors"},
					Summary: "Return details for a color band",
					Parameters: []Parameter{
						{Name: "color", In: "path", Description: "Color name", Required: true, Schema: &Schema{Type: "string"}},
					},
					Responses: map[string]Response{
						"200": {Description: "Details for a color band", Content: jsonContent(ref("ColorDetails"))},
						"404": {Description: "Unknown Color", Content: jsonContent(ref("Error"))},
					},
				},
			},
			"/resistors/value-from-bands": {
				Get: &Operation{
					Tags:    []string{"Resistors"},
					Summary: "Calculates the resistor value based on given color bands (using GET).",
					Parameters: []Parameter{
						queryBand("firstBand", "Color of the 1st band", true),
						queryBand("secondBand", "Color of the 2nd band", true),
						queryBand("thirdBand", "Color of the 3rd band. Leave out for 4-band-coded resistors.", false),
						queryBand("multiplier", "Color of the multiplier band", true),
						queryBand("tolerance", "Color of the tolerance band", true),
					},
					Responses: decoded,
				},
				Post: &Operation{
					Tags:        []string{"Resistors"},
					Summary:     "Calculates the resistor value based on given color bands (using POST).",
					RequestBody: &RequestBody{Required: true, Content: jsonContent(ref("ResistorBands"))},
					Responses:   decoded,
				},
			},
		},
		Components: Components{
			Schemas: map[string]*Schema{
				"ColorDetails": {
					Type:     "object",
					Required: []string{"value", "multiplier", "tolerance"},
					Properties: map[string]*Schema{
						"value":      {Type: "integer", Format: "int32"},
						"multiplier": number(),
						"tolerance":  number(),
					},
				},
				"ResistorBands": {
					Type:     "object",
					Required: []string{"firstBand", "secondBand", "multiplier", "tolerance"},
					Properties: map[string]*Schema{
						"firstBand":  color(),
						"secondBand": color(),
						"thirdBand":  {Type: "string", Enum: colorNames, Nullable: true},
						"multiplier": color(),
						"tolerance":  color(),
					},
				},
				"ResistorValue": {
					Type:     "object",
					Required: []string{"resistorValue", "tolerance"},
					Properties: map[string]*Schema{
						"resistorValue": number(),
						"tolerance":     number(),
						"display":       {Type: "string"},
					},
				},
				"Error": {
					Type:       "object",
					Required:   []string{"error"},
					Properties: map[string]*Schema{"error": {Type: "string"}},
				},
			},
		},
	}
}

// Handler serves a Document as JSON and YAML.
type Handler struct {
	doc *Document
}

func NewHandler(doc *Document) *Handler {
	return &Handler{doc: doc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/openapi.json", h.JSON)
	r.Get("/openapi.yaml", h.YAML)
}

// JSON handles GET /openapi.json.
func (h *Handler) JSON(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, h.doc)
}

// YAML handles GET /openapi.yaml.
func (h *Handler) YAML(w http.ResponseWriter, r *http.Request) {
	out, err := yaml.Marshal(h.doc)
	if err != nil {
		handlers.WriteError(w, http.StatusInternalServerError, "encoding openapi document")
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
