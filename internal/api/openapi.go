package api

import (
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"titanic-dash/internal/domain"
)

// Version is reported in the OpenAPI document. It is set at build time.
var Version = "dev"

var (
	specOnce sync.Once
	specDoc  *openapi3.T
)

// Spec returns the OpenAPI 3 description of the JSON API.
func Spec() *openapi3.T {
	specOnce.Do(func() { specDoc = buildSpec() })
	return specDoc
}

// ServeOpenAPI writes the OpenAPI document as JSON.
func ServeOpenAPI(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Spec())
}

func schemaRef(name string) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, nil)
}

func buildSpec() *openapi3.T {
	ageRange := openapi3.NewObjectSchema().
		WithProperty("lo", openapi3.NewIntegerSchema().WithMin(domain.MinAge).WithMax(domain.MaxAge)).
		WithProperty("hi", openapi3.NewIntegerSchema().WithMin(domain.MinAge).WithMax(domain.MaxAge))

	criteria := openapi3.NewObjectSchema().
		WithProperty("sex", sexSchema()).
		WithProperty("class", classSchema()).
		WithPropertyRef("age_range", schemaRef("AgeRange"))

	summary := openapi3.NewObjectSchema().
		WithPropertyRef("criteria", schemaRef("FilterCriteria")).
		WithProperty("survived", openapi3.NewIntegerSchema().WithMin(0)).
		WithProperty("perished", openapi3.NewIntegerSchema().WithMin(0)).
		WithProperty("total", openapi3.NewIntegerSchema().WithMin(0)).
		WithProperty("survival_rate", openapi3.NewFloat64Schema().WithMin(0).WithMax(1)).
		WithProperty("title", openapi3.NewStringSchema()).
		WithProperty("subtitle", openapi3.NewStringSchema()).
		WithProperty("centre", openapi3.NewStringSchema()).
		WithProperty("souls", openapi3.NewStringSchema()).
		WithProperty("deck", openapi3.NewStringSchema()).
		WithProperty("souls_unmapped", openapi3.NewBoolSchema())

	passenger := openapi3.NewObjectSchema().
		WithProperty("survived", openapi3.NewBoolSchema()).
		WithProperty("age", openapi3.NewFloat64Schema().WithMin(0)).
		WithProperty("sex", openapi3.NewStringSchema()).
		WithProperty("class", classSchema())

	passengerList := openapi3.NewObjectSchema().
		WithProperty("passengers", openapi3.NewArraySchema().WithItems(passenger)).
		WithProperty("total", openapi3.NewInt64Schema()).
		WithProperty("next_page_token", openapi3.NewStringSchema())

	controls := openapi3.NewObjectSchema().
		WithProperty("souls_options", stringEnumArray(domain.SoulsOptions)).
		WithProperty("deck_options", stringEnumArray(domain.DeckOptions)).
		WithProperty("age_min", openapi3.NewIntegerSchema()).
		WithProperty("age_max", openapi3.NewIntegerSchema()).
		WithProperty("age_step", openapi3.NewIntegerSchema()).
		WithPropertyRef("default_age_range", schemaRef("AgeRange"))

	health := openapi3.NewObjectSchema().
		WithProperty("status", openapi3.NewStringSchema()).
		WithProperty("records", openapi3.NewIntegerSchema())

	apiError := openapi3.NewObjectSchema().
		WithProperty("code", openapi3.NewInt32Schema()).
		WithProperty("message", openapi3.NewStringSchema())

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "R.M.S. Titanic survival dashboard",
			Description: "Survived vs. perished counts over the passenger table, filtered by sex, cabin class and age range.",
			Version:     Version,
		},
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				"AgeRange":       openapi3.NewSchemaRef("", ageRange),
				"FilterCriteria": openapi3.NewSchemaRef("", criteria),
				"Summary":        openapi3.NewSchemaRef("", summary),
				"Passenger":      openapi3.NewSchemaRef("", passenger),
				"PassengerList":  openapi3.NewSchemaRef("", passengerList),
				"Controls":       openapi3.NewSchemaRef("", controls),
				"Health":         openapi3.NewSchemaRef("", health),
				"Error":          openapi3.NewSchemaRef("", apiError),
			},
		},
	}

	summaryOp := getOperation("getSummary", "Survived vs. perished counts for the selected filters", "Summary", filterParameters()...)
	addErrorResponse(summaryOp, http.StatusBadRequest, "Invalid filter")

	listOp := getOperation("listPassengers", "Records matching the selected filters", "PassengerList",
		append(filterParameters(),
			openapi3.NewQueryParameter(ParamMaxResults).WithSchema(openapi3.NewIntegerSchema().WithMin(1).WithMax(domain.MaxMaxResults)),
			openapi3.NewQueryParameter(ParamPageToken).WithSchema(openapi3.NewStringSchema()),
		)...)
	addErrorResponse(listOp, http.StatusBadRequest, "Invalid filter or page")

	doc.Paths = openapi3.NewPaths(
		openapi3.WithPath("/api/v1/summary", &openapi3.PathItem{Get: summaryOp}),
		openapi3.WithPath("/api/v1/passengers", &openapi3.PathItem{Get: listOp}),
		openapi3.WithPath("/api/v1/controls", &openapi3.PathItem{Get: getOperation("getControls", "Dashboard control options", "Controls")}),
		openapi3.WithPath("/healthz", &openapi3.PathItem{Get: getOperation("healthz", "Liveness and table size", "Health")}),
	)
	return doc
}

func getOperation(id, summary, responseSchema string, params ...*openapi3.Parameter) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = id
	op.Summary = summary
	for _, p := range params {
		op.AddParameter(p)
	}
	op.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("OK").
		WithJSONSchemaRef(schemaRef(responseSchema)))
	return op
}

func addErrorResponse(op *openapi3.Operation, status int, description string) {
	op.AddResponse(status, openapi3.NewResponse().
		WithDescription(description).
		WithJSONSchemaRef(schemaRef("Error")))
}

func filterParameters() []*openapi3.Parameter {
	return []*openapi3.Parameter{
		openapi3.NewQueryParameter(ParamSouls).
			WithDescription("Souls selector label; labels outside the mapping table apply no sex filter").
			WithSchema(openapi3.NewStringSchema()),
		openapi3.NewQueryParameter(ParamDeck).
			WithDescription("Deck selector label").
			WithSchema(stringEnum(domain.DeckOptions)),
		openapi3.NewQueryParameter(ParamSex).
			WithDescription("Explicit sex filter; overrides souls").
			WithSchema(sexSchema()),
		openapi3.NewQueryParameter(ParamClass).
			WithDescription("Explicit class filter; overrides deck").
			WithSchema(classSchema()),
		openapi3.NewQueryParameter(ParamAgeMin).
			WithSchema(openapi3.NewIntegerSchema().WithMin(domain.MinAge).WithMax(domain.MaxAge).WithDefault(domain.MinAge)),
		openapi3.NewQueryParameter(ParamAgeMax).
			WithSchema(openapi3.NewIntegerSchema().WithMin(domain.MinAge).WithMax(domain.MaxAge).WithDefault(domain.MaxAge)),
	}
}

func sexSchema() *openapi3.Schema {
	return openapi3.NewStringSchema().WithEnum(string(domain.SexMale), string(domain.SexFemale))
}

func classSchema() *openapi3.Schema {
	return openapi3.NewIntegerSchema().WithEnum(1, 2, 3)
}

func stringEnum(values []string) *openapi3.Schema {
	s := openapi3.NewStringSchema()
	for _, v := range values {
		s.Enum = append(s.Enum, v)
	}
	return s
}

func stringEnumArray(values []string) *openapi3.Schema {
	return openapi3.NewArraySchema().WithItems(stringEnum(values))
}
