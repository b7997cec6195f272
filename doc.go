// Package formkit provides a declarative, rule-based validation engine for
// web form fields, plus the HTTP glue to expose it as a JSON endpoint.
//
// FormKit validates each field against an ordered rule list, reports the
// first failing rule's message per field, and answers a single question:
// may this form submission proceed?
//
// Key Features:
//
//   - Declarative per-field rule sets, frozen and verified at startup
//   - First-failure short-circuit per field, one message per invalid field
//   - Parameterized messages via {placeholder} templates
//   - Pluggable value lookup and error display collaborators
//   - Ready-made HTTP handler for urlencoded form posts
//
// Basic Usage:
//
//	registry := form.MustNewRegistry(
//		form.Field{Name: "name", Rules: []rules.Rule{rules.Required()}},
//		form.Field{Name: "email", Rules: []rules.Rule{rules.Required(), rules.Email()}},
//		form.Field{Name: "password", Rules: []rules.Rule{rules.Required(), rules.MinLength(8)}},
//		form.Field{Name: "password_confirmation", Label: "password", Rules: []rules.Rule{
//			rules.Confirmation("password"),
//		}},
//	)
//
//	handler := formkit.NewFormHandler(registry)
//	r := chi.NewRouter()
//	r.Mount("/signup", formkit.Router(handler))
//
// The engine itself is transport-agnostic: pkg/form runs against any value
// source and error display, so the same registry can back an HTTP endpoint,
// a CLI prompt, or tests with in-memory collaborators.
package formkit
