// Package form binds validation rules to named form fields and runs them as
// a single declarative pass.
//
// A Registry maps each field to its ordered rule set and is built once at
// startup:
//
//	registry, err := form.NewRegistry(
//		form.Field{Name: "email", Rules: []rules.Rule{rules.Required(), rules.Email()}},
//		form.Field{Name: "password", Rules: []rules.Rule{rules.Required(), rules.MinLength(8)}},
//		form.Field{Name: "password_confirmation", Label: "password", Rules: []rules.Rule{
//			rules.Confirmation("password"),
//		}},
//	)
//
// Construction fails fast on duplicate fields and on rules referencing
// fields that do not exist, so a broken registry never reaches a validation
// pass.
//
// An Engine ties a registry to two collaborators: a rules.ValueSource that
// reads current field values and a Display that shows or hides per-field
// error messages. Validate walks fields in registration order, short-circuits
// each field on its first failing rule, and returns whether the whole form
// may proceed:
//
//	engine := form.New(registry, form.Values(r.PostForm), sink)
//	if engine.Validate() {
//		// proceed with submission
//	}
//
// Values adapts url.Values as a value source and Errors is a ready-made
// Display that collects messages for server-side inspection; both are thin
// wrappers, and callers with a live UI can supply their own collaborators
// instead.
package form
