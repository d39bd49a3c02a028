package schema

import (
	"strconv"
	"strings"

	"acme_dashboard/internal/model"
)

// Kind determines how a field's raw string value is coerced.
type Kind int

const (
	KindString Kind = iota // required, non-empty
	KindNumber             // coerced to float64, checked against GreaterThan
	KindEnum               // must be one of Enum
)

const requiredMessage = "Required"

// Field is one row of a declarative constraint table: name, coercion
// kind, constraint parameters and the fixed message reported when the
// constraint fails.
type Field struct {
	Name        string
	Kind        Kind
	Enum        []string
	GreaterThan float64
	Message     string
}

// Schema is an ordered set of field rules for one entity.
type Schema struct {
	Fields []Field
}

// Values holds the coerced output of a successful validation.
type Values map[string]any

// String returns the coerced string value of a field, or "".
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Number returns the coerced numeric value of a field, or 0.
func (v Values) Number(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

// FieldErrors maps field name to the human-readable errors reported for it.
type FieldErrors map[string][]string

// Validate coerces and constrains a flat form field set against the
// schema. It is total: malformed input is a normal failure outcome, never
// a panic, and no I/O happens here. On failure the returned Values is nil
// and FieldErrors is non-empty; on success FieldErrors is nil.
func (s Schema) Validate(form map[string]string) (Values, FieldErrors) {
	values := make(Values, len(s.Fields))
	errs := make(FieldErrors)

	for _, f := range s.Fields {
		raw, present := form[f.Name]

		switch f.Kind {
		case KindString:
			if !present || raw == "" {
				errs[f.Name] = append(errs[f.Name], f.failureMessage())
				continue
			}
			values[f.Name] = raw

		case KindNumber:
			// Mirrors coerce-then-compare: a missing or non-numeric value
			// fails the bound check with the same message as a bad number.
			n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if !present || err != nil || !(n > f.GreaterThan) {
				errs[f.Name] = append(errs[f.Name], f.failureMessage())
				continue
			}
			values[f.Name] = n

		case KindEnum:
			ok := false
			for _, allowed := range f.Enum {
				if raw == allowed {
					ok = true
					break
				}
			}
			if !present || !ok {
				errs[f.Name] = append(errs[f.Name], f.failureMessage())
				continue
			}
			values[f.Name] = raw
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}

func (f Field) failureMessage() string {
	if f.Message != "" {
		return f.Message
	}
	return requiredMessage
}

// Invoice is the constraint table for create/update-invoice submissions.
var Invoice = Schema{
	Fields: []Field{
		{Name: "customerId", Kind: KindString},
		{Name: "amount", Kind: KindNumber, GreaterThan: 0, Message: "Please enter an amount greater than $0."},
		{Name: "status", Kind: KindEnum, Enum: model.InvoiceStatuses, Message: "Please select an invoice status."},
	},
}

// User is the constraint table for create-user submissions.
var User = Schema{
	Fields: []Field{
		{Name: "firstname", Kind: KindString},
		{Name: "lastname", Kind: KindString},
		{Name: "profile", Kind: KindEnum, Enum: model.Profiles, Message: "Please select a profile."},
		{Name: "email", Kind: KindString},
		{Name: "password", Kind: KindString},
	},
}
