package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInvoiceForm() map[string]string {
	return map[string]string{
		"customerId": "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		"amount":     "12.50",
		"status":     "pending",
	}
}

func TestInvoiceSchema_Valid(t *testing.T) {
	values, errs := Invoice.Validate(validInvoiceForm())

	assert.Nil(t, errs)
	assert.Equal(t, "3958dc9e-712f-4377-85e9-fec4b6a6442a", values.String("customerId"))
	assert.Equal(t, 12.50, values.Number("amount"))
	assert.Equal(t, "pending", values.String("status"))
}

func TestInvoiceSchema_AmountNotGreaterThanZero(t *testing.T) {
	for _, amount := range []string{"0", "-5", "-0.01", "0.00"} {
		form := validInvoiceForm()
		form["amount"] = amount

		values, errs := Invoice.Validate(form)

		assert.Nil(t, values, "amount %q must not validate", amount)
		assert.Equal(t, []string{"Please enter an amount greater than $0."}, errs["amount"])
	}
}

func TestInvoiceSchema_AmountNotANumber(t *testing.T) {
	form := validInvoiceForm()
	form["amount"] = "twelve"

	values, errs := Invoice.Validate(form)

	assert.Nil(t, values)
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, errs["amount"])
}

func TestInvoiceSchema_AmountMissing(t *testing.T) {
	form := validInvoiceForm()
	delete(form, "amount")

	_, errs := Invoice.Validate(form)

	assert.Equal(t, []string{"Please enter an amount greater than $0."}, errs["amount"])
}

func TestInvoiceSchema_InvalidStatus(t *testing.T) {
	for _, status := range []string{"", "draft", "PAID", "cancelled"} {
		form := validInvoiceForm()
		form["status"] = status

		_, errs := Invoice.Validate(form)

		assert.Equal(t, []string{"Please select an invoice status."}, errs["status"], "status %q", status)
	}
}

func TestInvoiceSchema_MissingCustomer(t *testing.T) {
	form := validInvoiceForm()
	form["customerId"] = ""

	_, errs := Invoice.Validate(form)

	assert.Equal(t, []string{"Required"}, errs["customerId"])
}

func TestInvoiceSchema_CollectsAllFieldErrors(t *testing.T) {
	_, errs := Invoice.Validate(map[string]string{})

	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "customerId")
	assert.Contains(t, errs, "amount")
	assert.Contains(t, errs, "status")
}

func validUserForm() map[string]string {
	return map[string]string{
		"firstname": "Ada",
		"lastname":  "Lovelace",
		"profile":   "manager",
		"email":     "ada@example.com",
		"password":  "s3cret",
	}
}

func TestUserSchema_Valid(t *testing.T) {
	values, errs := User.Validate(validUserForm())

	assert.Nil(t, errs)
	assert.Equal(t, "Ada", values.String("firstname"))
	assert.Equal(t, "manager", values.String("profile"))
}

func TestUserSchema_AllProfilesAccepted(t *testing.T) {
	for _, profile := range []string{"admin", "subcontractor", "customer", "builder", "vendor", "employee", "manager"} {
		form := validUserForm()
		form["profile"] = profile

		_, errs := User.Validate(form)

		assert.Nil(t, errs, "profile %q must validate", profile)
	}
}

func TestUserSchema_InvalidProfile(t *testing.T) {
	for _, profile := range []string{"", "superuser", "Admin"} {
		form := validUserForm()
		form["profile"] = profile

		_, errs := User.Validate(form)

		assert.Equal(t, []string{"Please select a profile."}, errs["profile"], "profile %q", profile)
	}
}

func TestUserSchema_RequiredStrings(t *testing.T) {
	for _, field := range []string{"firstname", "lastname", "email", "password"} {
		form := validUserForm()
		form[field] = ""

		_, errs := User.Validate(form)

		assert.Equal(t, []string{"Required"}, errs[field], "field %q", field)
	}
}
