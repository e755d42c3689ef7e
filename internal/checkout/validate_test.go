package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact() Contact {
	return Contact{
		FullName: "Ján Novák",
		Email:    "jan.novak@example.com",
		Phone:    "+421 918 175 571",
	}
}

func validDelivery() DeliveryRequest {
	return DeliveryRequest{
		Contact:     validContact(),
		Street:      "Hlavná 12",
		City:        "Skalité",
		GDPRConsent: true,
	}
}

func TestValidateDeliveryHappyPath(t *testing.T) {
	errs := Validate(validDelivery())

	assert.Empty(t, errs)
}

func TestValidateReportsAllErrorsAtOnce(t *testing.T) {
	errs := Validate(DeliveryRequest{})

	require.Len(t, errs, 6)
	assert.Equal(t, "Celé meno je povinné", errs["fullName"])
	assert.Equal(t, "Email je povinný", errs["email"])
	assert.Equal(t, "Telefónne číslo je povinné", errs["phone"])
	assert.Equal(t, "Mesto je povinné", errs["city"])
	assert.Equal(t, "Ulica je povinná", errs["street"])
	assert.Equal(t, "Súhlas so spracovaním osobných údajov je povinný", errs["gdprConsent"])
}

func TestValidateFieldFormats(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DeliveryRequest)
		field   string
		message string
	}{
		{
			name:    "whitespace name",
			mutate:  func(r *DeliveryRequest) { r.FullName = "   " },
			field:   "fullName",
			message: "Celé meno je povinné",
		},
		{
			name:    "email without at sign",
			mutate:  func(r *DeliveryRequest) { r.Email = "jan.novak.example.com" },
			field:   "email",
			message: "Neplatný formát emailu",
		},
		{
			name:    "email without tld",
			mutate:  func(r *DeliveryRequest) { r.Email = "jan@example" },
			field:   "email",
			message: "Neplatný formát emailu",
		},
		{
			name:    "phone with letters",
			mutate:  func(r *DeliveryRequest) { r.Phone = "0918abc571" },
			field:   "phone",
			message: "Neplatný formát telefónneho čísla",
		},
		{
			name:    "phone too short",
			mutate:  func(r *DeliveryRequest) { r.Phone = "0918" },
			field:   "phone",
			message: "Neplatný formát telefónneho čísla",
		},
		{
			name:    "whitespace city",
			mutate:  func(r *DeliveryRequest) { r.City = " " },
			field:   "city",
			message: "Mesto je povinné",
		},
		{
			name:    "missing street",
			mutate:  func(r *DeliveryRequest) { r.Street = "" },
			field:   "street",
			message: "Ulica je povinná",
		},
		{
			name:    "consent not given",
			mutate:  func(r *DeliveryRequest) { r.GDPRConsent = false },
			field:   "gdprConsent",
			message: "Súhlas so spracovaním osobných údajov je povinný",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validDelivery()
			tt.mutate(&req)

			errs := Validate(req)

			require.Len(t, errs, 1)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestValidatePickupSkipsAddressFields(t *testing.T) {
	req := PickupRequest{
		Contact:     validContact(),
		GDPRConsent: true,
	}

	assert.Empty(t, Validate(req))
}

func TestValidatePickupStillChecksContact(t *testing.T) {
	errs := Validate(PickupRequest{GDPRConsent: true})

	require.Len(t, errs, 3)
	assert.Contains(t, errs, "fullName")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "phone")
	assert.NotContains(t, errs, "city")
	assert.NotContains(t, errs, "street")
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("jan@example.com"))
	assert.True(t, ValidEmail("  jan@example.com  "))
	assert.False(t, ValidEmail("jan@example"))
	assert.False(t, ValidEmail("jan example@example.com"))
	assert.False(t, ValidEmail("@example.com"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+421918175571"))
	assert.True(t, ValidPhone("0918 175 571"))
	assert.True(t, ValidPhone("(0918) 175-571"))
	assert.False(t, ValidPhone("12345678"))
	assert.False(t, ValidPhone("+421 918 abc"))
	assert.False(t, ValidPhone(""))
}
