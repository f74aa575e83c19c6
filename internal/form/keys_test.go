package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-signup/models"
)

func TestAcceptKey(t *testing.T) {
	tests := []struct {
		name  string
		field models.Field
		key   string
		want  bool
	}{
		{"letter", models.FieldFirstName, "a", true},
		{"upper letter", models.FieldLastName, "Z", true},
		{"accented letter", models.FieldCity, "é", true},
		{"space", models.FieldCity, " ", true},
		{"hyphen", models.FieldLastName, "-", true},
		{"digit rejected", models.FieldFirstName, "1", false},
		{"bang rejected", models.FieldFirstName, "!", false},
		{"lt rejected", models.FieldLastName, "<", false},
		{"apostrophe rejected", models.FieldLastName, "'", false},
		{"backspace passes", models.FieldFirstName, "backspace", true},
		{"left passes", models.FieldCity, "left", true},
		{"tab passes", models.FieldCity, "tab", true},
		{"digit in postal code", models.FieldPostalCode, "1", true},
		{"at in email", models.FieldEmail, "@", true},
		{"anything in birth date", models.FieldBirthDate, "!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AcceptKey(tt.field, tt.key))
		})
	}
}
