package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"user@example.com", false},
		{"first.last+tag@sub.example.co", false},
		{"", true},
		{"no-at-sign", true},
		{"missing@tld", true},
		{"spaces in@example.com", true},
	}
	for _, tt := range tests {
		err := ValidateEmail(tt.email)
		if tt.wantErr {
			assert.Error(t, err, tt.email)
		} else {
			assert.NoError(t, err, tt.email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Str0ng!Passw0rd", false},
		{"too short", "Sh0rt!", true},
		{"no uppercase", "weak!passw0rd", true},
		{"no lowercase", "WEAK!PASSW0RD", true},
		{"no digit", "Weak!Password", true},
		{"no special", "WeakPassw0rdd", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Ana"))
	assert.Error(t, ValidateName("x"))
	assert.Error(t, ValidateName(""))
}
