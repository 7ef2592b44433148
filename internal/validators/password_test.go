package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid", password: "ValidPass123!", wantErr: nil},
		{name: "minimal valid", password: "Aa345678", wantErr: nil},
		{name: "too short", password: "weak", wantErr: ErrPasswordTooShort},
		{name: "seven chars", password: "Aa34567", wantErr: ErrPasswordTooShort},
		{name: "no digit", password: "NoDigitsHere", wantErr: ErrPasswordNoDigit},
		{name: "no lowercase", password: "UPPER123ONLY", wantErr: ErrPasswordNoLower},
		{name: "no uppercase", password: "lower123only", wantErr: ErrPasswordNoUpper},
		{name: "empty", password: "", wantErr: ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Password(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
