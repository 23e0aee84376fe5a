package validate_test

import (
	"testing"

	"github.com/Astemirdum/library-lending/pkg/validate"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	type req struct {
		UserID string `validate:"required"`
		Date   string `validate:"omitempty,date"`
	}
	tests := []struct {
		name    string
		in      req
		wantErr bool
	}{
		{name: "ok", in: req{UserID: "U1", Date: "20/01/2024"}},
		{name: "ok. no date", in: req{UserID: "U1"}},
		{name: "err. iso date", in: req{UserID: "U1", Date: "2024-01-20"}, wantErr: true},
		{name: "err. bad month", in: req{UserID: "U1", Date: "20/13/2024"}, wantErr: true},
		{name: "err. user required", in: req{Date: "20/01/2024"}, wantErr: true},
	}
	v := validate.NewCustomValidator()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
