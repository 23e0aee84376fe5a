package model

import (
	"encoding/json"
	"time"

	"github.com/Astemirdum/library-lending/pkg/validate"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-lending/library/internal/errs"
)

// Date is a calendar date exchanged as dd/mm/yyyy.
type Date struct {
	time.Time `json:",inline"`
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(validate.DateLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(errs.ErrInvalidDate, "%q: expected dd/mm/yyyy", s)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(validate.DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
