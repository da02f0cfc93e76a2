package entity

import "maps"

// Order is created by the customer-facing app; this backend only reads orders and changes their status.
// Every field other than id and status is kept verbatim in Extra.
type Order struct {
	ID     int   `json:"id"`
	Status Value `json:"status,omitempty"`
	Extra  Extra `json:"-"`
}

// RecordID implements Record.
func (o Order) RecordID() int { return o.ID }

// MarshalJSON writes id and status alongside the preserved fields.
func (o Order) MarshalJSON() ([]byte, error) {
	type plain Order

	return marshalWithExtra(plain(o), o.Extra)
}

// UnmarshalJSON splits id and status out of an arbitrary order object.
func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	var decoded plain
	extra, err := unmarshalWithExtra(data, &decoded, "order")
	if err != nil {
		return err
	}
	decoded.Extra = extra
	*o = Order(decoded)

	return nil
}

// WithStatus returns a copy of the order carrying the new status.
func (o Order) WithStatus(status Value) Order {
	o.Extra = maps.Clone(o.Extra)
	o.Status = status

	return o
}
