package entity

// Product belongs to the restaurant menu. Image is null when none was sent;
// Available is absent unless the client set it.
type Product struct {
	ID          int   `json:"id"`
	Name        Value `json:"name,omitempty"`
	Image       Value `json:"image,omitempty"`
	Description Value `json:"description,omitempty"`
	Price       Value `json:"price,omitempty"`
	FoodTypes   Value `json:"foodTypes,omitempty"`
	Available   Value `json:"available,omitempty"`
	Extra       Extra `json:"-"`
}

// RecordID implements Record.
func (p Product) RecordID() int { return p.ID }

// MarshalJSON implements json.Marshaler.
func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product

	return marshalWithExtra(plain(p), p.Extra)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	var decoded plain
	extra, err := unmarshalWithExtra(data, &decoded, "product")
	if err != nil {
		return err
	}
	decoded.Extra = extra
	*p = Product(decoded)

	return nil
}
