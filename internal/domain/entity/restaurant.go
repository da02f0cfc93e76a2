package entity

// Restaurant is a partner registered through the public signup form.
// CNPJ is the Brazilian company registry number and is unique per collection.
type Restaurant struct {
	ID           int   `json:"id"`
	CNPJ         Value `json:"cnpj,omitempty"`
	Name         Value `json:"name,omitempty"`
	Phone        Value `json:"phone,omitempty"`
	Email        Value `json:"email,omitempty"`
	Password     Value `json:"password,omitempty"`
	FoodTypes    Value `json:"foodTypes,omitempty"`
	Nickname     Value `json:"nickname,omitempty"`
	Zipcode      Value `json:"zipcode,omitempty"`
	Street       Value `json:"street,omitempty"`
	Neighborhood Value `json:"neighborhood,omitempty"`
	City         Value `json:"city,omitempty"`
	State        Value `json:"state,omitempty"`
	Number       Value `json:"number,omitempty"`
	Extra        Extra `json:"-"`
}

// RecordID implements Record.
func (r Restaurant) RecordID() int { return r.ID }

// MarshalJSON implements json.Marshaler.
func (r Restaurant) MarshalJSON() ([]byte, error) {
	type plain Restaurant

	return marshalWithExtra(plain(r), r.Extra)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Restaurant) UnmarshalJSON(data []byte) error {
	type plain Restaurant
	var decoded plain
	extra, err := unmarshalWithExtra(data, &decoded, "restaurant")
	if err != nil {
		return err
	}
	decoded.Extra = extra
	*r = Restaurant(decoded)

	return nil
}
