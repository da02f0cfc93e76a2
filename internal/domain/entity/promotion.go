package entity

type Promotion struct {
	ID         int   `json:"id"`
	Name       Value `json:"name,omitempty"`
	Image      Value `json:"image,omitempty"`
	Percentage Value `json:"percentage,omitempty"`
	Start      Value `json:"start,omitempty"`
	End        Value `json:"end,omitempty"`
	Extra      Extra `json:"-"`
}

// RecordID implements Record.
func (p Promotion) RecordID() int { return p.ID }

// MarshalJSON implements json.Marshaler.
func (p Promotion) MarshalJSON() ([]byte, error) {
	type plain Promotion

	return marshalWithExtra(plain(p), p.Extra)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Promotion) UnmarshalJSON(data []byte) error {
	type plain Promotion
	var decoded plain
	extra, err := unmarshalWithExtra(data, &decoded, "promotion")
	if err != nil {
		return err
	}
	decoded.Extra = extra
	*p = Promotion(decoded)

	return nil
}
