package dto

type CreateAddressRequest struct {
	Line1     string   `json:"line1"`
	Line2     string   `json:"line2"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Pincode   string   `json:"pincode"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	IsDefault bool     `json:"is_default"`
}
