package domain

// ExchangeRate is a currency conversion rate published for a date.
type ExchangeRate struct {
	Base  string  `json:"base"`
	Quote string  `json:"quote"`
	Rate  float64 `json:"rate"`
	Date  string  `json:"date"`
}

// Convert converts an amount in Base to Quote.
func (r ExchangeRate) Convert(amount float64) float64 {
	return amount * r.Rate
}
