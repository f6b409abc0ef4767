package forecast

import "errors"

// ErrBadProperty indicates non-positive price or rent.
var ErrBadProperty = errors.New("price and rent must be positive")

// ErrBadVacancy indicates a vacancy rate outside [0, 1).
var ErrBadVacancy = errors.New("vacancy rate must be in [0, 1)")

// Property describes one rental candidate. All amounts are annual dollars
// except Price and DownPayment.
type Property struct {
	Price       float64
	DownPayment float64 // 0 means all-cash; cash-on-cash then equals cap rate
	AnnualRent  float64
	Expenses    float64 // taxes, insurance, maintenance, management
	Vacancy     float64 // expected vacancy fraction, e.g. 0.05
}

// RentalAnalysis is the dashboard row for one property.
type RentalAnalysis struct {
	EffectiveRent float64 // rent after vacancy
	NOI           float64 // net operating income
	CapRate       float64 // NOI / price
	GrossYield    float64 // raw rent / price
	CashOnCash    float64 // NOI / invested cash
}

// AnalyzeRental computes the standard ratios for a property.
func AnalyzeRental(p Property) (RentalAnalysis, error) {
	if p.Price <= 0 || p.AnnualRent <= 0 {
		return RentalAnalysis{}, ErrBadProperty
	}
	if p.Vacancy < 0 || p.Vacancy >= 1 {
		return RentalAnalysis{}, ErrBadVacancy
	}

	effective := p.AnnualRent * (1 - p.Vacancy)
	noi := effective - p.Expenses

	invested := p.DownPayment
	if invested <= 0 {
		invested = p.Price
	}

	return RentalAnalysis{
		EffectiveRent: effective,
		NOI:           noi,
		CapRate:       noi / p.Price,
		GrossYield:    p.AnnualRent / p.Price,
		CashOnCash:    noi / invested,
	}, nil
}
