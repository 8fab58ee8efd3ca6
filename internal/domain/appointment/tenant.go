package appointment

import "github.com/shopspring/decimal"

type BusinessType string

const (
	BusinessBarbershop BusinessType = "BARBERSHOP"
	BusinessSalon      BusinessType = "SALON"
	BusinessClinic     BusinessType = "CLINIC"
	BusinessOther      BusinessType = "OTHER"
)

func (t BusinessType) Valid() bool {
	switch t {
	case BusinessBarbershop, BusinessSalon, BusinessClinic, BusinessOther:
		return true
	}
	return false
}

type Business struct {
	ID     uint
	Name   string
	Type   BusinessType
	Active bool
}

// Staff is a user account employed by a business. UserID is the principal
// that authenticates as this staff member.
type Staff struct {
	ID         uint
	PublicName string
	BusinessID uint
	UserID     uint
	Active     bool
}

// Service is a bookable entry of a business catalog.
type Service struct {
	ID              uint
	Name            string
	DurationMinutes int
	Price           decimal.Decimal
	BusinessID      uint
	Active          bool
}

func (s Service) Validate() error {
	if s.DurationMinutes <= 0 {
		return ErrValidation("duration_must_be_positive")
	}
	if s.Price.IsNegative() {
		return ErrValidation("price_must_not_be_negative")
	}
	return nil
}
