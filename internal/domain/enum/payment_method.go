package enum

import (
	"database/sql/driver"
	"strings"
)

// PaymentMethod represents how an order was paid
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "Cash"
	PaymentMethodCard   PaymentMethod = "Card"
	PaymentMethodUPI    PaymentMethod = "UPI"
	PaymentMethodSwiggy PaymentMethod = "Swiggy"
	PaymentMethodZomato PaymentMethod = "Zomato"
	PaymentMethodOther  PaymentMethod = "Other"
)

// PaymentMethods lists every accepted payment method
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCard,
	PaymentMethodUPI,
	PaymentMethodSwiggy,
	PaymentMethodZomato,
	PaymentMethodOther,
}

func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid reports whether the method is one of the accepted values
func (m PaymentMethod) IsValid() bool {
	for _, v := range PaymentMethods {
		if m == v {
			return true
		}
	}
	return false
}

// IsCash reports whether the method is a cash payment, case-insensitively
func (m PaymentMethod) IsCash() bool {
	return strings.EqualFold(string(m), string(PaymentMethodCash))
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*m = PaymentMethod(v)
	case []byte:
		*m = PaymentMethod(v)
	}
	return nil
}
