package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsVoucherCode checks the Luhn digit of a prepaid top-up voucher code.
func IsVoucherCode(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
