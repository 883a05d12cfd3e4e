package cart

// Fixed coupon table: code -> percentage off the subtotal. Matching is
// case-sensitive. No expiry or per-user limits are modeled.
var coupons = map[string]int{
	"DAIRY10":  10,
	"CHEESE20": 20,
	"MILK15":   15,
	"SUMMER25": 25,
}

// LookupCoupon returns the discount percentage for a code.
func LookupCoupon(code string) (int, bool) {
	pct, ok := coupons[code]
	return pct, ok
}
