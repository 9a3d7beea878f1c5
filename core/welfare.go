package core

// TotalWelfare sums the valuations of a set of bids using the value type's
// addition. The empty set sums to the zero value of V. Overflow behavior is
// that of the value type itself; nothing is converted or truncated here.
func TotalWelfare[ID comparable, G comparable, V Value[V]](bids []Bid[ID, G, V]) V {
	var total V
	for _, b := range bids {
		total = total.Add(b.Valuation())
	}
	return total
}
