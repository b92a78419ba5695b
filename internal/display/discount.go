package display

// ApplyDiscount возвращает цену со скидкой discountPercentage процентов.
// При нулевой или отрицательной скидке цена не меняется, результат не бывает меньше нуля.
func ApplyDiscount(price, discountPercentage float64) float64 {
	if discountPercentage <= 0 {
		return price
	}
	discounted := price - price*discountPercentage/100
	if discounted < 0 {
		return 0
	}
	return discounted
}
