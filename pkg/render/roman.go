package render

import "strings"

var (
	romanValues  = []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	romanSymbols = []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
)

// ToRoman конвертирует целое число в римское. Non-positive numbers give "".
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	var roman strings.Builder
	for i := range romanValues {
		for num >= romanValues[i] {
			roman.WriteString(romanSymbols[i])
			num -= romanValues[i]
		}
	}
	return roman.String()
}
