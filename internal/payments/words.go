package payments

import "strings"

var wordsOnes = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var wordsTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

var wordsThousands = []string{"", "Thousand", "Million", "Billion"}

// numberToWords spells out a whole amount in English, as printed on
// payment slips.
func numberToWords(num int64) string {
	if num == 0 {
		return "Zero"
	}
	if num < 0 {
		return "Negative " + numberToWords(-num)
	}

	var result string
	groupIndex := 0
	for num > 0 {
		group := num % 1000
		if group > 0 {
			part := convertLessThanThousand(int(group))
			if wordsThousands[groupIndex] != "" {
				part += " " + wordsThousands[groupIndex]
			}
			if result != "" {
				result = part + " " + result
			} else {
				result = part
			}
		}
		num /= 1000
		groupIndex++
	}
	return strings.TrimSpace(result)
}

func convertLessThanThousand(n int) string {
	if n == 0 {
		return ""
	}
	if n < 20 {
		return wordsOnes[n]
	}
	if n < 100 {
		out := wordsTens[n/10]
		if n%10 != 0 {
			out += " " + wordsOnes[n%10]
		}
		return out
	}
	out := wordsOnes[n/100] + " Hundred"
	if n%100 != 0 {
		out += " " + convertLessThanThousand(n%100)
	}
	return out
}

// formatUGX renders an amount with thousands separators and the currency
// suffix, matching the slip layout.
func formatUGX(amount float64) string {
	n := int64(amount)
	negative := n < 0
	if negative {
		n = -n
	}
	digits := []byte{}
	if n == 0 {
		digits = append(digits, '0')
	}
	for i := 0; n > 0; i++ {
		if i > 0 && i%3 == 0 {
			digits = append(digits, ',')
		}
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	out := string(digits) + " UGX"
	if negative {
		out = "-" + out
	}
	return out
}
