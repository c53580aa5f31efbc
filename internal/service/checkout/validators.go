package checkout

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if len(phone) < 2 || !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

// isValidPayment способ оплаты это свободная метка, не проверяем ничего
// кроме непустоты
func isValidPayment(payment string) bool {
	return strings.TrimSpace(payment) != ""
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}
