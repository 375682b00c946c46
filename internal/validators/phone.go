package validators

import "strings"

// NormalizePhone reduz o telefone a "+" e dígitos, para que o mesmo
// número digitado com máscaras diferentes resolva o mesmo cliente.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
