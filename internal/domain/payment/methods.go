package payment

// unknownName is reported for payment types and methods the provider
// added after this catalog was written.
const unknownName = "Unknown"

var paymentTypes = map[int]string{
	1: "Bank Transfer",
	2: "Cash Payment",
}

var paymentMethods = map[int]string{
	101: "Bank Transfer Banco do Brasil",
	102: "Bank Transfer Bradesco",
	103: "Bank Transfer Itaú-Unibanco",
	104: "Bank Transfer Santander Brasil",
	105: "Cash Payment Itaú-Unibanco",
}

// PaymentTypeName resolves a provider payment type number to its display name.
func PaymentTypeName(code int) string {
	if name, ok := paymentTypes[code]; ok {
		return name
	}
	return unknownName
}

// PaymentMethodName resolves a provider payment method number to its display name.
func PaymentMethodName(code int) string {
	if name, ok := paymentMethods[code]; ok {
		return name
	}
	return unknownName
}
