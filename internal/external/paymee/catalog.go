package paymee

// Provider error catalog. Codes are compared as strings; PayMee reports
// them as bare integers in the error array. The table is static and
// process-wide, messages are the provider's own pt-BR wording.
var errorMessages = map[string]string{
	"-1":   "Falha em validar as informações fornecidas, verifique o erro no log e tente novamente.",
	"998":  "Não foi possivel recuperar a transação pelo identificador informado.",
	"999":  "A situação da transação não está pendente.",
	"1000": "A transação não está com o status Pago ou não existe.",
	"1001": "O código de referência informado já existe para outra venda.",
}

// genericErrorMessage is the fallback for unmapped codes, unparseable
// bodies and responses with no recognizable shape.
const genericErrorMessage = "Ocorreu um erro, tente novamente ou contate o administrador do site."

// credentialsErrorMessage is returned on HTTP 401/403 regardless of body.
const credentialsErrorMessage = "Falha em suas credenciais da PayMee do Brasil!"

// ErrorMessage resolves a provider error code to its catalog message,
// falling back to the generic one for unknown codes.
func ErrorMessage(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return genericErrorMessage
}
