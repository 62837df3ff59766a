package checkout

// ResultKind discriminates checkout outcomes. Exactly one variant's fields
// are populated per result.
type ResultKind string

const (
	KindSuccess         ResultKind = "success"
	KindCredentialError ResultKind = "credential_error"
	KindAPIError        ResultKind = "api_error"
	KindTransportError  ResultKind = "transport_error"
)

// Result is the normalized outcome of a checkout attempt.
type Result struct {
	Kind ResultKind

	// Populated only for KindSuccess.
	RedirectURL string
	Token       string

	// Populated for every failure kind; KindAPIError may carry several.
	Messages []string
}

// Success builds a success result with the buyer redirect URL and token.
func Success(redirectURL, token string) Result {
	return Result{Kind: KindSuccess, RedirectURL: redirectURL, Token: token}
}

// CredentialFailure builds a credential-rejection result.
func CredentialFailure(message string) Result {
	return Result{Kind: KindCredentialError, Messages: []string{message}}
}

// APIFailure builds a business-rejection result with per-code messages.
func APIFailure(messages ...string) Result {
	return Result{Kind: KindAPIError, Messages: messages}
}

// TransportFailure builds a network-level failure result.
func TransportFailure(message string) Result {
	return Result{Kind: KindTransportError, Messages: []string{message}}
}

// OK reports whether the attempt produced a payable checkout.
func (r Result) OK() bool {
	return r.Kind == KindSuccess
}
