package transaction

import (
	"github.com/danielgtaylor/huma/v2"

	// Error responses use the {"message": ...} envelope.
	_ "github.com/carson-networks/session-ledger/internal/apierror"
	"github.com/carson-networks/session-ledger/internal/service"
)

// RegisterAll registers the transaction route group. The summary route is
// registered before /{id} so routers that match in order see it first.
func RegisterAll(api huma.API, svc *service.TransactionService, secureCookies bool) {
	NewListTransactionsHandler(svc).Register(api)
	NewSummarizeTransactionsHandler(svc).Register(api)
	NewGetTransactionHandler(svc).Register(api)
	NewCreateTransactionHandler(svc, secureCookies).Register(api)
}

// NewAPIConfig is huma's default config without the $schema link it adds to
// response bodies, so bodies are exactly the documented shapes.
func NewAPIConfig(title, version string) huma.Config {
	config := huma.DefaultConfig(title, version)
	config.CreateHooks = nil
	return config
}
