package banks

import (
	"log"
	"os"
	"sort"

	"pagove/internal/domain/entities"
	"pagove/internal/usecase/interfaces"
)

// Registry maps bank codes to validator instances.
//
// One long-lived instance is constructed at startup and injected into the
// use cases; adding a bank is registering another validator under its code.

type Registry struct {
	validators map[string]interfaces.IBankValidator
}

var _ interfaces.IBankValidatorRegistry = (*Registry)(nil)

func NewRegistry(validators ...interfaces.IBankValidator) *Registry {
	r := &Registry{validators: make(map[string]interfaces.IBankValidator, len(validators))}
	for _, v := range validators {
		r.Register(v)
	}
	return r
}

func (r *Registry) Register(v interfaces.IBankValidator) {
	info := v.Describe()
	r.validators[info.Code] = v
}

func (r *Registry) GetValidator(bankCode string) (interfaces.IBankValidator, error) {
	v, ok := r.validators[bankCode]
	if !ok {
		return nil, interfaces.ErrUnsupportedBank
	}
	return v, nil
}

func (r *Registry) ListBanks() []entities.BankInfo {
	infos := make([]entities.BankInfo, 0, len(r.validators))
	for _, v := range r.validators {
		infos = append(infos, v.Describe())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Code < infos[j].Code })
	return infos
}

// NewDefaultRegistry builds the registry for the reference deployment: mock
// validators for the supported Venezuelan banks plus, when configured, the
// Mercado Pago backed wallet validator.
func NewDefaultRegistry() *Registry {
	transferMethods := []entities.PaymentMethod{entities.PaymentMethodTransfer, entities.PaymentMethodPagoMovil}

	registry := NewRegistry(
		NewMockBankValidator("0102", "Banco de Venezuela", transferMethods, 0.90),
		NewMockBankValidator("0105", "Banco Mercantil", transferMethods, 0.85),
		NewMockBankValidator("0108", "BBVA Provincial", transferMethods, 0.80),
		NewMockBankValidator("0134", "Banesco", append(transferMethods, entities.PaymentMethodZelle), 0.88),
		NewMockBankValidator("0172", "Bancamiga", transferMethods, 0.75),
		NewMockBankValidator("0901", "Pasarela Cripto", []entities.PaymentMethod{entities.PaymentMethodBitcoin}, 0.70),
	)

	walletValidator, err := NewWalletValidator(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("[banks][registry] wallet validator not configured: %v", err)
	} else {
		registry.Register(walletValidator)
	}

	return registry
}
