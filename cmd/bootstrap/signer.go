package bootstrap

import (
	"vouch-backend/internal/pkg/config"
	"vouch-backend/internal/pkg/signing"

	"go.uber.org/fx"
)

var SignerModule = fx.Module("signer",
	fx.Provide(
		NewSigner,
	),
)

func NewSigner(cfg config.Config) (*signing.Signer, error) {
	return signing.Load(cfg.Signer.PrivateKey)
}
