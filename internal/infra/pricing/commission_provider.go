// Package pricing serves restaurant commission terms from configuration.
package pricing

import (
	"context"

	"dispatch/config"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

type configCommissionProvider struct {
	defaults  entity.Commission
	overrides map[uuid.UUID]entity.Commission
}

// NewCommissionProvider builds a provider from the commission section of the config.
// Override keys must be restaurant UUIDs.
func NewCommissionProvider(cfg *config.Config) (service.CommissionProvider, error) {
	provider := &configCommissionProvider{overrides: make(map[uuid.UUID]entity.Commission)}
	if cfg.Commission == nil {
		return provider, nil
	}

	provider.defaults = entity.Commission{
		Percent: cfg.Commission.DefaultPercent,
		FlatFee: cfg.Commission.DefaultFlatFee,
	}
	if err := validateTerms(provider.defaults); err != nil {
		return nil, errors.Wrap(err, "invalid default commission")
	}

	for key, terms := range cfg.Commission.Overrides {
		restaurantID, err := uuid.Parse(key)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid commission override key %q", key)
		}

		commission := entity.Commission{Percent: terms.Percent, FlatFee: terms.FlatFee}
		if err := validateTerms(commission); err != nil {
			return nil, errors.Wrapf(err, "invalid commission override for %s", key)
		}
		provider.overrides[restaurantID] = commission
	}

	return provider, nil
}

func validateTerms(c entity.Commission) error {
	if c.Percent < 0 || c.Percent > 100 {
		return errors.Errorf("percent %v out of range 0..100", c.Percent)
	}
	if c.FlatFee < 0 {
		return errors.Errorf("flat fee %v is negative", c.FlatFee)
	}

	return nil
}

func (p *configCommissionProvider) CommissionFor(_ context.Context, restaurantID uuid.UUID) (entity.Commission, error) {
	if terms, ok := p.overrides[restaurantID]; ok {
		return terms, nil
	}

	return p.defaults, nil
}
