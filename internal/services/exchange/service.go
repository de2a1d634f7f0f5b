package exchange

import (
	"go.uber.org/zap"

	"numconv/internal/currency"
	"numconv/internal/domain"
)

// Service converts amounts through a RateTable.
type Service struct {
	rates *currency.Table
	log   *zap.Logger
}

var _ domain.CurrencyService = (*Service)(nil)

func New(rates *currency.Table, log *zap.Logger) *Service {
	if rates == nil {
		rates = currency.DefaultTable()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{rates: rates, log: log}
}

func (s *Service) Convert(amount string, from, to domain.CurrencyCode) (domain.Quote, error) {
	q, err := currency.Convert(s.rates, amount, from, to)
	if err != nil {
		s.log.Debug("currency conversion failed",
			zap.String("from", from.String()),
			zap.String("to", to.String()),
			zap.Error(err))
		return domain.Quote{}, err
	}
	s.log.Debug("currency converted",
		zap.String("from", q.From.String()),
		zap.String("to", q.To.String()),
		zap.String("result", q.Result))
	return q, nil
}

// List returns every currency in code order.
func (s *Service) List() []domain.Currency {
	return s.rates.Rows()
}
