package converter

import (
	"go.uber.org/zap"

	"numconv/internal/domain"
	"numconv/internal/numeral"
)

// Service wraps the numeral engine with a fixed echo policy.
type Service struct {
	opts numeral.Options
	log  *zap.Logger
}

var _ domain.NumeralService = (*Service)(nil)

func New(policy domain.EchoPolicy, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{opts: numeral.Options{Echo: policy}, log: log}
}

func (s *Service) Sanitize(text string, base domain.NumeralBase) string {
	return numeral.Sanitize(text, base)
}

// Convert returns the tagged error from the engine unchanged.
func (s *Service) Convert(text string, base domain.NumeralBase) (domain.Conversion, error) {
	c, err := s.opts.Convert(text, base)
	if err != nil {
		s.log.Debug("conversion failed",
			zap.String("base", base.String()),
			zap.String("kind", numeral.Kind(err)),
			zap.Error(err))
		return c, err
	}
	s.log.Debug("converted",
		zap.String("base", base.String()),
		zap.String("decimal", c.Decimal))
	return c, nil
}

func (s *Service) Display(text string, base domain.NumeralBase) domain.Conversion {
	c, err := s.Convert(text, base)
	if err != nil {
		return domain.Failed()
	}
	return c
}
