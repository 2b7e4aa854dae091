package controller

import "context"

type HealthStatus string

const (
	HealthUp   HealthStatus = "UP"
	HealthDown HealthStatus = "DOWN"
)

// Health is an up/down signal with a static detail describing the custom resource definition.
type Health struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// Health reports whether the configured kind is among the registered custom resource kinds.
func (s *Service) Health(ctx context.Context) Health {
	registered, err := s.repo.IsKindRegisteredQuery(ctx, s.kindName)
	if err != nil {
		s.logger.WarnContext(ctx, "check kind registration failed", "kind", s.kindName, "reason", err)
	}

	if err != nil || !registered {
		return Health{
			Status:  HealthDown,
			Details: map[string]string{healthDetailKey: healthDetailNotAvailable},
		}
	}

	return Health{
		Status:  HealthUp,
		Details: map[string]string{healthDetailKey: healthDetailAvailable},
	}
}
