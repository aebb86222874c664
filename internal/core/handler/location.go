package handler

import (
	"homefolder/internal/core"
	"homefolder/internal/core/domain"
)

// resolveLocation completes location from the configured defaults.
func resolveLocation(
	configRepository core.ConfigRepository,
	location domain.Location,
	requireFile bool,
) (domain.Location, *domain.Config, error) {
	config, err := configRepository.LoadConfig()
	if err != nil {
		return domain.Location{}, nil, err
	}
	resolved, err := config.Resolve(location)
	if err != nil {
		return domain.Location{}, nil, err
	}
	if requireFile {
		if err := resolved.RequireFile(); err != nil {
			return domain.Location{}, nil, err
		}
	}
	return resolved, config, nil
}
