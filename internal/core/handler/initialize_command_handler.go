package handler

import (
	"errors"
	"fmt"
	"io"

	"homefolder/internal/core"
	"homefolder/internal/core/domain"
)

var ErrConfigExists = errors.New("config file already exists")

type InitializeCommandHandler struct {
	configRepository core.ConfigRepository
}

func ProvideInitializeCommandHandler(
	configRepository core.ConfigRepository,
) InitializeCommandHandler {
	return InitializeCommandHandler{
		configRepository: configRepository,
	}
}

func (h *InitializeCommandHandler) Handle(out io.Writer) error {
	configExists, err := h.configRepository.ConfigExists()
	if err != nil {
		return err
	}
	path, err := h.configRepository.ConfigPath()
	if err != nil {
		return err
	}
	if configExists {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	config := domain.CreateDefaultConfig()
	if err := h.configRepository.SaveConfig(&config); err != nil {
		return err
	}

	fmt.Fprintf(out, "Created %s\n", path)
	return nil
}
