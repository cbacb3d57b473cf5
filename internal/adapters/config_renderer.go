package adapters

import (
	"encoding/json"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"forgeconf/internal/ports"
	"forgeconf/internal/types"
)

type ConfigRendererAdapter struct{}

func NewConfigRendererAdapter() ConfigRendererAdapter {
	return ConfigRendererAdapter{}
}

func (a ConfigRendererAdapter) Render(config types.ForgeConfig, format types.OutputFormat) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case types.OutputFormatJSON, "":
		data, err = json.MarshalIndent(config, "", "  ")
	case types.OutputFormatYAML:
		data, err = yaml.Marshal(config)
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format: %s", format))
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render packaging config").
			WithCause(err)
	}
	return data, nil
}

var _ ports.ConfigRendererPort = ConfigRendererAdapter{}
