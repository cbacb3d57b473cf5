package adapters

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/viper"

	"forgeconf/internal/core"
	"forgeconf/internal/ports"
	"forgeconf/internal/types"
)

type PackageJSONAdapter struct{}

func NewPackageJSONAdapter() PackageJSONAdapter {
	return PackageJSONAdapter{}
}

func (a PackageJSONAdapter) LoadMetadata(path string) (types.PackageMetadata, error) {
	if strings.TrimSpace(path) == "" {
		return types.PackageMetadata{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package.json path is empty")
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return types.PackageMetadata{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read package.json").
			WithCause(err)
	}
	author, err := parseAuthor(v.Get("author"))
	if err != nil {
		return types.PackageMetadata{}, err
	}
	return types.PackageMetadata{
		Name:        v.GetString("name"),
		ProductName: v.GetString("productName"),
		Version:     v.GetString("version"),
		Author:      author,
	}, nil
}

func parseAuthor(raw any) (*types.Person, error) {
	switch value := raw.(type) {
	case nil:
		return nil, nil
	case string:
		person := core.ParsePerson(value)
		return &person, nil
	case map[string]any:
		person := types.Person{
			Name:  stringField(value, "name"),
			Email: stringField(value, "email"),
			URL:   stringField(value, "url"),
		}
		return &person, nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported package.json author type %T", raw))
	}
}

func stringField(values map[string]any, key string) string {
	if value, ok := values[key].(string); ok {
		return value
	}
	return ""
}

var _ ports.PackageMetadataPort = PackageJSONAdapter{}
