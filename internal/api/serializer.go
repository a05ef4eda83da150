package api

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/planstat/internal/pkg/constants"
)

// JSONSerializer encodes responses and decodes bodies with sonic.
type JSONSerializer struct {
	api sonic.API
}

func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{api: sonic.ConfigStd}
}

func (s *JSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := s.api.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := s.api.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return fmt.Errorf("%w: invalid json body: %s", constants.ErrBadRequest, err.Error())
	}
	return nil
}
