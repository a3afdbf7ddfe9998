package server

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	maxUsernameLength = 64
	maxCategoryLength = 64

	defaultAppLimit  = 50
	maxAppLimit      = 100
	defaultPostLimit = 20
	maxPostLimit     = 100
	defaultBattleLim = 20
	maxBattleLimit   = 100
)

var validatorOnce sync.Once

func registerValidators() {
	validatorOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return validUsername(fl.Field().String())
		})
		_ = engine.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return validCategory(fl.Field().String())
		})
	})
}

func validUsername(name string) bool {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 || len(trimmed) > maxUsernameLength {
		return false
	}
	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}

func validCategory(category string) bool {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" || len(trimmed) > maxCategoryLength {
		return false
	}
	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == ' ' || r == '-' || r == '_' || r == '&' || r == '/':
		default:
			return false
		}
	}
	return true
}
