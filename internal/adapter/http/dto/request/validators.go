package request

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"orcamentos_rtv/internal/domain/entities"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by this package to
// gin's validator. It is safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("budget_category", func(fl validator.FieldLevel) bool {
			return entities.BudgetCategory(fl.Field().String()).IsValid()
		})
	})
}
