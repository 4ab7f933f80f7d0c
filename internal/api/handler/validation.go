package handler

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/wilfreed8/EtuManager-sub001/internal/dto"
)

var registerOnce sync.Once

// RegisterValidators 向 gin 的 validator 注册结构体级校验规则（只执行一次）
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterStructValidation(validateGradingWeights, dto.UpdateGradingConfigRequest{})
	})
}

// validateGradingWeights 三项权重同时提供时总和必须大于 0；
// 部分提供的情况由 Service 合并原配置后再校验
func validateGradingWeights(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.UpdateGradingConfigRequest)
	if req.Interro == nil || req.Devoir == nil || req.Compo == nil {
		return
	}
	if *req.Interro+*req.Devoir+*req.Compo <= 0 {
		sl.ReportError(req.Compo, "compo", "Compo", "weights_sum", "")
	}
}
