package calculator

import (
	"fmt"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"
	"ocular/model"
)

// 按组织顺序依次计算，上一层的输出作为下一层的入射辐照度
type Executor struct {
	c   Calculator
	out io.Writer
}

func NewExecutor(c Calculator, out io.Writer) *Executor {
	return &Executor{
		c:   c,
		out: out,
	}
}

func (e *Executor) Run(organs []model.TissueLayer) ([]model.StageResult, error) {
	if len(organs) == 0 {
		return nil, nil
	}

	// 初始化为角膜的入射辐照度
	current := organs[0].I0
	if _, err := fmt.Fprintf(e.out, "初始入射辐照度（角膜）：%s mW/cm²\n", strconv.FormatFloat(current, 'f', -1, 64)); err != nil {
		return nil, err
	}

	results := make([]model.StageResult, 0, len(organs))
	for _, organ := range organs {
		attenuated, err := e.c.Attenuate(current, organ.MuA, organ.MuS, organ.D, organ.G)
		if err != nil {
			return results, fmt.Errorf("%s: %w", organ.Name, err)
		}
		s, _ := e.c.ScatteringIntegral(organ.G)

		result := model.StageResult{
			Layer:      organ,
			Incident:   current,
			Irradiance: attenuated,
			Scattering: s,
		}
		results = append(results, result)
		log.WithFields(log.Fields{
			"layer":         organ.Name,
			"incident":      current,
			"irradiance":    attenuated,
			"scattering":    s,
			"transmittance": result.Transmittance(),
		}).Info("组织衰减计算完成")

		if _, err := fmt.Fprintf(e.out, "经过%s后的衰减辐照度为: %.4f mW/cm²\n", organ.Name, attenuated); err != nil {
			return results, err
		}

		current = attenuated
	}
	return results, nil
}
