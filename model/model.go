package model

// 光学参数说明
// 1. MuA 吸收系数，单位 mm^-1
// 2. MuS 散射系数，单位 mm^-1
// 3. D 组织厚度，单位 mm
// 4. G Henyey-Greenstein 相位函数的各向异性因子，取值 [-1, 1]
// 辐照度单位 mW/cm²

// 组织层参数
type TissueLayer struct {
	Name string  `json:"name"`
	I0   float64 `json:"i0"`   // 入射辐照度，仅第一层有效
	MuA  float64 `json:"mu_a"` // 吸收系数
	MuS  float64 `json:"mu_s"` // 散射系数
	D    float64 `json:"d"`    // 厚度
	G    float64 `json:"g"`    // 各向异性因子
}

// 经过一层组织后的计算结果
type StageResult struct {
	Layer      TissueLayer `json:"layer"`
	Incident   float64     `json:"incident"`   // 入射辐照度
	Irradiance float64     `json:"irradiance"` // 衰减后的辐照度
	Scattering float64     `json:"scattering"` // 相位函数积分 S
}

// 本层的透过率
func (r StageResult) Transmittance() float64 {
	if r.Incident == 0 {
		return 0
	}
	return r.Irradiance / r.Incident
}
