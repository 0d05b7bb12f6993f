package model

// 组织参数列表，按光路从前到后排列
// 修改参数只能直接修改该表
var Organs = []TissueLayer{
	{
		Name: "cornea",
		I0:   3.144654, // 入射辐照度
		MuA:  0.,
		MuS:  0.0016,
		D:    0.25, // 角膜厚度
		G:    0.9,
	},
	{
		Name: "aqueous",
		MuA:  0.0078,
		MuS:  0.0060,
		D:    1.60023, // 房水厚度
		G:    0.9,
	},
	{
		Name: "lens",
		MuA:  0.0005,
		MuS:  0.0023,
		D:    2.77023, // 晶体厚度
		G:    0.9,
	},
	{
		Name: "vitreous",
		MuA:  0.048,
		MuS:  0.0003,
		D:    3.17659, // 玻璃体厚度
		G:    0.9,
	},
	{
		Name: "retina",
		MuA:  0.02,
		MuS:  5,
		D:    0.15, // 视网膜厚度
		G:    0.9,
	},
	{
		Name: "choroid",
		MuA:  0.1,
		MuS:  20,
		D:    0.1, // 脉络膜厚度
		G:    0.9,
	},
}
